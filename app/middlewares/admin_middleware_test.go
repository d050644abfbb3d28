package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/lunarbrew/go-cafe/app/repositories"
	"github.com/lunarbrew/go-cafe/app/utils/renderer"
	"github.com/stretchr/testify/assert"
)

type stubSession struct {
	email string
}

func (s *stubSession) GetAdminEmail(r *http.Request) string { return s.email }

type stubAccountRepo struct {
	repositories.AdminAccountRepositoryImpl

	active map[string]*models.AdminAccount
}

func (s *stubAccountRepo) FindActiveByEmail(ctx context.Context, email string) (*models.AdminAccount, error) {
	return s.active[email], nil
}

func TestAdminAuthMiddleware(t *testing.T) {
	accounts := &stubAccountRepo{active: map[string]*models.AdminAccount{
		"owner@lunarbrew.cafe": {ID: "adm-1", Email: "owner@lunarbrew.cafe", Active: true},
	}}

	tests := []struct {
		name         string
		sessionEmail string
		expectedCode int
	}{
		{
			name:         "no_session_is_unauthorized",
			sessionEmail: "",
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:         "unknown_email_is_forbidden",
			sessionEmail: "stranger@example.com",
			expectedCode: http.StatusForbidden,
		},
		{
			name:         "allow_list_email_passes",
			sessionEmail: "owner@lunarbrew.cafe",
			expectedCode: http.StatusOK,
		},
		{
			name:         "email_comparison_is_case_insensitive",
			sessionEmail: "OWNER@LunarBrew.Cafe",
			expectedCode: http.StatusOK,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mw := AdminAuthMiddleware(&stubSession{email: tc.sessionEmail}, accounts, renderer.New())
			handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/admin/categories", nil))
			assert.Equal(t, tc.expectedCode, rec.Code)
		})
	}
}
