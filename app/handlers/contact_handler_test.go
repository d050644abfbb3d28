package handlers

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lunarbrew/go-cafe/app/utils/renderer"
	"github.com/stretchr/testify/assert"
)

type fakeMailer struct {
	configured bool
	sendErr    error

	sentTo      string
	sentSubject string
	sentBody    string
}

func (f *fakeMailer) Configured() bool { return f.configured }

func (f *fakeMailer) SendHTMLEmail(to, subject, htmlBody string) (string, error) {
	if f.sendErr != nil {
		return "", f.sendErr
	}
	f.sentTo = to
	f.sentSubject = subject
	f.sentBody = htmlBody
	return "<test-message-id@localhost>", nil
}

func TestContactHandler(t *testing.T) {
	validPayload := `{"name":"Sam","email":"sam@example.com","subject":"Catering","message":"Do you cater weekend events?"}`

	tests := []struct {
		name         string
		method       string
		payload      string
		mailer       *fakeMailer
		expectedCode int
		expectedBody string
	}{
		{
			name:         "success_without_phone",
			method:       "POST",
			payload:      validPayload,
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusOK,
			expectedBody: `"messageId"`,
		},
		{
			name:         "success_with_phone",
			method:       "POST",
			payload:      `{"name":"Sam","email":"sam@example.com","phone":"+1 (555) 010-2030","subject":"Hi","message":"Hello"}`,
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusOK,
		},
		{
			name:         "get_is_rejected",
			method:       "GET",
			payload:      "",
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusMethodNotAllowed,
			expectedBody: "Method not allowed",
		},
		{
			name:         "missing_credentials",
			method:       "POST",
			payload:      validPayload,
			mailer:       &fakeMailer{configured: false},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Email service not configured",
		},
		{
			name:         "malformed_json",
			method:       "POST",
			payload:      `{not json`,
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "missing_name",
			method:       "POST",
			payload:      `{"email":"sam@example.com","subject":"Hi","message":"Hello"}`,
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Name is required",
		},
		{
			name:         "malformed_email",
			method:       "POST",
			payload:      `{"name":"Sam","email":"not-an-email","subject":"Hi","message":"Hello"}`,
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusBadRequest,
			expectedBody: "valid email address",
		},
		{
			name:         "malformed_phone",
			method:       "POST",
			payload:      `{"name":"Sam","email":"sam@example.com","phone":"abc","subject":"Hi","message":"Hello"}`,
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusBadRequest,
			expectedBody: "valid phone number",
		},
		{
			name:         "spam_message_rejected",
			method:       "POST",
			payload:      `{"name":"Sam","email":"sam@example.com","subject":"Hi","message":"Great SEO service, click here for backlinks"}`,
			mailer:       &fakeMailer{configured: true},
			expectedCode: http.StatusBadRequest,
			expectedBody: "spam",
		},
		{
			name:         "relay_failure",
			method:       "POST",
			payload:      validPayload,
			mailer:       &fakeMailer{configured: true, sendErr: errors.New("smtp down")},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			handler := NewContactHandler(renderer.New(), tc.mailer, "hello@lunarbrew.cafe")

			req := httptest.NewRequest(tc.method, "/api/notify/contact", bytes.NewBufferString(tc.payload))
			rec := httptest.NewRecorder()
			handler.Handle(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tc.expectedBody)
			}
		})
	}
}

func TestContactHandler_StripsScriptTagsBeforeRelaying(t *testing.T) {
	mailer := &fakeMailer{configured: true}
	handler := NewContactHandler(renderer.New(), mailer, "hello@lunarbrew.cafe")

	payload := `{"name":"Sam","email":"sam@example.com","subject":"Hi","message":"Hello <script>alert(1)</script> there"}`
	rec := httptest.NewRecorder()
	handler.Handle(rec, httptest.NewRequest("POST", "/api/notify/contact", bytes.NewBufferString(payload)))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, mailer.sentBody, "<script>")
}
