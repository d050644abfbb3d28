package middlewares

import (
	"context"
	"log"
	"net/http"
	"strings"

	"github.com/lunarbrew/go-cafe/app/helpers"
	"github.com/lunarbrew/go-cafe/app/repositories"
	"github.com/unrolled/render"
)

// SessionReader is the slice of the session store the auth middleware
// needs; tests stub it.
type SessionReader interface {
	GetAdminEmail(r *http.Request) string
}

// AdminAuthMiddleware gates the admin API on the session email being an
// active row in the admin allow-list. The check runs on every request, so
// deactivating or deleting an account revokes access immediately on the
// next call, regardless of any live session cookie.
func AdminAuthMiddleware(sessionStore SessionReader, accountRepo repositories.AdminAccountRepositoryImpl, rnd *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := strings.ToLower(strings.TrimSpace(sessionStore.GetAdminEmail(r)))
			if email == "" {
				rnd.JSON(w, http.StatusUnauthorized, map[string]interface{}{
					"success": false,
					"message": "Authentication required",
				})
				return
			}

			account, err := accountRepo.FindActiveByEmail(r.Context(), email)
			if err != nil {
				log.Printf("AdminAuthMiddleware: error looking up admin %s: %v", email, err)
				rnd.JSON(w, http.StatusInternalServerError, map[string]interface{}{
					"success": false,
					"message": "Something went wrong. Please try again.",
				})
				return
			}
			if account == nil {
				log.Printf("AdminAuthMiddleware: %s is not on the active admin allow-list", email)
				rnd.JSON(w, http.StatusForbidden, map[string]interface{}{
					"success": false,
					"message": "You do not have permission to access the admin panel",
				})
				return
			}

			ctx := context.WithValue(r.Context(), helpers.ContextKeyAdminEmail, account.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
