package admin

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/csrf"
	"github.com/lunarbrew/go-cafe/app/helpers"
	"github.com/lunarbrew/go-cafe/app/repositories"
	"github.com/lunarbrew/go-cafe/app/services"
	"github.com/lunarbrew/go-cafe/app/utils/sessions"
	"github.com/unrolled/render"
)

type AdminHandler struct {
	render       *render.Render
	validator    *validator.Validate
	sessionStore sessions.SessionStore

	categoryRepo  repositories.CategoryRepositoryImpl
	itemRepo      repositories.MenuItemRepositoryImpl
	sizeRepo      repositories.SizeRepositoryImpl
	attributeRepo repositories.AttributeRepositoryImpl
	accountRepo   repositories.AdminAccountRepositoryImpl

	publisher *services.PublishService
}

func NewAdminHandler(
	rnd *render.Render,
	sessionStore sessions.SessionStore,
	categoryRepo repositories.CategoryRepositoryImpl,
	itemRepo repositories.MenuItemRepositoryImpl,
	sizeRepo repositories.SizeRepositoryImpl,
	attributeRepo repositories.AttributeRepositoryImpl,
	accountRepo repositories.AdminAccountRepositoryImpl,
	publisher *services.PublishService,
) *AdminHandler {
	return &AdminHandler{
		render:        rnd,
		validator:     validator.New(),
		sessionStore:  sessionStore,
		categoryRepo:  categoryRepo,
		itemRepo:      itemRepo,
		sizeRepo:      sizeRepo,
		attributeRepo: attributeRepo,
		accountRepo:   accountRepo,
		publisher:     publisher,
	}
}

func (h *AdminHandler) fail(w http.ResponseWriter, status int, message string) {
	h.render.JSON(w, status, map[string]interface{}{
		"success": false,
		"message": message,
	})
}

func (h *AdminHandler) failValidation(w http.ResponseWriter, err error) {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		h.render.JSON(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Validation failed",
			"errors":  helpers.FormatValidationErrors(validationErrors),
		})
		return
	}
	h.fail(w, http.StatusBadRequest, "Validation failed")
}

func (h *AdminHandler) ok(w http.ResponseWriter, data interface{}) {
	h.render.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    data,
	})
}

func (h *AdminHandler) decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.fail(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

type LoginForm struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AdminHandler) LoginPost(w http.ResponseWriter, r *http.Request) {
	var form LoginForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	account, err := h.accountRepo.FindActiveByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("LoginPost: error looking up %s: %v", form.Email, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if account == nil || !helpers.PasswordCompare(account.PasswordDigest, []byte(form.Password)) {
		// One generic message for both cases so the endpoint doesn't leak
		// which emails exist.
		h.fail(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	if err := h.sessionStore.SetAdminEmail(w, r, strings.ToLower(account.Email)); err != nil {
		log.Printf("LoginPost: failed to save session for %s: %v", account.Email, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	h.ok(w, map[string]interface{}{
		"email": account.Email,
		"name":  account.Name,
	})
}

func (h *AdminHandler) LogoutPost(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionStore.ClearSession(w, r); err != nil {
		log.Printf("LogoutPost: failed to clear session: %v", err)
	}
	h.ok(w, nil)
}

// CSRFToken hands the SPA a token to echo back on mutating requests.
func (h *AdminHandler) CSRFToken(w http.ResponseWriter, r *http.Request) {
	h.ok(w, map[string]string{"csrfToken": csrf.Token(r)})
}

func (h *AdminHandler) PublishPost(w http.ResponseWriter, r *http.Request) {
	result, err := h.publisher.Publish(r.Context())
	if err != nil {
		log.Printf("PublishPost: publish failed: %v", err)
		h.fail(w, http.StatusInternalServerError, "Publish failed. The previous snapshot is still live.")
		return
	}
	h.ok(w, result)
}
