package admin

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lunarbrew/go-cafe/app/helpers"
	"github.com/lunarbrew/go-cafe/app/models"
)

type AdminAccountForm struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name" validate:"required,max=100"`
	Password string `json:"password" validate:"omitempty,min=10"`
	Active   *bool  `json:"active"`
}

func (h *AdminHandler) refetchAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("refetchAccounts: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.ok(w, accounts)
}

func (h *AdminHandler) GetAccounts(w http.ResponseWriter, r *http.Request) {
	h.refetchAccounts(w, r)
}

// AddAccountPost lets an existing admin add someone to the allow-list. A
// password is mandatory on create; on edit it is optional and means
// "change it".
func (h *AdminHandler) AddAccountPost(w http.ResponseWriter, r *http.Request) {
	var form AdminAccountForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}
	if form.Password == "" {
		h.fail(w, http.StatusBadRequest, "Password is required")
		return
	}

	existing, err := h.accountRepo.FindByEmail(r.Context(), form.Email)
	if err != nil {
		log.Printf("AddAccountPost: error checking email %s: %v", form.Email, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if existing != nil {
		h.fail(w, http.StatusConflict, "An admin account with that email already exists")
		return
	}

	digest := helpers.HashPassword(form.Password)
	if digest == "" {
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	active := true
	if form.Active != nil {
		active = *form.Active
	}

	account := &models.AdminAccount{
		ID:             uuid.New().String(),
		Email:          strings.ToLower(form.Email),
		Name:           form.Name,
		PasswordDigest: digest,
		Active:         active,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}

	if err := h.accountRepo.Create(r.Context(), account); err != nil {
		log.Printf("AddAccountPost: failed to create account: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to add the admin account")
		return
	}

	h.refetchAccounts(w, r)
}

func (h *AdminHandler) EditAccountPost(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	account, err := h.accountRepo.GetByID(r.Context(), accountID)
	if err != nil {
		log.Printf("EditAccountPost: error finding account %s: %v", accountID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if account == nil {
		h.fail(w, http.StatusNotFound, "Admin account not found")
		return
	}

	var form AdminAccountForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	account.Email = strings.ToLower(form.Email)
	account.Name = form.Name
	if form.Password != "" {
		digest := helpers.HashPassword(form.Password)
		if digest == "" {
			h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
			return
		}
		account.PasswordDigest = digest
	}
	if form.Active != nil {
		account.Active = *form.Active
	}
	account.UpdatedAt = time.Now()

	if err := h.accountRepo.Update(r.Context(), account); err != nil {
		log.Printf("EditAccountPost: failed to update account %s: %v", accountID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the admin account")
		return
	}

	h.refetchAccounts(w, r)
}

// DeleteAccountPost revokes access immediately: the auth middleware
// re-checks the allow-list on every request.
func (h *AdminHandler) DeleteAccountPost(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	account, err := h.accountRepo.GetByID(r.Context(), accountID)
	if err != nil {
		log.Printf("DeleteAccountPost: error finding account %s: %v", accountID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if account == nil {
		h.fail(w, http.StatusNotFound, "Admin account not found")
		return
	}

	if email, ok := r.Context().Value(helpers.ContextKeyAdminEmail).(string); ok && strings.EqualFold(email, account.Email) {
		h.fail(w, http.StatusConflict, "You cannot delete the account you are signed in with")
		return
	}

	if err := h.accountRepo.Delete(r.Context(), accountID); err != nil {
		log.Printf("DeleteAccountPost: failed to delete account %s: %v", accountID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to delete the admin account")
		return
	}

	h.refetchAccounts(w, r)
}

func (h *AdminHandler) ToggleAccountPost(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	account, err := h.accountRepo.GetByID(r.Context(), accountID)
	if err != nil {
		log.Printf("ToggleAccountPost: error finding account %s: %v", accountID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if account == nil {
		h.fail(w, http.StatusNotFound, "Admin account not found")
		return
	}

	if email, ok := r.Context().Value(helpers.ContextKeyAdminEmail).(string); ok && strings.EqualFold(email, account.Email) && account.Active {
		h.fail(w, http.StatusConflict, "You cannot deactivate the account you are signed in with")
		return
	}

	if err := h.accountRepo.SetActive(r.Context(), accountID, !account.Active); err != nil {
		log.Printf("ToggleAccountPost: failed to toggle account %s: %v", accountID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the admin account")
		return
	}

	h.refetchAccounts(w, r)
}
