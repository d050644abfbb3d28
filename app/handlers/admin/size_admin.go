package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lunarbrew/go-cafe/app/catalog"
	"github.com/lunarbrew/go-cafe/app/models"
)

type SizeForm struct {
	Name            string `json:"name" validate:"required,max=100"`
	Description     string `json:"description" validate:"max=2000"`
	PriceAdjustment string `json:"priceAdjustment"`
	Active          *bool  `json:"active"`
}

func (h *AdminHandler) refetchSizes(w http.ResponseWriter, r *http.Request) {
	sizes, err := h.sizeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("refetchSizes: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.ok(w, sizes)
}

func (h *AdminHandler) GetSizes(w http.ResponseWriter, r *http.Request) {
	h.refetchSizes(w, r)
}

func (h *AdminHandler) AddSizePost(w http.ResponseWriter, r *http.Request) {
	var form SizeForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	adjustment, ok := parsePrice(form.PriceAdjustment)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Price adjustment must be a non-negative amount")
		return
	}

	existing, err := h.sizeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AddSizePost: failed to load sizes: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	active := true
	if form.Active != nil {
		active = *form.Active
	}

	size := &models.Size{
		ID:              uuid.New().String(),
		Name:            form.Name,
		Description:     form.Description,
		PriceAdjustment: adjustment,
		DisplayOrder:    len(existing) + 1,
		Active:          active,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}

	if err := h.sizeRepo.Create(r.Context(), size); err != nil {
		log.Printf("AddSizePost: failed to create size: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to add the size")
		return
	}

	h.refetchSizes(w, r)
}

func (h *AdminHandler) EditSizePost(w http.ResponseWriter, r *http.Request) {
	sizeID := mux.Vars(r)["id"]

	size, err := h.sizeRepo.GetByID(r.Context(), sizeID)
	if err != nil {
		log.Printf("EditSizePost: error finding size %s: %v", sizeID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if size == nil {
		h.fail(w, http.StatusNotFound, "Size not found")
		return
	}

	var form SizeForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	adjustment, ok := parsePrice(form.PriceAdjustment)
	if !ok {
		h.fail(w, http.StatusBadRequest, "Price adjustment must be a non-negative amount")
		return
	}

	size.Name = form.Name
	size.Description = form.Description
	size.PriceAdjustment = adjustment
	if form.Active != nil {
		size.Active = *form.Active
	}
	size.UpdatedAt = time.Now()

	if err := h.sizeRepo.Update(r.Context(), size); err != nil {
		log.Printf("EditSizePost: failed to update size %s: %v", sizeID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the size")
		return
	}

	h.refetchSizes(w, r)
}

func (h *AdminHandler) DeleteSizePost(w http.ResponseWriter, r *http.Request) {
	sizeID := mux.Vars(r)["id"]

	size, err := h.sizeRepo.GetByID(r.Context(), sizeID)
	if err != nil {
		log.Printf("DeleteSizePost: error finding size %s: %v", sizeID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if size == nil {
		h.fail(w, http.StatusNotFound, "Size not found")
		return
	}

	if err := h.sizeRepo.Delete(r.Context(), sizeID); err != nil {
		log.Printf("DeleteSizePost: failed to delete size %s: %v", sizeID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to delete the size")
		return
	}

	h.refetchSizes(w, r)
}

func (h *AdminHandler) ToggleSizePost(w http.ResponseWriter, r *http.Request) {
	sizeID := mux.Vars(r)["id"]

	size, err := h.sizeRepo.GetByID(r.Context(), sizeID)
	if err != nil {
		log.Printf("ToggleSizePost: error finding size %s: %v", sizeID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if size == nil {
		h.fail(w, http.StatusNotFound, "Size not found")
		return
	}

	if err := h.sizeRepo.SetActive(r.Context(), sizeID, !size.Active); err != nil {
		log.Printf("ToggleSizePost: failed to toggle size %s: %v", sizeID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the size")
		return
	}

	h.refetchSizes(w, r)
}

func (h *AdminHandler) ReorderSizesPost(w http.ResponseWriter, r *http.Request) {
	var form ReorderForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	sizes, err := h.sizeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ReorderSizesPost: failed to load sizes: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	ids := make([]string, 0, len(sizes))
	for _, s := range sizes {
		ids = append(ids, s.ID)
	}

	if err := h.sizeRepo.Reorder(r.Context(), catalog.Resequence(ids, form.MovedID, form.NewIndex)); err != nil {
		log.Printf("ReorderSizesPost: failed to reorder: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to reorder sizes")
		return
	}

	h.refetchSizes(w, r)
}
