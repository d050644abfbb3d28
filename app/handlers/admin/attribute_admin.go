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

type AttributeForm struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	Color       string `json:"color" validate:"omitempty,hexcolor"`
	Active      *bool  `json:"active"`
}

func (h *AdminHandler) refetchAttributes(w http.ResponseWriter, r *http.Request) {
	attributes, err := h.attributeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("refetchAttributes: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.ok(w, attributes)
}

func (h *AdminHandler) GetAttributes(w http.ResponseWriter, r *http.Request) {
	h.refetchAttributes(w, r)
}

func (h *AdminHandler) AddAttributePost(w http.ResponseWriter, r *http.Request) {
	var form AttributeForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	existing, err := h.attributeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AddAttributePost: failed to load attributes: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	active := true
	if form.Active != nil {
		active = *form.Active
	}

	attribute := &models.Attribute{
		ID:           uuid.New().String(),
		Name:         form.Name,
		Description:  form.Description,
		Color:        form.Color,
		DisplayOrder: len(existing) + 1,
		Active:       active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.attributeRepo.Create(r.Context(), attribute); err != nil {
		log.Printf("AddAttributePost: failed to create attribute: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to add the attribute")
		return
	}

	h.refetchAttributes(w, r)
}

func (h *AdminHandler) EditAttributePost(w http.ResponseWriter, r *http.Request) {
	attributeID := mux.Vars(r)["id"]

	attribute, err := h.attributeRepo.GetByID(r.Context(), attributeID)
	if err != nil {
		log.Printf("EditAttributePost: error finding attribute %s: %v", attributeID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if attribute == nil {
		h.fail(w, http.StatusNotFound, "Attribute not found")
		return
	}

	var form AttributeForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	attribute.Name = form.Name
	attribute.Description = form.Description
	attribute.Color = form.Color
	if form.Active != nil {
		attribute.Active = *form.Active
	}
	attribute.UpdatedAt = time.Now()

	if err := h.attributeRepo.Update(r.Context(), attribute); err != nil {
		log.Printf("EditAttributePost: failed to update attribute %s: %v", attributeID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the attribute")
		return
	}

	h.refetchAttributes(w, r)
}

func (h *AdminHandler) DeleteAttributePost(w http.ResponseWriter, r *http.Request) {
	attributeID := mux.Vars(r)["id"]

	attribute, err := h.attributeRepo.GetByID(r.Context(), attributeID)
	if err != nil {
		log.Printf("DeleteAttributePost: error finding attribute %s: %v", attributeID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if attribute == nil {
		h.fail(w, http.StatusNotFound, "Attribute not found")
		return
	}

	if err := h.attributeRepo.Delete(r.Context(), attributeID); err != nil {
		log.Printf("DeleteAttributePost: failed to delete attribute %s: %v", attributeID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to delete the attribute")
		return
	}

	h.refetchAttributes(w, r)
}

func (h *AdminHandler) ToggleAttributePost(w http.ResponseWriter, r *http.Request) {
	attributeID := mux.Vars(r)["id"]

	attribute, err := h.attributeRepo.GetByID(r.Context(), attributeID)
	if err != nil {
		log.Printf("ToggleAttributePost: error finding attribute %s: %v", attributeID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if attribute == nil {
		h.fail(w, http.StatusNotFound, "Attribute not found")
		return
	}

	if err := h.attributeRepo.SetActive(r.Context(), attributeID, !attribute.Active); err != nil {
		log.Printf("ToggleAttributePost: failed to toggle attribute %s: %v", attributeID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the attribute")
		return
	}

	h.refetchAttributes(w, r)
}

func (h *AdminHandler) ReorderAttributesPost(w http.ResponseWriter, r *http.Request) {
	var form ReorderForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	attributes, err := h.attributeRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ReorderAttributesPost: failed to load attributes: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	ids := make([]string, 0, len(attributes))
	for _, a := range attributes {
		ids = append(ids, a.ID)
	}

	if err := h.attributeRepo.Reorder(r.Context(), catalog.Resequence(ids, form.MovedID, form.NewIndex)); err != nil {
		log.Printf("ReorderAttributesPost: failed to reorder: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to reorder attributes")
		return
	}

	h.refetchAttributes(w, r)
}
