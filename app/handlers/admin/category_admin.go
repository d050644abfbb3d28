package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/lunarbrew/go-cafe/app/catalog"
	"github.com/lunarbrew/go-cafe/app/helpers"
	"github.com/lunarbrew/go-cafe/app/models"
)

type CategoryForm struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=2000"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url,max=255"`
	Active      *bool  `json:"active"`
}

// refetchCategories implements the mutation contract: every write is
// followed by a full refetch, and the fresh list is what the client
// renders. No optimistic local state survives a failed write.
func (h *AdminHandler) refetchCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("refetchCategories: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.ok(w, categories)
}

func (h *AdminHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	h.refetchCategories(w, r)
}

func (h *AdminHandler) AddCategoryPost(w http.ResponseWriter, r *http.Request) {
	var form CategoryForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	existing, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("AddCategoryPost: failed to load categories: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	active := true
	if form.Active != nil {
		active = *form.Active
	}

	newCategory := &models.Category{
		ID:           uuid.New().String(),
		Name:         form.Name,
		Slug:         helpers.GenerateSlug(form.Name),
		Description:  form.Description,
		ImageURL:     form.ImageURL,
		DisplayOrder: len(existing) + 1,
		Active:       active,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := h.categoryRepo.Create(r.Context(), newCategory); err != nil {
		log.Printf("AddCategoryPost: failed to create category: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to add the category")
		return
	}

	h.refetchCategories(w, r)
}

func (h *AdminHandler) EditCategoryPost(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		log.Printf("EditCategoryPost: error finding category %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if category == nil {
		h.fail(w, http.StatusNotFound, "Category not found")
		return
	}

	var form CategoryForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	category.Name = form.Name
	category.Slug = helpers.GenerateSlug(form.Name)
	category.Description = form.Description
	category.ImageURL = form.ImageURL
	if form.Active != nil {
		category.Active = *form.Active
	}
	category.UpdatedAt = time.Now()

	if err := h.categoryRepo.Update(r.Context(), category); err != nil {
		log.Printf("EditCategoryPost: failed to update category %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the category")
		return
	}

	h.refetchCategories(w, r)
}

func (h *AdminHandler) DeleteCategoryPost(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		log.Printf("DeleteCategoryPost: error finding category %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if category == nil {
		h.fail(w, http.StatusNotFound, "Category not found")
		return
	}

	items, err := h.itemRepo.GetByCategory(r.Context(), categoryID)
	if err != nil {
		log.Printf("DeleteCategoryPost: error checking items for %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if len(items) > 0 {
		h.fail(w, http.StatusConflict, "Move or delete this category's menu items first")
		return
	}

	if err := h.categoryRepo.Delete(r.Context(), categoryID); err != nil {
		log.Printf("DeleteCategoryPost: failed to delete category %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to delete the category")
		return
	}

	h.refetchCategories(w, r)
}

func (h *AdminHandler) ToggleCategoryPost(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["id"]

	category, err := h.categoryRepo.GetByID(r.Context(), categoryID)
	if err != nil {
		log.Printf("ToggleCategoryPost: error finding category %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if category == nil {
		h.fail(w, http.StatusNotFound, "Category not found")
		return
	}

	if err := h.categoryRepo.SetActive(r.Context(), categoryID, !category.Active); err != nil {
		log.Printf("ToggleCategoryPost: failed to toggle category %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the category")
		return
	}

	h.refetchCategories(w, r)
}

type ReorderForm struct {
	MovedID  string `json:"movedId" validate:"required"`
	NewIndex int    `json:"newIndex" validate:"min=0"`
}

func (h *AdminHandler) ReorderCategoriesPost(w http.ResponseWriter, r *http.Request) {
	var form ReorderForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	categories, err := h.categoryRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("ReorderCategoriesPost: failed to load categories: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	ids := make([]string, 0, len(categories))
	for _, c := range categories {
		ids = append(ids, c.ID)
	}

	if err := h.categoryRepo.Reorder(r.Context(), catalog.Resequence(ids, form.MovedID, form.NewIndex)); err != nil {
		log.Printf("ReorderCategoriesPost: failed to reorder: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to reorder categories")
		return
	}

	h.refetchCategories(w, r)
}
