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
	"github.com/shopspring/decimal"
)

type SizeLinkForm struct {
	SizeID        string  `json:"sizeId" validate:"required"`
	PriceOverride *string `json:"priceOverride"`
}

type CustomSizeForm struct {
	Name  string `json:"name" validate:"required,max=100"`
	Price string `json:"price" validate:"required"`
}

type MenuItemForm struct {
	CategoryID   string           `json:"categoryId" validate:"required"`
	Name         string           `json:"name" validate:"required,max=255"`
	Description  string           `json:"description" validate:"max=2000"`
	BasePrice    string           `json:"basePrice"`
	PricingType  string           `json:"pricingType" validate:"omitempty,oneof=fixed consistent_size custom_size"`
	Tags         []string         `json:"tags"`
	Active       *bool            `json:"active"`
	SizeLinks    []SizeLinkForm   `json:"sizeLinks" validate:"dive"`
	CustomSizes  []CustomSizeForm `json:"customSizes" validate:"dive"`
	AttributeIDs []string         `json:"attributeIds"`
}

func (h *AdminHandler) refetchMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.itemRepo.GetAll(r.Context())
	if err != nil {
		log.Printf("refetchMenuItems: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	h.ok(w, items)
}

func (h *AdminHandler) GetMenuItems(w http.ResponseWriter, r *http.Request) {
	h.refetchMenuItems(w, r)
}

func parsePrice(raw string) (decimal.Decimal, bool) {
	if raw == "" {
		return decimal.Zero, true
	}
	price, err := decimal.NewFromString(raw)
	if err != nil || price.Sign() < 0 {
		return decimal.Zero, false
	}
	return price, true
}

// applyForm maps the submitted shape onto the item, enforcing that exactly
// one pricing representation survives: whatever the chosen pricing type
// does not use is cleared rather than stored alongside.
func (h *AdminHandler) applyForm(item *models.MenuItem, form MenuItemForm) (errMessage string) {
	basePrice, ok := parsePrice(form.BasePrice)
	if !ok {
		return "Base price must be a non-negative amount"
	}

	pricingType := form.PricingType
	if pricingType == "" {
		pricingType = models.PricingFixed
	}

	item.CategoryID = form.CategoryID
	item.Name = form.Name
	item.Slug = helpers.GenerateSlug(form.Name)
	item.Description = form.Description
	item.BasePrice = basePrice
	item.PricingType = pricingType
	item.Tags = models.TagList(form.Tags)
	if form.Active != nil {
		item.Active = *form.Active
	}
	item.UpdatedAt = time.Now()

	item.SizeLinks = nil
	item.CustomSizes = nil

	switch pricingType {
	case models.PricingConsistentSize:
		for _, link := range form.SizeLinks {
			row := models.MenuItemSize{MenuItemID: item.ID, SizeID: link.SizeID}
			if link.PriceOverride != nil && *link.PriceOverride != "" {
				override, ok := parsePrice(*link.PriceOverride)
				if !ok {
					return "Size price override must be a non-negative amount"
				}
				row.PriceOverride = &override
			}
			item.SizeLinks = append(item.SizeLinks, row)
		}
	case models.PricingCustomSize:
		for i, cs := range form.CustomSizes {
			price, ok := parsePrice(cs.Price)
			if !ok {
				return "Custom size price must be a non-negative amount"
			}
			item.CustomSizes = append(item.CustomSizes, models.CustomSize{
				ID:           uuid.New().String(),
				MenuItemID:   item.ID,
				Name:         cs.Name,
				Price:        price,
				DisplayOrder: i + 1,
			})
		}
	}

	item.Attributes = make([]models.Attribute, 0, len(form.AttributeIDs))
	for _, id := range form.AttributeIDs {
		item.Attributes = append(item.Attributes, models.Attribute{ID: id})
	}

	return ""
}

func (h *AdminHandler) AddMenuItemPost(w http.ResponseWriter, r *http.Request) {
	var form MenuItemForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), form.CategoryID)
	if err != nil {
		log.Printf("AddMenuItemPost: error finding category %s: %v", form.CategoryID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if category == nil {
		h.fail(w, http.StatusBadRequest, "Category does not exist")
		return
	}

	siblings, err := h.itemRepo.GetByCategory(r.Context(), form.CategoryID)
	if err != nil {
		log.Printf("AddMenuItemPost: error loading category items: %v", err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	item := &models.MenuItem{
		ID:           uuid.New().String(),
		DisplayOrder: len(siblings) + 1,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	if msg := h.applyForm(item, form); msg != "" {
		h.fail(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.itemRepo.Create(r.Context(), item); err != nil {
		log.Printf("AddMenuItemPost: failed to create item: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to add the menu item")
		return
	}

	h.refetchMenuItems(w, r)
}

func (h *AdminHandler) EditMenuItemPost(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	item, err := h.itemRepo.GetByID(r.Context(), itemID)
	if err != nil {
		log.Printf("EditMenuItemPost: error finding item %s: %v", itemID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if item == nil {
		h.fail(w, http.StatusNotFound, "Menu item not found")
		return
	}

	var form MenuItemForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	category, err := h.categoryRepo.GetByID(r.Context(), form.CategoryID)
	if err != nil {
		log.Printf("EditMenuItemPost: error finding category %s: %v", form.CategoryID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if category == nil {
		h.fail(w, http.StatusBadRequest, "Category does not exist")
		return
	}

	if msg := h.applyForm(item, form); msg != "" {
		h.fail(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.itemRepo.Update(r.Context(), item); err != nil {
		log.Printf("EditMenuItemPost: failed to update item %s: %v", itemID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the menu item")
		return
	}

	h.refetchMenuItems(w, r)
}

func (h *AdminHandler) DeleteMenuItemPost(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	item, err := h.itemRepo.GetByID(r.Context(), itemID)
	if err != nil {
		log.Printf("DeleteMenuItemPost: error finding item %s: %v", itemID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if item == nil {
		h.fail(w, http.StatusNotFound, "Menu item not found")
		return
	}

	if err := h.itemRepo.Delete(r.Context(), itemID); err != nil {
		log.Printf("DeleteMenuItemPost: failed to delete item %s: %v", itemID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to delete the menu item")
		return
	}

	h.refetchMenuItems(w, r)
}

func (h *AdminHandler) ToggleMenuItemPost(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	item, err := h.itemRepo.GetByID(r.Context(), itemID)
	if err != nil {
		log.Printf("ToggleMenuItemPost: error finding item %s: %v", itemID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}
	if item == nil {
		h.fail(w, http.StatusNotFound, "Menu item not found")
		return
	}

	if err := h.itemRepo.SetActive(r.Context(), itemID, !item.Active); err != nil {
		log.Printf("ToggleMenuItemPost: failed to toggle item %s: %v", itemID, err)
		h.fail(w, http.StatusInternalServerError, "Failed to update the menu item")
		return
	}

	h.refetchMenuItems(w, r)
}

// ReorderMenuItemsPost renumbers display_order inside one category; the
// scope is the category list, never the whole menu.
func (h *AdminHandler) ReorderMenuItemsPost(w http.ResponseWriter, r *http.Request) {
	categoryID := mux.Vars(r)["categoryId"]

	var form ReorderForm
	if !h.decode(w, r, &form) {
		return
	}
	if err := h.validator.Struct(&form); err != nil {
		h.failValidation(w, err)
		return
	}

	items, err := h.itemRepo.GetByCategory(r.Context(), categoryID)
	if err != nil {
		log.Printf("ReorderMenuItemsPost: failed to load items for %s: %v", categoryID, err)
		h.fail(w, http.StatusInternalServerError, "Something went wrong. Please try again.")
		return
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ID)
	}

	if err := h.itemRepo.Reorder(r.Context(), categoryID, catalog.Resequence(ids, form.MovedID, form.NewIndex)); err != nil {
		log.Printf("ReorderMenuItemsPost: failed to reorder: %v", err)
		h.fail(w, http.StatusInternalServerError, "Failed to reorder menu items")
		return
	}

	h.refetchMenuItems(w, r)
}
