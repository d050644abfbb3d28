package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/lunarbrew/go-cafe/app/repositories"
	"github.com/lunarbrew/go-cafe/app/services"
	"github.com/lunarbrew/go-cafe/app/utils/renderer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCategoryRepo struct {
	repositories.CategoryRepositoryImpl
	categories []models.Category
	err        error
}

func (s *stubCategoryRepo) GetActive(ctx context.Context) ([]models.Category, error) {
	return s.categories, s.err
}

type stubItemRepo struct {
	repositories.MenuItemRepositoryImpl
	items []models.MenuItem
	err   error
}

func (s *stubItemRepo) GetActive(ctx context.Context) ([]models.MenuItem, error) {
	return s.items, s.err
}

func menuFixture() ([]models.Category, []models.MenuItem) {
	categories := []models.Category{
		{ID: "cat-drinks", Name: "Drinks", DisplayOrder: 1, Active: true},
		{ID: "cat-food", Name: "Food", DisplayOrder: 2, Active: true},
	}
	items := []models.MenuItem{
		{ID: "item-latte", CategoryID: "cat-drinks", Name: "Latte", BasePrice: decimal.NewFromFloat(4.25), PricingType: models.PricingFixed, Tags: models.TagList{"espresso"}, DisplayOrder: 1, Active: true},
		{ID: "item-scone", CategoryID: "cat-food", Name: "Scone", BasePrice: decimal.NewFromFloat(3.50), PricingType: models.PricingFixed, DisplayOrder: 1, Active: true},
	}
	return categories, items
}

func TestGetMenu_LiveSource(t *testing.T) {
	categories, items := menuFixture()
	loader := services.NewSnapshotLoader("", filepath.Join(t.TempDir(), "missing.json"))
	handler := NewMenuHandler(renderer.New(), &stubCategoryRepo{categories: categories}, &stubItemRepo{items: items}, loader)

	req := httptest.NewRequest("GET", "/api/menu", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success    bool              `json:"success"`
		Categories []json.RawMessage `json:"categories"`
		Items      struct {
			Items []struct {
				ID           string `json:"id"`
				DisplayPrice string `json:"displayPrice"`
				CategoryName string `json:"categoryName"`
			} `json:"items"`
			Total int `json:"total"`
		} `json:"items"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Categories, 2)
	assert.Equal(t, 2, body.Items.Total)
	require.Len(t, body.Items.Items, 2)
	assert.Equal(t, "item-latte", body.Items.Items[0].ID)
	assert.Equal(t, "$4.25", body.Items.Items[0].DisplayPrice)
	assert.Equal(t, "Drinks", body.Items.Items[0].CategoryName)
}

func TestGetMenu_FiltersByTagAndSearch(t *testing.T) {
	categories, items := menuFixture()
	loader := services.NewSnapshotLoader("", filepath.Join(t.TempDir(), "missing.json"))
	handler := NewMenuHandler(renderer.New(), &stubCategoryRepo{categories: categories}, &stubItemRepo{items: items}, loader)

	req := httptest.NewRequest("GET", "/api/menu?tags=espresso&search=lat", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "item-latte")
	assert.NotContains(t, rec.Body.String(), "item-scone")
}

func TestGetMenu_SnapshotSource(t *testing.T) {
	categories, items := menuFixture()
	snapshot := models.StaticMenuSnapshot{
		Categories:  categories,
		MenuItems:   items,
		LastUpdated: time.Now().Format(time.RFC3339),
		Version:     "gen-12345",
	}

	path := filepath.Join(t.TempDir(), "menu.json")
	raw, err := json.Marshal(snapshot)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0644))

	loader := services.NewSnapshotLoader("", path)
	// The repos erroring proves the snapshot path never touches the store.
	handler := NewMenuHandler(renderer.New(), &stubCategoryRepo{err: assert.AnError}, &stubItemRepo{err: assert.AnError}, loader)

	req := httptest.NewRequest("GET", "/api/menu?source=snapshot", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Success bool   `json:"success"`
		Version string `json:"version"`
		Stale   bool   `json:"stale"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "gen-12345", body.Version)
	assert.False(t, body.Stale)
}

func TestGetMenu_SnapshotMissingReturns503(t *testing.T) {
	loader := services.NewSnapshotLoader("", filepath.Join(t.TempDir(), "missing.json"))
	handler := NewMenuHandler(renderer.New(), &stubCategoryRepo{}, &stubItemRepo{}, loader)

	req := httptest.NewRequest("GET", "/api/menu?source=snapshot", nil)
	rec := httptest.NewRecorder()
	handler.GetMenu(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "The menu is currently unavailable. Please try again in a few minutes.")
}
