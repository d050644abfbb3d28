package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalogSource struct {
	categories []models.Category
	items      []models.MenuItem
	sizes      []models.Size
	attributes []models.Attribute

	categoriesErr error
	itemsErr      error
	sizesErr      error
	attributesErr error
}

func (f *fakeCatalogSource) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	return f.categories, f.categoriesErr
}

func (f *fakeCatalogSource) ActiveMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return f.items, f.itemsErr
}

func (f *fakeCatalogSource) ActiveSizes(ctx context.Context) ([]models.Size, error) {
	return f.sizes, f.sizesErr
}

func (f *fakeCatalogSource) ActiveAttributes(ctx context.Context) ([]models.Attribute, error) {
	return f.attributes, f.attributesErr
}

func TestPublish_WritesSnapshotWithCounts(t *testing.T) {
	staticDir := t.TempDir()
	source := &fakeCatalogSource{
		categories: []models.Category{{ID: "c1", Name: "Espresso", Active: true}},
		items: []models.MenuItem{
			{ID: "i1", CategoryID: "c1", Name: "Latte", BasePrice: decimal.NewFromFloat(4.5), Active: true},
			{ID: "i2", CategoryID: "c1", Name: "Mocha", BasePrice: decimal.NewFromFloat(5), Active: true},
		},
		sizes:      []models.Size{{ID: "s1", Name: "Small", Active: true}},
		attributes: []models.Attribute{{ID: "a1", Name: "Iced", Active: true}},
	}

	svc := NewPublishService(source, staticDir, "abc1234")
	result, err := svc.Publish(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Categories)
	assert.Equal(t, 2, result.MenuItems)
	assert.Equal(t, 1, result.Sizes)
	assert.Equal(t, 1, result.Attributes)
	assert.Equal(t, "abc1234", result.Version)
	assert.Greater(t, result.Bytes, 0)

	raw, err := os.ReadFile(filepath.Join(staticDir, SnapshotFileName))
	require.NoError(t, err)
	assert.Equal(t, result.Bytes, len(raw))

	var snapshot models.StaticMenuSnapshot
	require.NoError(t, json.Unmarshal(raw, &snapshot))
	assert.Len(t, snapshot.MenuItems, 2)
	assert.Equal(t, "abc1234", snapshot.Version)
	assert.NotEmpty(t, snapshot.LastUpdated)
}

func TestPublish_AnyQueryFailureLeavesPriorSnapshotIntact(t *testing.T) {
	staticDir := t.TempDir()
	target := filepath.Join(staticDir, SnapshotFileName)
	require.NoError(t, os.MkdirAll(filepath.Dir(target), 0o755))

	prior := []byte(`{"categories":[],"menuItems":[],"sizes":[],"attributes":[],"lastUpdated":"2026-01-01T00:00:00Z","version":"prior"}`)
	require.NoError(t, os.WriteFile(target, prior, 0o644))

	failures := []*fakeCatalogSource{
		{categoriesErr: errors.New("categories down")},
		{itemsErr: errors.New("items down")},
		{sizesErr: errors.New("sizes down")},
		{attributesErr: errors.New("attributes down")},
	}

	for _, source := range failures {
		svc := NewPublishService(source, staticDir, "")
		_, err := svc.Publish(context.Background())
		require.Error(t, err)

		after, readErr := os.ReadFile(target)
		require.NoError(t, readErr)
		assert.Equal(t, prior, after, "failed publish must not touch the previous snapshot")
	}
}

func TestPublish_VersionFallsBackToTimestamp(t *testing.T) {
	svc := NewPublishService(&fakeCatalogSource{}, t.TempDir(), "")
	result, err := svc.Publish(context.Background())
	require.NoError(t, err)
	assert.Regexp(t, `^gen-\d+$`, result.Version)
}
