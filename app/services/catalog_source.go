package services

import (
	"context"

	"github.com/lunarbrew/go-cafe/app/models"
	"github.com/lunarbrew/go-cafe/app/repositories"
)

type storeCatalogSource struct {
	categories repositories.CategoryRepositoryImpl
	items      repositories.MenuItemRepositoryImpl
	sizes      repositories.SizeRepositoryImpl
	attributes repositories.AttributeRepositoryImpl
}

// NewCatalogSource adapts the catalog repositories into the read-only view
// the publish pipeline consumes.
func NewCatalogSource(
	categories repositories.CategoryRepositoryImpl,
	items repositories.MenuItemRepositoryImpl,
	sizes repositories.SizeRepositoryImpl,
	attributes repositories.AttributeRepositoryImpl,
) CatalogSource {
	return &storeCatalogSource{
		categories: categories,
		items:      items,
		sizes:      sizes,
		attributes: attributes,
	}
}

func (s *storeCatalogSource) ActiveCategories(ctx context.Context) ([]models.Category, error) {
	return s.categories.GetActive(ctx)
}

func (s *storeCatalogSource) ActiveMenuItems(ctx context.Context) ([]models.MenuItem, error) {
	return s.items.GetActive(ctx)
}

func (s *storeCatalogSource) ActiveSizes(ctx context.Context) ([]models.Size, error) {
	return s.sizes.GetActive(ctx)
}

func (s *storeCatalogSource) ActiveAttributes(ctx context.Context) ([]models.Attribute, error) {
	return s.attributes.GetActive(ctx)
}
