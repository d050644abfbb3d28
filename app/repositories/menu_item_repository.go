package repositories

import (
	"context"
	"fmt"

	"github.com/lunarbrew/go-cafe/app/models"
	"gorm.io/gorm"
)

type MenuItemRepositoryImpl interface {
	Create(ctx context.Context, item *models.MenuItem) error
	GetByID(ctx context.Context, id string) (*models.MenuItem, error)
	GetAll(ctx context.Context) ([]models.MenuItem, error)
	GetActive(ctx context.Context) ([]models.MenuItem, error)
	GetByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error)
	Update(ctx context.Context, item *models.MenuItem) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Reorder(ctx context.Context, categoryID string, orderedIDs []string) error
}

type menuItemRepository struct {
	db *gorm.DB
}

func NewMenuItemRepository(db *gorm.DB) MenuItemRepositoryImpl {
	return &menuItemRepository{db: db}
}

func (r *menuItemRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("SizeLinks.Size").
		Preload("CustomSizes", func(db *gorm.DB) *gorm.DB {
			return db.Order("custom_sizes.display_order asc")
		}).
		Preload("Attributes")
}

// Create writes the item together with its size links, custom sizes and
// attribute associations. Exactly one pricing representation should be
// populated; callers enforce that before handing the item over.
func (r *menuItemRepository) Create(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *menuItemRepository) GetByID(ctx context.Context, id string) (*models.MenuItem, error) {
	var item models.MenuItem
	err := r.withRelations(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *menuItemRepository) GetAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.withRelations(ctx).Order("display_order asc").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}
	return items, nil
}

func (r *menuItemRepository) GetActive(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.withRelations(ctx).Where("active = ?", true).Order("display_order asc").Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get active menu items: %w", err)
	}
	return items, nil
}

func (r *menuItemRepository) GetByCategory(ctx context.Context, categoryID string) ([]models.MenuItem, error) {
	var items []models.MenuItem
	err := r.withRelations(ctx).Where("category_id = ?", categoryID).Order("display_order asc").Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

// Update replaces the row and all three relation sets wholesale inside one
// transaction. The admin panel always submits the full item shape, so a
// replace is simpler and safer than diffing.
func (r *menuItemRepository) Update(ctx context.Context, item *models.MenuItem) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.MenuItemSize{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", item.ID).Delete(&models.CustomSize{}).Error; err != nil {
			return err
		}

		attributes := item.Attributes
		item.Attributes = nil
		if err := tx.Omit("Attributes").Save(item).Error; err != nil {
			return err
		}
		item.Attributes = attributes

		if err := tx.Model(item).Association("Attributes").Replace(item.Attributes); err != nil {
			return err
		}
		return nil
	})
}

func (r *menuItemRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.MenuItemSize{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.CustomSize{}).Error; err != nil {
			return err
		}
		if err := tx.Where("menu_item_id = ?", id).Delete(&models.MenuItemAttribute{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.MenuItem{}, "id = ?", id).Error
	})
}

func (r *menuItemRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&models.MenuItem{}).Where("id = ?", id).Update("active", active).Error
}

// Reorder renumbers display_order 1..N for the items of one category.
func (r *menuItemRepository) Reorder(ctx context.Context, categoryID string, orderedIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			err := tx.Model(&models.MenuItem{}).
				Where("id = ? AND category_id = ?", id, categoryID).
				Update("display_order", i+1).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
}
