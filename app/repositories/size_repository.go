package repositories

import (
	"context"

	"github.com/lunarbrew/go-cafe/app/models"
	"gorm.io/gorm"
)

type SizeRepositoryImpl interface {
	Create(ctx context.Context, size *models.Size) error
	GetByID(ctx context.Context, id string) (*models.Size, error)
	GetAll(ctx context.Context) ([]models.Size, error)
	GetActive(ctx context.Context) ([]models.Size, error)
	Update(ctx context.Context, size *models.Size) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Reorder(ctx context.Context, orderedIDs []string) error
}

type sizeRepository struct {
	db *gorm.DB
}

func NewSizeRepository(db *gorm.DB) SizeRepositoryImpl {
	return &sizeRepository{db: db}
}

func (r *sizeRepository) Create(ctx context.Context, size *models.Size) error {
	return r.db.WithContext(ctx).Create(size).Error
}

func (r *sizeRepository) GetByID(ctx context.Context, id string) (*models.Size, error) {
	var size models.Size
	err := r.db.WithContext(ctx).First(&size, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &size, nil
}

func (r *sizeRepository) GetAll(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.WithContext(ctx).Order("display_order asc").Find(&sizes).Error
	if err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *sizeRepository) GetActive(ctx context.Context) ([]models.Size, error) {
	var sizes []models.Size
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("display_order asc").Find(&sizes).Error
	if err != nil {
		return nil, err
	}
	return sizes, nil
}

func (r *sizeRepository) Update(ctx context.Context, size *models.Size) error {
	return r.db.WithContext(ctx).Save(size).Error
}

// Delete removes the size and any item links pointing at it; menu items
// themselves are untouched.
func (r *sizeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("size_id = ?", id).Delete(&models.MenuItemSize{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Size{}, "id = ?", id).Error
	})
}

func (r *sizeRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&models.Size{}).Where("id = ?", id).Update("active", active).Error
}

func (r *sizeRepository) Reorder(ctx context.Context, orderedIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&models.Size{}).Where("id = ?", id).Update("display_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
