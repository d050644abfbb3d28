package repositories

import (
	"context"

	"github.com/lunarbrew/go-cafe/app/models"
	"gorm.io/gorm"
)

type AttributeRepositoryImpl interface {
	Create(ctx context.Context, attribute *models.Attribute) error
	GetByID(ctx context.Context, id string) (*models.Attribute, error)
	GetAll(ctx context.Context) ([]models.Attribute, error)
	GetActive(ctx context.Context) ([]models.Attribute, error)
	Update(ctx context.Context, attribute *models.Attribute) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string, active bool) error
	Reorder(ctx context.Context, orderedIDs []string) error
}

type attributeRepository struct {
	db *gorm.DB
}

func NewAttributeRepository(db *gorm.DB) AttributeRepositoryImpl {
	return &attributeRepository{db: db}
}

func (r *attributeRepository) Create(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Create(attribute).Error
}

func (r *attributeRepository) GetByID(ctx context.Context, id string) (*models.Attribute, error) {
	var attribute models.Attribute
	err := r.db.WithContext(ctx).First(&attribute, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &attribute, nil
}

func (r *attributeRepository) GetAll(ctx context.Context) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).Order("display_order asc").Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) GetActive(ctx context.Context) ([]models.Attribute, error) {
	var attributes []models.Attribute
	err := r.db.WithContext(ctx).Where("active = ?", true).Order("display_order asc").Find(&attributes).Error
	if err != nil {
		return nil, err
	}
	return attributes, nil
}

func (r *attributeRepository) Update(ctx context.Context, attribute *models.Attribute) error {
	return r.db.WithContext(ctx).Save(attribute).Error
}

func (r *attributeRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("attribute_id = ?", id).Delete(&models.MenuItemAttribute{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Attribute{}, "id = ?", id).Error
	})
}

func (r *attributeRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&models.Attribute{}).Where("id = ?", id).Update("active", active).Error
}

func (r *attributeRepository) Reorder(ctx context.Context, orderedIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&models.Attribute{}).Where("id = ?", id).Update("display_order", i+1).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
