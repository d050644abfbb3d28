package migrations

import (
	"github.com/lunarbrew/go-cafe/app/models"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.Category{}, &models.MenuItem{}, &models.Size{}, &models.MenuItemSize{}, &models.CustomSize{}, &models.Attribute{}, &models.MenuItemAttribute{}, &models.AdminAccount{})
}
