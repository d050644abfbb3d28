package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Size struct {
	ID              string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name            string          `gorm:"size:100;not null" json:"name"`
	Description     string          `gorm:"type:text" json:"description,omitempty"`
	PriceAdjustment decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0.00" json:"priceAdjustment"`
	DisplayOrder    int             `gorm:"not null;default:0;index" json:"displayOrder"`
	Active          bool            `gorm:"not null;default:true;index" json:"active"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}
