package models

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	PricingFixed          = "fixed"
	PricingConsistentSize = "consistent_size"
	PricingCustomSize     = "custom_size"
)

// TagList is stored as a comma-joined text column but marshals as a JSON
// array so the published snapshot carries real lists.
type TagList []string

func (t TagList) Value() (driver.Value, error) {
	if len(t) == 0 {
		return "", nil
	}
	return strings.Join(t, ","), nil
}

func (t *TagList) Scan(value interface{}) error {
	var raw string
	switch v := value.(type) {
	case nil:
		*t = nil
		return nil
	case string:
		raw = v
	case []byte:
		raw = string(v)
	default:
		return fmt.Errorf("cannot scan %T into TagList", value)
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		*t = nil
		return nil
	}

	parts := strings.Split(raw, ",")
	tags := make(TagList, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tags = append(tags, p)
		}
	}
	*t = tags
	return nil
}

type MenuItem struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	CategoryID   string          `gorm:"size:36;not null;index" json:"categoryId"`
	Category     Category        `gorm:"foreignKey:CategoryID" json:"-"`
	Name         string          `gorm:"size:255;not null" json:"name"`
	Slug         string          `gorm:"size:255;not null;uniqueIndex" json:"slug"`
	Description  string          `gorm:"type:text" json:"description,omitempty"`
	BasePrice    decimal.Decimal `gorm:"type:decimal(16,2);not null;default:0.00" json:"basePrice"`
	PricingType  string          `gorm:"size:20;not null;default:fixed" json:"pricingType"`
	Tags         TagList         `gorm:"type:text" json:"tags,omitempty"`
	DisplayOrder int             `gorm:"not null;default:0;index" json:"displayOrder"`
	Active       bool            `gorm:"not null;default:true;index" json:"active"`
	SizeLinks    []MenuItemSize  `gorm:"foreignKey:MenuItemID" json:"sizeLinks,omitempty"`
	CustomSizes  []CustomSize    `gorm:"foreignKey:MenuItemID" json:"customSizes,omitempty"`
	Attributes   []Attribute     `gorm:"many2many:menu_item_attributes;" json:"attributes,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	UpdatedAt    time.Time       `json:"updatedAt"`
}

type MenuItemSize struct {
	MenuItemID    string           `gorm:"size:36;primaryKey" json:"menuItemId"`
	SizeID        string           `gorm:"size:36;primaryKey" json:"sizeId"`
	Size          Size             `gorm:"foreignKey:SizeID" json:"size"`
	PriceOverride *decimal.Decimal `gorm:"type:decimal(16,2)" json:"priceOverride,omitempty"`
	CreatedAt     time.Time        `json:"-"`
	UpdatedAt     time.Time        `json:"-"`
}

// CustomSize rows are owned exclusively by one menu item; they are never
// shared the way Size rows are.
type CustomSize struct {
	ID           string          `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	MenuItemID   string          `gorm:"size:36;not null;index" json:"menuItemId"`
	Name         string          `gorm:"size:100;not null" json:"name"`
	Price        decimal.Decimal `gorm:"type:decimal(16,2);not null" json:"price"`
	DisplayOrder int             `gorm:"not null;default:0" json:"displayOrder"`
}

type MenuItemAttribute struct {
	MenuItemID  string    `gorm:"size:36;primaryKey"`
	AttributeID string    `gorm:"size:36;primaryKey"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
