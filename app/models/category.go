package models

import (
	"time"
)

type Category struct {
	ID           string     `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name         string     `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Slug         string     `gorm:"size:100;not null;uniqueIndex" json:"slug"`
	Description  string     `gorm:"type:text" json:"description,omitempty"`
	ImageURL     string     `gorm:"size:255" json:"imageUrl,omitempty"`
	DisplayOrder int        `gorm:"not null;default:0;index" json:"displayOrder"`
	Active       bool       `gorm:"not null;default:true;index" json:"active"`
	MenuItems    []MenuItem `gorm:"foreignKey:CategoryID" json:"-"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}
