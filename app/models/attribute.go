package models

import (
	"time"
)

type Attribute struct {
	ID           string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Name         string    `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description  string    `gorm:"type:text" json:"description,omitempty"`
	Color        string    `gorm:"size:20" json:"color,omitempty"`
	DisplayOrder int       `gorm:"not null;default:0;index" json:"displayOrder"`
	Active       bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
