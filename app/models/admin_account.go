package models

import (
	"time"
)

// AdminAccount doubles as login credential and allow-list entry: the auth
// middleware re-checks the session email against active rows on every
// request, so deactivating a row revokes access on the next check.
type AdminAccount struct {
	ID             string    `gorm:"size:36;not null;uniqueIndex;primary_key" json:"id"`
	Email          string    `gorm:"size:255;not null;uniqueIndex" json:"email"`
	Name           string    `gorm:"size:100;not null" json:"name"`
	PasswordDigest string    `gorm:"size:255;not null" json:"-"`
	Active         bool      `gorm:"not null;default:true;index" json:"active"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}
