// Package models contains the persistent domain types shared by the
// repository, service and server layers.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a registered account. The avatar URL is assigned once at
// registration from the account's email and denormalized onto posts
// and comments when they are created.
type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"not null" json:"name"`
	Email     string         `gorm:"uniqueIndex;not null" json:"email"`
	Password  string         `gorm:"not null" json:"-"`
	Avatar    string         `json:"avatar"`
	CreatedAt time.Time      `json:"date"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
