package models

import "gorm.io/gorm"

// User represents a registered account. Email doubles as the login key.
type User struct {
	ID         string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Password   string `json:"-" gorm:"type:varchar(255)" validate:"required"` // bcrypt hash, never serialized
	FirstName  string `json:"firstName,omitempty" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	LastName   string `json:"lastName,omitempty" gorm:"type:varchar(100)" validate:"omitempty,max=100"`
	gorm.Model        // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
