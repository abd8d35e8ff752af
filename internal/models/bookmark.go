package models

import "gorm.io/gorm"

// Bookmark is a saved link owned by exactly one user. Every access path
// is scoped by UserID; a bookmark is never visible outside its owner.
type Bookmark struct {
	ID          string `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	UserID      string `json:"userId" gorm:"index;type:varchar(36)"`
	Title       string `json:"title" validate:"required,max=255"`
	Link        string `json:"link" validate:"required,url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	gorm.Model         // Embed gorm.Model for CreatedAt, UpdatedAt, DeletedAt
}
