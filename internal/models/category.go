package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCategoryNameRequired = errors.New("category name is required")

// Category is a spending category transactions are filed under.
// Categories are never deleted; renames go through Update.
type Category struct {
	ID          int64      `json:"id" gorm:"primaryKey"`
	Name        string     `json:"name" gorm:"type:varchar(100);not null;uniqueIndex:idx_categories_name"`
	Description *string    `json:"description,omitempty" gorm:"type:text"`
	Icon        *string    `json:"icon,omitempty" gorm:"type:varchar(50)"`
	Color       *string    `json:"color,omitempty" gorm:"type:varchar(20)"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

// BeforeCreate stamps timestamps and validates before insert.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	now := time.Now().UTC()
	if c.CreatedAt == nil {
		c.CreatedAt = &now
	}
	if c.UpdatedAt == nil {
		c.UpdatedAt = &now
	}
	return c.Validate()
}

// Validate checks the fields storage cannot enforce by type alone.
func (c *Category) Validate() error {
	if c.Name == "" {
		return ErrCategoryNameRequired
	}
	return nil
}
