package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named content label with a display color and explicit
// sort order. Articles reference categories by name, so deletion is
// blocked in application code while any article still points at one.
type Category struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Slug      string    `json:"slug" gorm:"size:255;not null"`
	Color     string    `json:"color,omitempty" gorm:"size:20"`
	SortOrder int       `json:"sort_order" gorm:"default:0;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
