package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Issue groups articles into a numbered magazine edition.
type Issue struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Number      int        `json:"number" gorm:"uniqueIndex;not null"`
	Title       string     `json:"title" gorm:"size:255;not null"`
	Slug        string     `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	CoverURL    string     `json:"cover_url,omitempty" gorm:"size:512"`
	PublishedOn *time.Time `json:"published_on,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (i *Issue) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
