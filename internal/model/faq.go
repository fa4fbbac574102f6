package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FAQEntry is an admin-managed question/answer pair. Only published
// entries appear on the public listing.
type FAQEntry struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Question  string    `json:"question" gorm:"type:text;not null"`
	Answer    string    `json:"answer" gorm:"type:text;not null"`
	SortOrder int       `json:"sort_order" gorm:"default:0;index"`
	Published bool      `json:"published" gorm:"default:false;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (f *FAQEntry) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
