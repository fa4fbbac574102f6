package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// LoginEntry is an append-only record of one established session.
type LoginEntry struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	IdentityID string    `json:"identity_id" gorm:"size:64;not null;index"`
	IP         string    `json:"ip" gorm:"size:64"`
	UserAgent  string    `json:"user_agent" gorm:"size:512"`
	CreatedAt  time.Time `json:"created_at" gorm:"index"`
}

// BeforeCreate sets UUID before creating the record.
func (e *LoginEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
