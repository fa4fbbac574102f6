package model

import (
	"strings"
	"time"
)

// Profile is the persisted record for one identity-provider user. The
// primary key is the provider's opaque identity id, which never changes
// once the row is created.
type Profile struct {
	ID            string    `json:"id" gorm:"primaryKey;size:64"`
	FirstName     string    `json:"first_name,omitempty" gorm:"size:255"`
	LastName      string    `json:"last_name,omitempty" gorm:"size:255"`
	Email         string    `json:"email,omitempty" gorm:"size:255;index"`
	Tier          Tier      `json:"tier" gorm:"type:varchar(20);not null;default:'free'"`
	IsAdmin       bool      `json:"is_admin" gorm:"default:false"`
	IsAuthor      bool      `json:"is_author" gorm:"default:false"`
	IsContributor bool      `json:"is_contributor" gorm:"default:false"`
	IsLegacy      bool      `json:"is_legacy" gorm:"default:false"`
	Bio           string    `json:"bio,omitempty" gorm:"type:text"`
	PhotoURL      string    `json:"photo_url,omitempty" gorm:"size:512"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// DisplayName joins the name fields, falling back to the email and then
// the identity id for profiles with no name on record.
func (p *Profile) DisplayName() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name != "" {
		return name
	}
	if p.Email != "" {
		return p.Email
	}
	return p.ID
}
