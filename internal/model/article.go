package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticleStatus tracks an article through the editorial workflow.
type ArticleStatus string

const (
	StatusDraft     ArticleStatus = "draft"
	StatusReview    ArticleStatus = "review"
	StatusPublished ArticleStatus = "published"
)

// ParseStatus maps a raw string onto an ArticleStatus. Unknown or empty
// values default to draft.
func ParseStatus(s string) ArticleStatus {
	switch ArticleStatus(s) {
	case StatusReview:
		return StatusReview
	case StatusPublished:
		return StatusPublished
	default:
		return StatusDraft
	}
}

// Article is a single content unit. Category and issue are soft
// references; tags are stored as a serialized name set. Body is an
// opaque structured document the CMS never inspects.
type Article struct {
	ID               uuid.UUID       `json:"id" gorm:"type:char(36);primaryKey"`
	Title            string          `json:"title" gorm:"size:255;not null"`
	Slug             string          `json:"slug" gorm:"uniqueIndex;size:255;not null"`
	AuthorName       string          `json:"author_name" gorm:"size:255"`
	AuthorID         string          `json:"author_id" gorm:"size:64;not null;index"`
	Category         string          `json:"category,omitempty" gorm:"size:255;index"`
	Tags             []string        `json:"tags" gorm:"serializer:json;type:text"`
	AccessTier       Tier            `json:"access_tier" gorm:"type:varchar(20);not null;default:'free'"`
	Excerpt          string          `json:"excerpt,omitempty" gorm:"type:text"`
	Status           ArticleStatus   `json:"status" gorm:"type:varchar(20);not null;default:'draft';index"`
	Body             json.RawMessage `json:"body,omitempty" gorm:"type:longtext"`
	FeaturedImageURL string          `json:"featured_image_url,omitempty" gorm:"size:512"`
	IssueID          *uuid.UUID      `json:"issue_id,omitempty" gorm:"type:char(36);index"`
	PublishedAt      *time.Time      `json:"published_at,omitempty"`
	CreatedAt        time.Time       `json:"created_at"`
	UpdatedAt        time.Time       `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Article) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
