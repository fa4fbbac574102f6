package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

// FAQRepository defines FAQ persistence operations.
type FAQRepository interface {
	Create(ctx context.Context, entry *model.FAQEntry) error
	Update(ctx context.Context, entry *model.FAQEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.FAQEntry, error)
	List(ctx context.Context, publishedOnly bool) ([]model.FAQEntry, error)
}

type faqRepository struct {
	db *gorm.DB
}

// NewFAQRepository builds a GORM-backed FAQ repository.
func NewFAQRepository(db *gorm.DB) FAQRepository {
	return &faqRepository{db: db}
}

func (r *faqRepository) Create(ctx context.Context, entry *model.FAQEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *faqRepository) Update(ctx context.Context, entry *model.FAQEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *faqRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.FAQEntry{}).Error
}

func (r *faqRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.FAQEntry, error) {
	var entry model.FAQEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *faqRepository) List(ctx context.Context, publishedOnly bool) ([]model.FAQEntry, error) {
	q := r.db.WithContext(ctx).Order("sort_order ASC, created_at ASC")
	if publishedOnly {
		q = q.Where("published = ?", true)
	}

	var entries []model.FAQEntry
	if err := q.Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
