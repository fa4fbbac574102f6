package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

// TagRepository defines tag persistence operations.
type TagRepository interface {
	// CreateIdempotent inserts the tag, or loads the existing row of
	// the same name when the insert loses a uniqueness race.
	CreateIdempotent(ctx context.Context, tag *model.Tag) (*model.Tag, error)
	FindByName(ctx context.Context, name string) (*model.Tag, error)
	List(ctx context.Context, nameSubstring string) ([]model.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository builds a GORM-backed tag repository.
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) CreateIdempotent(ctx context.Context, tag *model.Tag) (*model.Tag, error) {
	var out model.Tag
	err := createIdempotent(ctx,
		func(ctx context.Context) error {
			if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
				return err
			}
			out = *tag
			return nil
		},
		func(ctx context.Context) error {
			return r.db.WithContext(ctx).Where("name = ?", tag.Name).First(&out).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *tagRepository) FindByName(ctx context.Context, name string) (*model.Tag, error) {
	var tag model.Tag
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&tag).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) List(ctx context.Context, nameSubstring string) ([]model.Tag, error) {
	q := r.db.WithContext(ctx).Order("name ASC")
	if nameSubstring != "" {
		q = q.Where("name LIKE ?", "%"+nameSubstring+"%")
	}

	var tags []model.Tag
	if err := q.Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}
