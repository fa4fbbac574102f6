package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

// ProfileRepository defines profile persistence operations.
type ProfileRepository interface {
	GetOrCreate(ctx context.Context, seed *model.Profile) (*model.Profile, error)
	FindByID(ctx context.Context, id string) (*model.Profile, error)
	Update(ctx context.Context, profile *model.Profile) error
	List(ctx context.Context, p Pagination) ([]model.Profile, int64, error)
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository builds a GORM-backed profile repository.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// GetOrCreate returns the profile for seed.ID, inserting seed when no
// row exists yet. Losing a concurrent first-insert race resolves to
// the winning row.
func (r *profileRepository) GetOrCreate(ctx context.Context, seed *model.Profile) (*model.Profile, error) {
	existing, err := r.FindByID(ctx, seed.ID)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	var out model.Profile
	err = createIdempotent(ctx,
		func(ctx context.Context) error {
			if err := r.db.WithContext(ctx).Create(seed).Error; err != nil {
				return err
			}
			out = *seed
			return nil
		},
		func(ctx context.Context) error {
			return r.db.WithContext(ctx).Where("id = ?", seed.ID).First(&out).Error
		},
	)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *profileRepository) FindByID(ctx context.Context, id string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Update(ctx context.Context, profile *model.Profile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

func (r *profileRepository) List(ctx context.Context, p Pagination) ([]model.Profile, int64, error) {
	p = p.Normalize()

	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Profile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var profiles []model.Profile
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&profiles).Error
	if err != nil {
		return nil, 0, err
	}
	return profiles, total, nil
}
