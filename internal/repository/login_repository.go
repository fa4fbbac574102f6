package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

// LoginRepository persists append-only login history. Entries are
// never updated or deleted.
type LoginRepository interface {
	Create(ctx context.Context, entry *model.LoginEntry) error
	ListByIdentity(ctx context.Context, identityID string, limit int) ([]model.LoginEntry, error)
}

type loginRepository struct {
	db *gorm.DB
}

// NewLoginRepository builds a GORM-backed login history repository.
func NewLoginRepository(db *gorm.DB) LoginRepository {
	return &loginRepository{db: db}
}

func (r *loginRepository) Create(ctx context.Context, entry *model.LoginEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *loginRepository) ListByIdentity(ctx context.Context, identityID string, limit int) ([]model.LoginEntry, error) {
	var entries []model.LoginEntry
	err := r.db.WithContext(ctx).
		Where("identity_id = ?", identityID).
		Order("created_at DESC").
		Limit(limit).
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
