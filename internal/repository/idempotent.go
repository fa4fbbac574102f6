package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// createIdempotent inserts a row and, when the insert loses a
// uniqueness race, re-reads the winning row instead of failing the
// caller. The store's uniqueness constraint is the authority; no
// in-process locking is involved. Shared by the tag and profile
// creation paths.
func createIdempotent(ctx context.Context, insert func(context.Context) error, reread func(context.Context) error) error {
	err := insert(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		return err
	}
	return reread(ctx)
}
