package service

import (
	"context"
	"fmt"

	"github.com/gabriel-vasile/mimetype"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/cache"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
	"github.com/parrishadam/thebridgeworld-sub002/internal/storage"
)

// MaxAvatarBytes caps avatar uploads.
const MaxAvatarBytes = 5 << 20

var allowedAvatarTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// AvatarService stores avatar uploads and writes the URL back onto the
// profile.
type AvatarService interface {
	Upload(ctx context.Context, actor *model.Profile, data []byte) (string, error)
}

type avatarService struct {
	store    storage.Store
	profiles repository.ProfileRepository
	cache    *cache.Client
}

// NewAvatarService creates a new avatar service.
func NewAvatarService(store storage.Store, profiles repository.ProfileRepository, cache *cache.Client) AvatarService {
	return &avatarService{store: store, profiles: profiles, cache: cache}
}

// Upload validates the image by sniffing its actual content, stores it
// under a key derived from the identity id, and updates the profile.
func (s *avatarService) Upload(ctx context.Context, actor *model.Profile, data []byte) (string, error) {
	if actor == nil {
		return "", apperr.ErrUnauthenticated
	}
	if len(data) == 0 {
		return "", apperr.Validationf("avatar file is empty")
	}
	if len(data) > MaxAvatarBytes {
		return "", apperr.Validationf("avatar exceeds the %d byte limit", MaxAvatarBytes)
	}

	mt := mimetype.Detect(data)
	if !allowedAvatarTypes[mt.String()] {
		return "", apperr.Validationf("avatar type %s is not allowed", mt.String())
	}

	url, err := s.store.Put(ctx, "avatars/"+actor.ID, data, mt.String())
	if err != nil {
		return "", apperr.Upstreamf("store avatar: %v", err)
	}

	profile, err := s.profiles.FindByID(ctx, actor.ID)
	if err != nil {
		return "", fmt.Errorf("load profile: %w", err)
	}
	profile.PhotoURL = url
	if err := s.profiles.Update(ctx, profile); err != nil {
		return "", fmt.Errorf("update profile photo: %w", err)
	}

	_ = s.cache.Delete(ctx, entitlement.ProfileCacheKey(actor.ID))
	return url, nil
}
