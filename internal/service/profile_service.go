package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/cache"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
)

// SelfProfilePatch is the self-service edit surface. Role flags other
// than is_admin are absent on purpose: users cannot grant themselves
// authorship. is_admin is present only so an explicit self-demotion
// attempt gets the distinct rejection instead of being silently dropped.
type SelfProfilePatch struct {
	FirstName *string
	LastName  *string
	Bio       *string
	IsAdmin   *bool
}

// AdminProfilePatch is the admin edit surface: every optional field,
// applied only when present.
type AdminProfilePatch struct {
	FirstName     *string
	LastName      *string
	Email         *string
	Bio           *string
	PhotoURL      *string
	Tier          *string
	IsAdmin       *bool
	IsAuthor      *bool
	IsContributor *bool
	IsLegacy      *bool
}

// ProfileService handles profile reads and edits.
type ProfileService interface {
	UpdateSelf(ctx context.Context, actor *model.Profile, in SelfProfilePatch) (*model.Profile, error)
	AdminUpdate(ctx context.Context, actor *model.Profile, targetID string, in AdminProfilePatch) (*model.Profile, error)
}

type profileService struct {
	repo  repository.ProfileRepository
	cache *cache.Client
}

// NewProfileService creates a new profile service.
func NewProfileService(repo repository.ProfileRepository, cache *cache.Client) ProfileService {
	return &profileService{repo: repo, cache: cache}
}

// UpdateSelf applies the caller's own sparse edit.
func (s *profileService) UpdateSelf(ctx context.Context, actor *model.Profile, in SelfProfilePatch) (*model.Profile, error) {
	if actor == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if err := entitlement.CheckSelfDemotion(actor, actor.ID, in.IsAdmin); err != nil {
		return nil, err
	}
	if in.IsAdmin != nil && *in.IsAdmin && !actor.IsAdmin {
		return nil, apperr.ErrForbidden
	}

	profile, err := s.load(ctx, actor.ID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		profile.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		profile.LastName = *in.LastName
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}

	return s.save(ctx, profile)
}

// AdminUpdate applies a sparse edit to any profile. Self-demotion of
// the admin flag is rejected; the same patch against another identity
// goes through.
func (s *profileService) AdminUpdate(ctx context.Context, actor *model.Profile, targetID string, in AdminProfilePatch) (*model.Profile, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if err := entitlement.CheckSelfDemotion(actor, targetID, in.IsAdmin); err != nil {
		return nil, err
	}

	profile, err := s.load(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if in.FirstName != nil {
		profile.FirstName = *in.FirstName
	}
	if in.LastName != nil {
		profile.LastName = *in.LastName
	}
	if in.Email != nil {
		profile.Email = *in.Email
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.PhotoURL != nil {
		profile.PhotoURL = *in.PhotoURL
	}
	if in.Tier != nil {
		profile.Tier = model.ParseTier(*in.Tier)
	}
	if in.IsAdmin != nil {
		profile.IsAdmin = *in.IsAdmin
	}
	if in.IsAuthor != nil {
		profile.IsAuthor = *in.IsAuthor
	}
	if in.IsContributor != nil {
		profile.IsContributor = *in.IsContributor
	}
	if in.IsLegacy != nil {
		profile.IsLegacy = *in.IsLegacy
	}

	return s.save(ctx, profile)
}

func (s *profileService) load(ctx context.Context, id string) (*model.Profile, error) {
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("profile %s not found", id)
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	return profile, nil
}

func (s *profileService) save(ctx context.Context, profile *model.Profile) (*model.Profile, error) {
	if err := s.repo.Update(ctx, profile); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	_ = s.cache.Delete(ctx, entitlement.ProfileCacheKey(profile.ID))
	return profile, nil
}
