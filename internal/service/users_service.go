package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/identity"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
)

// missingField stands in for identity fields with no live provider
// record, e.g. legacy or manually provisioned profiles.
const missingField = "—"

// AdminUser is a profile annotated with the provider's directory data
// for the admin listing.
type AdminUser struct {
	model.Profile
	DisplayName   string `json:"display_name"`
	IdentityEmail string `json:"identity_email"`
	AvatarURL     string `json:"avatar_url,omitempty"`
}

// UsersService handles the admin user views.
type UsersService interface {
	List(ctx context.Context, actor *model.Profile, p repository.Pagination) ([]AdminUser, int64, error)
	ResetPassword(ctx context.Context, actor *model.Profile, targetID string) error
}

type usersService struct {
	profiles repository.ProfileRepository
	provider identity.Provider
}

// NewUsersService creates a new admin users service.
func NewUsersService(profiles repository.ProfileRepository, provider identity.Provider) UsersService {
	return &usersService{profiles: profiles, provider: provider}
}

// List joins persisted profiles with provider directory records. A
// failing provider lookup degrades every row to placeholders instead
// of failing the listing.
func (s *usersService) List(ctx context.Context, actor *model.Profile, p repository.Pagination) ([]AdminUser, int64, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, 0, err
	}

	profiles, total, err := s.profiles.List(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list profiles: %w", err)
	}

	ids := make([]string, 0, len(profiles))
	for _, profile := range profiles {
		ids = append(ids, profile.ID)
	}

	records, err := s.provider.Lookup(ctx, ids)
	if err != nil {
		log.Printf("identity lookup degraded to placeholders: %v", err)
		records = nil
	}

	out := make([]AdminUser, 0, len(profiles))
	for _, profile := range profiles {
		user := AdminUser{
			Profile:       profile,
			DisplayName:   missingField,
			IdentityEmail: missingField,
		}
		if rec, ok := records[profile.ID]; ok {
			if rec.Name != "" {
				user.DisplayName = rec.Name
			}
			if rec.Email != "" {
				user.IdentityEmail = rec.Email
			}
			user.AvatarURL = rec.AvatarURL
		}
		out = append(out, user)
	}
	return out, total, nil
}

// ResetPassword triggers the provider's out-of-band reset flow for the
// target identity. Best effort: success means the provider accepted
// the request, nothing more.
func (s *usersService) ResetPassword(ctx context.Context, actor *model.Profile, targetID string) error {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return err
	}

	if _, err := s.profiles.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("profile %s not found", targetID)
		}
		return fmt.Errorf("load profile: %w", err)
	}

	if err := s.provider.SendPasswordReset(ctx, targetID); err != nil {
		return fmt.Errorf("trigger password reset: %w", err)
	}
	return nil
}
