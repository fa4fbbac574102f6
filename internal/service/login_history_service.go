package service

import (
	"context"
	"fmt"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
)

// loginHistoryCap bounds the rows a history read returns.
const loginHistoryCap = 50

// LoginHistoryService records and serves login history. Entries are
// readable by their owner, or for any target identity by an admin.
type LoginHistoryService interface {
	Record(ctx context.Context, identityID, ip, userAgent string) error
	List(ctx context.Context, actor *model.Profile, targetID string) ([]model.LoginEntry, error)
}

type loginHistoryService struct {
	repo repository.LoginRepository
}

// NewLoginHistoryService creates a new login history service.
func NewLoginHistoryService(repo repository.LoginRepository) LoginHistoryService {
	return &loginHistoryService{repo: repo}
}

func (s *loginHistoryService) Record(ctx context.Context, identityID, ip, userAgent string) error {
	if identityID == "" {
		return apperr.ErrUnauthenticated
	}
	entry := &model.LoginEntry{
		IdentityID: identityID,
		IP:         ip,
		UserAgent:  userAgent,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("record login: %w", err)
	}
	return nil
}

// List returns the newest entries first. An empty targetID means the
// caller's own history; naming another identity requires admin.
func (s *loginHistoryService) List(ctx context.Context, actor *model.Profile, targetID string) ([]model.LoginEntry, error) {
	if actor == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if targetID == "" {
		targetID = actor.ID
	}
	if targetID != actor.ID && !actor.IsAdmin {
		return nil, apperr.ErrForbidden
	}

	entries, err := s.repo.ListByIdentity(ctx, targetID, loginHistoryCap)
	if err != nil {
		return nil, fmt.Errorf("list login history: %w", err)
	}
	return entries, nil
}
