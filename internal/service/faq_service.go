package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
)

// FAQInput carries an FAQ entry create or update.
type FAQInput struct {
	Question  string
	Answer    string
	SortOrder int
	Published bool
}

// FAQService handles FAQ management. Mutations and the full listing
// are admin only; the public listing shows published entries.
type FAQService interface {
	Create(ctx context.Context, actor *model.Profile, in FAQInput) (*model.FAQEntry, error)
	Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in FAQInput) (*model.FAQEntry, error)
	Delete(ctx context.Context, actor *model.Profile, id uuid.UUID) error
	ListPublished(ctx context.Context) ([]model.FAQEntry, error)
	ListAll(ctx context.Context, actor *model.Profile) ([]model.FAQEntry, error)
}

type faqService struct {
	repo repository.FAQRepository
}

// NewFAQService creates a new FAQ service.
func NewFAQService(repo repository.FAQRepository) FAQService {
	return &faqService{repo: repo}
}

func (s *faqService) Create(ctx context.Context, actor *model.Profile, in FAQInput) (*model.FAQEntry, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Question == "" || in.Answer == "" {
		return nil, apperr.Validationf("question and answer are required")
	}

	entry := &model.FAQEntry{
		Question:  in.Question,
		Answer:    in.Answer,
		SortOrder: in.SortOrder,
		Published: in.Published,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create faq entry: %w", err)
	}
	return entry, nil
}

func (s *faqService) Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in FAQInput) (*model.FAQEntry, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Question == "" || in.Answer == "" {
		return nil, apperr.Validationf("question and answer are required")
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("faq entry %s not found", id)
		}
		return nil, fmt.Errorf("load faq entry: %w", err)
	}

	entry.Question = in.Question
	entry.Answer = in.Answer
	entry.SortOrder = in.SortOrder
	entry.Published = in.Published

	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update faq entry: %w", err)
	}
	return entry, nil
}

func (s *faqService) Delete(ctx context.Context, actor *model.Profile, id uuid.UUID) error {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return err
	}
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("faq entry %s not found", id)
		}
		return fmt.Errorf("load faq entry: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete faq entry: %w", err)
	}
	return nil
}

func (s *faqService) ListPublished(ctx context.Context) ([]model.FAQEntry, error) {
	entries, err := s.repo.List(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("list faq entries: %w", err)
	}
	return entries, nil
}

func (s *faqService) ListAll(ctx context.Context, actor *model.Profile) ([]model.FAQEntry, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	entries, err := s.repo.List(ctx, false)
	if err != nil {
		return nil, fmt.Errorf("list faq entries: %w", err)
	}
	return entries, nil
}
