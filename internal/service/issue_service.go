package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
	"github.com/parrishadam/thebridgeworld-sub002/internal/slug"
)

// IssueInput carries an issue create or update.
type IssueInput struct {
	Number      int
	Title       string
	CoverURL    string
	PublishedOn *time.Time
}

// IssueService handles magazine issue operations. Mutations are admin
// only; the listing is public.
type IssueService interface {
	Create(ctx context.Context, actor *model.Profile, in IssueInput) (*model.Issue, error)
	Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in IssueInput) (*model.Issue, error)
	Delete(ctx context.Context, actor *model.Profile, id uuid.UUID) error
	List(ctx context.Context) ([]model.Issue, error)
}

type issueService struct {
	repo     repository.IssueRepository
	articles repository.ArticleRepository
}

// NewIssueService creates a new issue service.
func NewIssueService(repo repository.IssueRepository, articles repository.ArticleRepository) IssueService {
	return &issueService{repo: repo, articles: articles}
}

func (s *issueService) Create(ctx context.Context, actor *model.Profile, in IssueInput) (*model.Issue, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, apperr.Validationf("issue title is required")
	}
	if in.Number <= 0 {
		return nil, apperr.Validationf("issue number must be positive")
	}

	issue := &model.Issue{
		Number:      in.Number,
		Title:       in.Title,
		Slug:        slug.Make(fmt.Sprintf("%d %s", in.Number, in.Title)),
		CoverURL:    in.CoverURL,
		PublishedOn: in.PublishedOn,
	}

	if err := s.repo.Create(ctx, issue); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("issue %d already exists", in.Number)
		}
		return nil, fmt.Errorf("create issue: %w", err)
	}
	return issue, nil
}

func (s *issueService) Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in IssueInput) (*model.Issue, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, apperr.Validationf("issue title is required")
	}

	issue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("issue %s not found", id)
		}
		return nil, fmt.Errorf("load issue: %w", err)
	}

	issue.Number = in.Number
	issue.Title = in.Title
	issue.Slug = slug.Make(fmt.Sprintf("%d %s", in.Number, in.Title))
	issue.CoverURL = in.CoverURL
	issue.PublishedOn = in.PublishedOn

	if err := s.repo.Update(ctx, issue); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("issue %d already exists", in.Number)
		}
		return nil, fmt.Errorf("update issue: %w", err)
	}
	return issue, nil
}

// Delete removes an issue unless articles still reference it.
func (s *issueService) Delete(ctx context.Context, actor *model.Profile, id uuid.UUID) error {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return err
	}

	issue, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("issue %s not found", id)
		}
		return fmt.Errorf("load issue: %w", err)
	}

	count, err := s.articles.CountByIssue(ctx, issue.ID)
	if err != nil {
		return fmt.Errorf("count issue references: %w", err)
	}
	if count > 0 {
		return apperr.Conflictf("issue %d is referenced by %d article(s)", issue.Number, count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	return nil
}

func (s *issueService) List(ctx context.Context) ([]model.Issue, error) {
	issues, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list issues: %w", err)
	}
	return issues, nil
}
