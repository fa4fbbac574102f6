package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/cache"
	"github.com/parrishadam/thebridgeworld-sub002/internal/entitlement"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
	"github.com/parrishadam/thebridgeworld-sub002/internal/slug"
)

const (
	categoryListCacheKey = "categories:all"
	categoryListCacheTTL = 10 * time.Minute
)

// CategoryInput carries a category create or update.
type CategoryInput struct {
	Name      string
	Color     string
	SortOrder int
}

// CategoryService handles category operations. Mutations are admin
// only; the listing is public.
type CategoryService interface {
	Create(ctx context.Context, actor *model.Profile, in CategoryInput) (*model.Category, error)
	Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in CategoryInput) (*model.Category, error)
	Delete(ctx context.Context, actor *model.Profile, id uuid.UUID) error
	List(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	repo     repository.CategoryRepository
	articles repository.ArticleRepository
	cache    *cache.Client
}

// NewCategoryService creates a new category service.
func NewCategoryService(repo repository.CategoryRepository, articles repository.ArticleRepository, cache *cache.Client) CategoryService {
	return &categoryService{repo: repo, articles: articles, cache: cache}
}

func (s *categoryService) Create(ctx context.Context, actor *model.Profile, in CategoryInput) (*model.Category, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, apperr.Validationf("category name is required")
	}

	category := &model.Category{
		Name:      in.Name,
		Slug:      slug.Make(in.Name),
		Color:     in.Color,
		SortOrder: in.SortOrder,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("category %q already exists", in.Name)
		}
		return nil, fmt.Errorf("create category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in CategoryInput) (*model.Category, error) {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Name == "" {
		return nil, apperr.Validationf("category name is required")
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("category %s not found", id)
		}
		return nil, fmt.Errorf("load category: %w", err)
	}

	category.Name = in.Name
	category.Slug = slug.Make(in.Name)
	category.Color = in.Color
	category.SortOrder = in.SortOrder

	if err := s.repo.Update(ctx, category); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("category %q already exists", in.Name)
		}
		return nil, fmt.Errorf("update category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return category, nil
}

// Delete removes a category unless any article still references it by
// name; the conflict names the article count.
func (s *categoryService) Delete(ctx context.Context, actor *model.Profile, id uuid.UUID) error {
	if err := entitlement.RequireAdmin(actor); err != nil {
		return err
	}

	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("category %s not found", id)
		}
		return fmt.Errorf("load category: %w", err)
	}

	count, err := s.articles.CountByCategory(ctx, category.Name)
	if err != nil {
		return fmt.Errorf("count category references: %w", err)
	}
	if count > 0 {
		return apperr.Conflictf("category %q is referenced by %d article(s)", category.Name, count)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	_ = s.cache.Delete(ctx, categoryListCacheKey)
	return nil
}

func (s *categoryService) List(ctx context.Context) ([]model.Category, error) {
	if data, _ := s.cache.Get(ctx, categoryListCacheKey); data != nil {
		var cached []model.Category
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	categories, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	if payload, err := json.Marshal(categories); err == nil {
		_ = s.cache.Set(ctx, categoryListCacheKey, payload, categoryListCacheTTL)
	}
	return categories, nil
}
