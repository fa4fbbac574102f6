package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/cache"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
	"github.com/parrishadam/thebridgeworld-sub002/internal/slug"
)

const (
	tagListCacheKey = "tags:all"
	tagListCacheTTL = 10 * time.Minute
)

// TagService handles tag operations. Creation is idempotent: two
// concurrent creators of the same name both receive the one stored row.
type TagService interface {
	Create(ctx context.Context, actor *model.Profile, name string) (*model.Tag, error)
	List(ctx context.Context, nameSubstring string) ([]model.Tag, error)
}

type tagService struct {
	repo  repository.TagRepository
	cache *cache.Client
}

// NewTagService creates a new tag service.
func NewTagService(repo repository.TagRepository, cache *cache.Client) TagService {
	return &tagService{repo: repo, cache: cache}
}

func (s *tagService) Create(ctx context.Context, actor *model.Profile, name string) (*model.Tag, error) {
	if actor == nil {
		return nil, apperr.ErrUnauthenticated
	}
	if name == "" {
		return nil, apperr.Validationf("tag name is required")
	}

	tag, err := s.repo.CreateIdempotent(ctx, &model.Tag{
		Name: name,
		Slug: slug.Make(name),
	})
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}

	_ = s.cache.Delete(ctx, tagListCacheKey)
	return tag, nil
}

func (s *tagService) List(ctx context.Context, nameSubstring string) ([]model.Tag, error) {
	// only the unfiltered listing is worth caching
	if nameSubstring == "" {
		if data, _ := s.cache.Get(ctx, tagListCacheKey); data != nil {
			var cached []model.Tag
			if err := json.Unmarshal(data, &cached); err == nil {
				return cached, nil
			}
		}
	}

	tags, err := s.repo.List(ctx, nameSubstring)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}

	if nameSubstring == "" {
		if payload, err := json.Marshal(tags); err == nil {
			_ = s.cache.Set(ctx, tagListCacheKey, payload, tagListCacheTTL)
		}
	}
	return tags, nil
}
