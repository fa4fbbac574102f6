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

const publishedArticleCacheTTL = 5 * time.Minute

// CreateArticleInput carries a new article. Status and access tier are
// raw strings normalized server-side.
type CreateArticleInput struct {
	Title            string
	Slug             string
	AuthorName       string
	Category         string
	Tags             []string
	AccessTier       string
	Excerpt          string
	Status           string
	Body             json.RawMessage
	FeaturedImageURL string
	IssueID          *uuid.UUID
}

// UpdateArticleInput is a sparse article edit: only non-nil fields are
// applied.
type UpdateArticleInput struct {
	Title            *string
	Category         *string
	Tags             *[]string
	AccessTier       *string
	Excerpt          *string
	Status           *string
	Body             json.RawMessage
	FeaturedImageURL *string
	IssueID          *uuid.UUID
}

// ListArticlesInput narrows the authenticated article listing.
type ListArticlesInput struct {
	Status   string
	Category string
	SortBy   string
	SortDesc bool
}

// PublishedFilter narrows the public published listing.
type PublishedFilter struct {
	Category string
	Tag      string
	IssueID  *uuid.UUID
}

// PublishedArticle pairs an article with the caller's paywall decision.
// The body is cleared whenever the decision withholds it.
type PublishedArticle struct {
	model.Article
	Decision entitlement.Decision `json:"decision"`
}

// ArticleService handles article operations.
type ArticleService interface {
	Create(ctx context.Context, actor *model.Profile, in CreateArticleInput) (*model.Article, error)
	Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in UpdateArticleInput) (*model.Article, error)
	Get(ctx context.Context, actor *model.Profile, id uuid.UUID) (*model.Article, error)
	List(ctx context.Context, actor *model.Profile, in ListArticlesInput, p repository.Pagination) ([]model.Article, int64, error)
	GetPublished(ctx context.Context, reader *model.Profile, slugValue string) (*PublishedArticle, error)
	ListPublished(ctx context.Context, reader *model.Profile, f PublishedFilter, p repository.Pagination) ([]PublishedArticle, int64, error)
}

type articleService struct {
	repo  repository.ArticleRepository
	cache *cache.Client
}

// NewArticleService creates a new article service.
func NewArticleService(repo repository.ArticleRepository, cache *cache.Client) ArticleService {
	return &articleService{repo: repo, cache: cache}
}

func publishedCacheKey(slugValue string) string {
	return "article:published:" + slugValue
}

// Create stores a new article owned by the actor. Requests for
// status=published from callers without publish rights are downgraded
// to draft; admin publishes stamp published_at.
func (s *articleService) Create(ctx context.Context, actor *model.Profile, in CreateArticleInput) (*model.Article, error) {
	if err := entitlement.RequireRoles(actor, entitlement.RoleAuthor, entitlement.RoleContributor); err != nil {
		return nil, err
	}
	if in.Title == "" {
		return nil, apperr.Validationf("title is required")
	}

	slugValue := in.Slug
	if slugValue == "" {
		slugValue = slug.Make(in.Title)
	}
	if slugValue == "" {
		return nil, apperr.Validationf("title %q produces an empty slug", in.Title)
	}

	status := model.ParseStatus(in.Status)
	var publishedAt *time.Time
	if status == model.StatusPublished {
		if actor.IsAdmin {
			now := time.Now().UTC()
			publishedAt = &now
		} else {
			status = model.StatusDraft
		}
	}

	authorName := actor.DisplayName()
	if in.AuthorName != "" && actor.IsAdmin {
		// admins may byline articles for legacy authors
		authorName = in.AuthorName
	}

	article := &model.Article{
		Title:            in.Title,
		Slug:             slugValue,
		AuthorName:       authorName,
		AuthorID:         actor.ID,
		Category:         in.Category,
		Tags:             in.Tags,
		AccessTier:       model.ParseTier(in.AccessTier),
		Excerpt:          in.Excerpt,
		Status:           status,
		Body:             in.Body,
		FeaturedImageURL: in.FeaturedImageURL,
		IssueID:          in.IssueID,
		PublishedAt:      publishedAt,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflictf("an article with slug %q already exists", slugValue)
		}
		return nil, fmt.Errorf("create article: %w", err)
	}

	_ = s.cache.Delete(ctx, publishedCacheKey(article.Slug))
	return article, nil
}

// Update applies a sparse edit. Only the owner or an admin may touch a
// row, and a published article is immutable to its non-admin author.
func (s *articleService) Update(ctx context.Context, actor *model.Profile, id uuid.UUID, in UpdateArticleInput) (*model.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("article %s not found", id)
		}
		return nil, fmt.Errorf("load article: %w", err)
	}

	if err := entitlement.RequireOwner(actor, article.AuthorID); err != nil {
		return nil, err
	}
	if !actor.IsAdmin && article.Status == model.StatusPublished {
		return nil, fmt.Errorf("%w: published articles can no longer be edited by their author", apperr.ErrForbidden)
	}

	if in.Title != nil {
		if *in.Title == "" {
			return nil, apperr.Validationf("title cannot be empty")
		}
		article.Title = *in.Title
	}
	if in.Category != nil {
		article.Category = *in.Category
	}
	if in.Tags != nil {
		article.Tags = *in.Tags
	}
	if in.AccessTier != nil {
		article.AccessTier = model.ParseTier(*in.AccessTier)
	}
	if in.Excerpt != nil {
		article.Excerpt = *in.Excerpt
	}
	if in.Body != nil {
		article.Body = in.Body
	}
	if in.FeaturedImageURL != nil {
		article.FeaturedImageURL = *in.FeaturedImageURL
	}
	if in.IssueID != nil {
		article.IssueID = in.IssueID
	}
	if in.Status != nil {
		next := model.ParseStatus(*in.Status)
		if next == model.StatusPublished && !actor.IsAdmin {
			next = model.StatusDraft
		}
		if next == model.StatusPublished && article.PublishedAt == nil {
			now := time.Now().UTC()
			article.PublishedAt = &now
		}
		article.Status = next
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}

	_ = s.cache.Delete(ctx, publishedCacheKey(article.Slug))
	return article, nil
}

// Get returns one article for its owner or an admin.
func (s *articleService) Get(ctx context.Context, actor *model.Profile, id uuid.UUID) (*model.Article, error) {
	article, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("article %s not found", id)
		}
		return nil, fmt.Errorf("load article: %w", err)
	}
	if err := entitlement.RequireOwner(actor, article.AuthorID); err != nil {
		return nil, err
	}
	return article, nil
}

// List returns the authenticated listing: admins see every row, other
// callers only their own.
func (s *articleService) List(ctx context.Context, actor *model.Profile, in ListArticlesInput, p repository.Pagination) ([]model.Article, int64, error) {
	if actor == nil {
		return nil, 0, apperr.ErrUnauthenticated
	}

	filter := repository.ArticleFilter{
		Category: in.Category,
		SortBy:   in.SortBy,
		SortDesc: in.SortDesc,
	}
	if in.Status != "" {
		filter.Status = model.ParseStatus(in.Status)
	}
	if !actor.IsAdmin {
		filter.AuthorID = actor.ID
	}

	return s.repo.List(ctx, filter, p)
}

// GetPublished returns one published article by slug with the caller's
// paywall decision. Withheld bodies are cleared before returning.
func (s *articleService) GetPublished(ctx context.Context, reader *model.Profile, slugValue string) (*PublishedArticle, error) {
	article, err := s.loadPublished(ctx, slugValue)
	if err != nil {
		return nil, err
	}

	out := PublishedArticle{Article: *article, Decision: entitlement.CanRead(reader, article)}
	if !out.Decision.Allowed() {
		out.Body = nil
	}
	return &out, nil
}

// ListPublished returns the public listing. Bodies are always withheld
// on lists; each row carries the caller's decision for its article.
func (s *articleService) ListPublished(ctx context.Context, reader *model.Profile, f PublishedFilter, p repository.Pagination) ([]PublishedArticle, int64, error) {
	filter := repository.ArticleFilter{
		Status:   model.StatusPublished,
		Category: f.Category,
		Tag:      f.Tag,
		IssueID:  f.IssueID,
		SortBy:   "published_at",
		SortDesc: true,
	}

	articles, total, err := s.repo.List(ctx, filter, p)
	if err != nil {
		return nil, 0, fmt.Errorf("list published articles: %w", err)
	}

	out := make([]PublishedArticle, 0, len(articles))
	for i := range articles {
		row := PublishedArticle{Article: articles[i], Decision: entitlement.CanRead(reader, &articles[i])}
		row.Body = nil
		out = append(out, row)
	}
	return out, total, nil
}

func (s *articleService) loadPublished(ctx context.Context, slugValue string) (*model.Article, error) {
	key := publishedCacheKey(slugValue)
	if data, _ := s.cache.Get(ctx, key); data != nil {
		var cached model.Article
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	article, err := s.repo.FindBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFoundf("article %q not found", slugValue)
		}
		return nil, fmt.Errorf("load article: %w", err)
	}
	if article.Status != model.StatusPublished {
		// unpublished rows are invisible on the public surface
		return nil, apperr.NotFoundf("article %q not found", slugValue)
	}

	if payload, err := json.Marshal(article); err == nil {
		_ = s.cache.Set(ctx, key, payload, publishedArticleCacheTTL)
	}
	return article, nil
}
