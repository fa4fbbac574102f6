package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

// articleSortColumns is the allow-list of sortable columns. Requests
// naming anything else fall back to created_at.
var articleSortColumns = map[string]string{
	"created_at":   "created_at",
	"published_at": "published_at",
	"title":        "title",
	"status":       "status",
}

// ArticleFilter narrows article list queries.
type ArticleFilter struct {
	AuthorID string
	Status   model.ArticleStatus
	Category string
	Tag      string
	IssueID  *uuid.UUID
	SortBy   string
	SortDesc bool
}

// ArticleRepository defines article persistence operations. There is
// deliberately no Delete: articles are never removed in scope.
type ArticleRepository interface {
	Create(ctx context.Context, article *model.Article) error
	Update(ctx context.Context, article *model.Article) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error)
	FindBySlug(ctx context.Context, slug string) (*model.Article, error)
	List(ctx context.Context, f ArticleFilter, p Pagination) ([]model.Article, int64, error)
	CountByCategory(ctx context.Context, name string) (int64, error)
	CountByIssue(ctx context.Context, issueID uuid.UUID) (int64, error)
}

type articleRepository struct {
	db *gorm.DB
}

// NewArticleRepository builds a GORM-backed article repository.
func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) Update(ctx context.Context, article *model.Article) error {
	return r.db.WithContext(ctx).Save(article).Error
}

func (r *articleRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) FindBySlug(ctx context.Context, slug string) (*model.Article, error) {
	var article model.Article
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&article).Error; err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) List(ctx context.Context, f ArticleFilter, p Pagination) ([]model.Article, int64, error) {
	p = p.Normalize()
	q := r.db.WithContext(ctx).Model(&model.Article{})

	if f.AuthorID != "" {
		q = q.Where("author_id = ?", f.AuthorID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.Tag != "" {
		// tags are stored as a JSON array of names
		q = q.Where("tags LIKE ?", `%"`+f.Tag+`"%`)
	}
	if f.IssueID != nil {
		q = q.Where("issue_id = ?", *f.IssueID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := articleSortColumns[f.SortBy]
	if !ok {
		column = "created_at"
	}
	direction := "ASC"
	if f.SortDesc {
		direction = "DESC"
	}

	var articles []model.Article
	err := q.Order(column + " " + direction).
		Limit(p.Limit).
		Offset(p.Offset()).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}

func (r *articleRepository) CountByCategory(ctx context.Context, name string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).
		Where("category = ?", name).
		Count(&count).Error
	return count, err
}

func (r *articleRepository) CountByIssue(ctx context.Context, issueID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Article{}).
		Where("issue_id = ?", issueID).
		Count(&count).Error
	return count, err
}
