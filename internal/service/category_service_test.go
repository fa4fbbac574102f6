package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

func TestCategoryService_Create(t *testing.T) {
	repo := new(MockCategoryRepository)
	articles := new(MockArticleRepository)
	svc := NewCategoryService(repo, articles, nil)

	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Category) bool {
		return c.Name == "Card Play" && c.Slug == "card-play"
	})).Return(nil)

	category, err := svc.Create(context.Background(), adminActor, CategoryInput{Name: "Card Play", Color: "#aa3333"})
	assert.NoError(t, err)
	assert.Equal(t, "card-play", category.Slug)
}

func TestCategoryService_Create_DuplicateNameConflicts(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, new(MockArticleRepository), nil)

	repo.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := svc.Create(context.Background(), adminActor, CategoryInput{Name: "Card Play"})
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "Card Play")
}

func TestCategoryService_Create_AdminOnly(t *testing.T) {
	svc := NewCategoryService(new(MockCategoryRepository), new(MockArticleRepository), nil)

	_, err := svc.Create(context.Background(), contributorActor, CategoryInput{Name: "Card Play"})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.Create(context.Background(), nil, CategoryInput{Name: "Card Play"})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestCategoryService_Delete_BlockedWhileReferenced(t *testing.T) {
	id := uuid.New()
	repo := new(MockCategoryRepository)
	articles := new(MockArticleRepository)
	svc := NewCategoryService(repo, articles, nil)

	repo.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id, Name: "Bidding"}, nil)
	articles.On("CountByCategory", mock.Anything, "Bidding").Return(int64(3), nil)

	err := svc.Delete(context.Background(), adminActor, id)
	assert.ErrorIs(t, err, apperr.ErrConflict)
	assert.Contains(t, err.Error(), "3 article(s)")
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCategoryService_Delete_Unreferenced(t *testing.T) {
	id := uuid.New()
	repo := new(MockCategoryRepository)
	articles := new(MockArticleRepository)
	svc := NewCategoryService(repo, articles, nil)

	repo.On("FindByID", mock.Anything, id).Return(&model.Category{ID: id, Name: "Bidding"}, nil)
	articles.On("CountByCategory", mock.Anything, "Bidding").Return(int64(0), nil)
	repo.On("Delete", mock.Anything, id).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), adminActor, id))
	repo.AssertExpectations(t)
}

func TestCategoryService_Delete_NotFound(t *testing.T) {
	id := uuid.New()
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, new(MockArticleRepository), nil)

	repo.On("FindByID", mock.Anything, id).Return(nil, gorm.ErrRecordNotFound)

	assert.ErrorIs(t, svc.Delete(context.Background(), adminActor, id), apperr.ErrNotFound)
}

func TestCategoryService_List_IsPublic(t *testing.T) {
	repo := new(MockCategoryRepository)
	svc := NewCategoryService(repo, new(MockArticleRepository), nil)

	repo.On("List", mock.Anything).Return([]model.Category{{Name: "Bidding"}}, nil)

	categories, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, categories, 1)
}
