package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

func TestTagService_Create(t *testing.T) {
	repo := new(MockTagRepository)
	svc := NewTagService(repo, nil)

	stored := &model.Tag{Name: "Squeeze Play", Slug: "squeeze-play"}
	repo.On("CreateIdempotent", mock.Anything, mock.MatchedBy(func(tag *model.Tag) bool {
		return tag.Name == "Squeeze Play" && tag.Slug == "squeeze-play"
	})).Return(stored, nil)

	tag, err := svc.Create(context.Background(), readerActor, "Squeeze Play")
	assert.NoError(t, err)
	assert.Equal(t, stored, tag)
}

func TestTagService_Create_RacersConvergeOnOneRow(t *testing.T) {
	repo := new(MockTagRepository)
	svc := NewTagService(repo, nil)

	// the repository resolves the race; both callers get the same row
	winner := &model.Tag{Name: "Endplay", Slug: "endplay"}
	repo.On("CreateIdempotent", mock.Anything, mock.Anything).Return(winner, nil).Twice()

	first, err := svc.Create(context.Background(), readerActor, "Endplay")
	assert.NoError(t, err)
	second, err := svc.Create(context.Background(), contributorActor, "Endplay")
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	repo.AssertExpectations(t)
}

func TestTagService_Create_Guards(t *testing.T) {
	svc := NewTagService(new(MockTagRepository), nil)

	_, err := svc.Create(context.Background(), nil, "Endplay")
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.Create(context.Background(), readerActor, "")
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestTagService_List_PassesFilter(t *testing.T) {
	repo := new(MockTagRepository)
	svc := NewTagService(repo, nil)

	repo.On("List", mock.Anything, "end").Return([]model.Tag{{Name: "Endplay"}}, nil)

	tags, err := svc.List(context.Background(), "end")
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	repo.AssertExpectations(t)
}
