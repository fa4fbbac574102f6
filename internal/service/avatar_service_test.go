package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

// pngBytes is a minimal valid PNG header, enough for content sniffing.
var pngBytes = append(
	[]byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'},
	[]byte{0, 0, 0, 13, 'I', 'H', 'D', 'R', 0, 0, 0, 1, 0, 0, 0, 1, 8, 2, 0, 0, 0}...,
)

func TestAvatarService_Upload(t *testing.T) {
	store := new(MockStore)
	profiles := new(MockProfileRepository)
	svc := NewAvatarService(store, profiles, nil)

	store.On("Put", mock.Anything, "avatars/contrib-1", mock.Anything, "image/png").
		Return("/media/avatars/avatars/contrib-1.png", nil)
	profiles.On("FindByID", mock.Anything, "contrib-1").Return(&model.Profile{ID: "contrib-1"}, nil)
	profiles.On("Update", mock.Anything, mock.MatchedBy(func(p *model.Profile) bool {
		return p.PhotoURL == "/media/avatars/avatars/contrib-1.png"
	})).Return(nil)

	url, err := svc.Upload(context.Background(), contributorActor, pngBytes)

	assert.NoError(t, err)
	assert.Equal(t, "/media/avatars/avatars/contrib-1.png", url)
	profiles.AssertExpectations(t)
}

func TestAvatarService_Upload_RejectsNonImage(t *testing.T) {
	svc := NewAvatarService(new(MockStore), new(MockProfileRepository), nil)

	_, err := svc.Upload(context.Background(), contributorActor, []byte("%PDF-1.4 not an image"))
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAvatarService_Upload_RejectsOversize(t *testing.T) {
	svc := NewAvatarService(new(MockStore), new(MockProfileRepository), nil)

	big := bytes.Repeat([]byte{0xff}, MaxAvatarBytes+1)
	_, err := svc.Upload(context.Background(), contributorActor, big)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}

func TestAvatarService_Upload_Guards(t *testing.T) {
	svc := NewAvatarService(new(MockStore), new(MockProfileRepository), nil)

	_, err := svc.Upload(context.Background(), nil, pngBytes)
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)

	_, err = svc.Upload(context.Background(), contributorActor, nil)
	assert.ErrorIs(t, err, apperr.ErrValidation)
}
