package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/identity"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
	"github.com/parrishadam/thebridgeworld-sub002/internal/repository"
)

func TestUsersService_List_EnrichesWithProviderRecords(t *testing.T) {
	profiles := new(MockProfileRepository)
	provider := new(MockProvider)
	svc := NewUsersService(profiles, provider)

	rows := []model.Profile{{ID: "live-1"}, {ID: "legacy-1", IsLegacy: true}}
	profiles.On("List", mock.Anything, mock.Anything).Return(rows, int64(2), nil)
	provider.On("Lookup", mock.Anything, []string{"live-1", "legacy-1"}).Return(map[string]identity.Record{
		"live-1": {ID: "live-1", Name: "Ada Reader", Email: "ada@example.com", AvatarURL: "https://cdn/a.png"},
	}, nil)

	users, total, err := svc.List(context.Background(), adminActor, repository.Pagination{})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, users, 2)

	assert.Equal(t, "Ada Reader", users[0].DisplayName)
	assert.Equal(t, "ada@example.com", users[0].IdentityEmail)
	assert.Equal(t, "https://cdn/a.png", users[0].AvatarURL)

	// legacy identity with no live record degrades to placeholders
	assert.Equal(t, "—", users[1].DisplayName)
	assert.Equal(t, "—", users[1].IdentityEmail)
	assert.Empty(t, users[1].AvatarURL)
}

func TestUsersService_List_ProviderOutageDegradesAllRows(t *testing.T) {
	profiles := new(MockProfileRepository)
	provider := new(MockProvider)
	svc := NewUsersService(profiles, provider)

	profiles.On("List", mock.Anything, mock.Anything).Return([]model.Profile{{ID: "u-1"}}, int64(1), nil)
	provider.On("Lookup", mock.Anything, mock.Anything).Return(nil, apperr.Upstreamf("provider down"))

	users, total, err := svc.List(context.Background(), adminActor, repository.Pagination{})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "—", users[0].DisplayName)
}

func TestUsersService_List_AdminOnly(t *testing.T) {
	svc := NewUsersService(new(MockProfileRepository), new(MockProvider))

	_, _, err := svc.List(context.Background(), contributorActor, repository.Pagination{})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, _, err = svc.List(context.Background(), nil, repository.Pagination{})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}

func TestUsersService_ResetPassword(t *testing.T) {
	profiles := new(MockProfileRepository)
	provider := new(MockProvider)
	svc := NewUsersService(profiles, provider)

	profiles.On("FindByID", mock.Anything, "u-1").Return(&model.Profile{ID: "u-1"}, nil)
	provider.On("SendPasswordReset", mock.Anything, "u-1").Return(nil)

	assert.NoError(t, svc.ResetPassword(context.Background(), adminActor, "u-1"))
	provider.AssertExpectations(t)
}

func TestUsersService_ResetPassword_ProviderFailureSurfaces(t *testing.T) {
	profiles := new(MockProfileRepository)
	provider := new(MockProvider)
	svc := NewUsersService(profiles, provider)

	profiles.On("FindByID", mock.Anything, "u-1").Return(&model.Profile{ID: "u-1"}, nil)
	provider.On("SendPasswordReset", mock.Anything, "u-1").Return(apperr.Upstreamf("provider down"))

	err := svc.ResetPassword(context.Background(), adminActor, "u-1")
	assert.ErrorIs(t, err, apperr.ErrUpstream)
}

func TestUsersService_ResetPassword_Guards(t *testing.T) {
	profiles := new(MockProfileRepository)
	svc := NewUsersService(profiles, new(MockProvider))

	assert.ErrorIs(t, svc.ResetPassword(context.Background(), contributorActor, "u-1"), apperr.ErrForbidden)

	profiles.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	assert.ErrorIs(t, svc.ResetPassword(context.Background(), adminActor, "ghost"), apperr.ErrNotFound)
}
