package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/parrishadam/thebridgeworld-sub002/internal/apperr"
	"github.com/parrishadam/thebridgeworld-sub002/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func TestProfileService_AdminUpdate_SelfDemotionRejected(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo, nil)

	_, err := svc.AdminUpdate(context.Background(), adminActor, adminActor.ID, AdminProfilePatch{
		IsAdmin: boolPtr(false),
	})

	assert.ErrorIs(t, err, apperr.ErrSelfDemotion)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestProfileService_AdminUpdate_DemotingAnotherAdminSucceeds(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo, nil)

	other := &model.Profile{ID: "admin-2", IsAdmin: true}
	repo.On("FindByID", mock.Anything, "admin-2").Return(other, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.AdminUpdate(context.Background(), adminActor, "admin-2", AdminProfilePatch{
		IsAdmin: boolPtr(false),
	})

	assert.NoError(t, err)
	assert.False(t, updated.IsAdmin)
}

func TestProfileService_AdminUpdate_SparseFields(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo, nil)

	target := &model.Profile{ID: "u-1", FirstName: "Old", LastName: "Name", Bio: "old bio", Tier: model.TierFree}
	repo.On("FindByID", mock.Anything, "u-1").Return(target, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.AdminUpdate(context.Background(), adminActor, "u-1", AdminProfilePatch{
		FirstName: strPtr("New"),
		Tier:      strPtr("premium"),
		IsAuthor:  boolPtr(true),
	})

	assert.NoError(t, err)
	assert.Equal(t, "New", updated.FirstName)
	assert.Equal(t, "Name", updated.LastName)
	assert.Equal(t, "old bio", updated.Bio)
	assert.Equal(t, model.TierPremium, updated.Tier)
	assert.True(t, updated.IsAuthor)
}

func TestProfileService_AdminUpdate_InvalidTierDefaultsToFree(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo, nil)

	target := &model.Profile{ID: "u-1", Tier: model.TierPaid}
	repo.On("FindByID", mock.Anything, "u-1").Return(target, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.AdminUpdate(context.Background(), adminActor, "u-1", AdminProfilePatch{
		Tier: strPtr("platinum"),
	})

	assert.NoError(t, err)
	assert.Equal(t, model.TierFree, updated.Tier)
}

func TestProfileService_AdminUpdate_Guards(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo, nil)

	_, err := svc.AdminUpdate(context.Background(), contributorActor, "u-1", AdminProfilePatch{})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	repo.On("FindByID", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)
	_, err = svc.AdminUpdate(context.Background(), adminActor, "ghost", AdminProfilePatch{})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestProfileService_UpdateSelf(t *testing.T) {
	repo := new(MockProfileRepository)
	svc := NewProfileService(repo, nil)

	own := &model.Profile{ID: "contrib-1", FirstName: "Carl", IsContributor: true}
	repo.On("FindByID", mock.Anything, "contrib-1").Return(own, nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	updated, err := svc.UpdateSelf(context.Background(), contributorActor, SelfProfilePatch{
		Bio: strPtr("Plays too many doubles."),
	})

	assert.NoError(t, err)
	assert.Equal(t, "Plays too many doubles.", updated.Bio)
	assert.Equal(t, "Carl", updated.FirstName)
}

func TestProfileService_UpdateSelf_SelfDemotionRejected(t *testing.T) {
	svc := NewProfileService(new(MockProfileRepository), nil)

	_, err := svc.UpdateSelf(context.Background(), adminActor, SelfProfilePatch{
		IsAdmin: boolPtr(false),
	})
	assert.ErrorIs(t, err, apperr.ErrSelfDemotion)
}

func TestProfileService_UpdateSelf_CannotSelfPromote(t *testing.T) {
	svc := NewProfileService(new(MockProfileRepository), nil)

	_, err := svc.UpdateSelf(context.Background(), contributorActor, SelfProfilePatch{
		IsAdmin: boolPtr(true),
	})
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestProfileService_UpdateSelf_Unauthenticated(t *testing.T) {
	svc := NewProfileService(new(MockProfileRepository), nil)

	_, err := svc.UpdateSelf(context.Background(), nil, SelfProfilePatch{})
	assert.ErrorIs(t, err, apperr.ErrUnauthenticated)
}
