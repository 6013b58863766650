package impl

import (
	"context"
	"strings"
	"testing"

	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	mockRepo "forthecos/internal/mocks/repository"
	mockSvc "forthecos/internal/mocks/service"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type profileServiceFixtures struct {
	service        usecase.ProfileUsecase
	userRepo       *mockRepo.MockUserRepository
	profileRepo    *mockRepo.MockProfileRepository
	generationRepo *mockRepo.MockGenerationRepository
	storage        *mockSvc.MockObjectStorage
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		userRepo:       mockRepo.NewMockUserRepository(t),
		profileRepo:    mockRepo.NewMockProfileRepository(t),
		generationRepo: mockRepo.NewMockGenerationRepository(t),
		storage:        mockSvc.NewMockObjectStorage(t),
	}
	fx.service = NewProfileService(ProfileServiceParams{
		UserRepo:       fx.userRepo,
		ProfileRepo:    fx.profileRepo,
		GenerationRepo: fx.generationRepo,
		Storage:        fx.storage,
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestProfileService_Get_CreatesMissingProfile(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Email: "maker@example.com"}, nil)
	fx.profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)

	profile, err := fx.service.Get(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, userID, profile.ID)
	assert.Equal(t, "maker", profile.DisplayName)
}

func TestProfileService_Get_UserNotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(nil, repository.ErrProfileNotFound)
	fx.userRepo.EXPECT().FindByID(ctx, userID).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Get(ctx, userID)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestProfileService_GetPublic(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	ownerID := uuid.New()
	viewer := userPrincipal()
	profile := &entity.UserProfile{
		ID:          ownerID,
		Email:       "secret@example.com",
		DisplayName: "Maker",
		Socials:     entity.SocialLinks{Instagram: "@maker"},
	}
	gens := []*entity.Generation{{ID: uuid.New(), UserID: ownerID, IsPublic: true}}

	fx.profileRepo.EXPECT().Get(ctx, ownerID).Return(profile, nil)
	fx.generationRepo.EXPECT().ListPublicByOwner(ctx, ownerID, &viewer.UserID).Return(gens, nil)

	out, err := fx.service.GetPublic(ctx, ownerID, &viewer)

	require.NoError(t, err)
	assert.Equal(t, "Maker", out.Profile.DisplayName)
	assert.Equal(t, "@maker", out.Socials.Instagram)
	assert.Len(t, out.Generations, 1)
}

func TestProfileService_Update(t *testing.T) {
	tooLong := strings.Repeat("名", maxDisplayNameLength+1)
	blank := "   "
	good := "  Neo Maker "

	tests := []struct {
		name    string
		input   usecase.UpdateProfileInput
		wantErr error
		want    string
	}{
		{name: "trims name", input: usecase.UpdateProfileInput{DisplayName: &good}, want: "Neo Maker"},
		{name: "blank name", input: usecase.UpdateProfileInput{DisplayName: &blank}, wantErr: domainerrors.ErrValidationFailed},
		{name: "too long", input: usecase.UpdateProfileInput{DisplayName: &tooLong}, wantErr: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			ctx := context.Background()
			userID := uuid.New()

			fx.profileRepo.EXPECT().Get(ctx, userID).Return(&entity.UserProfile{ID: userID, DisplayName: "old"}, nil)
			if tt.wantErr == nil {
				fx.profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)
			}

			profile, err := fx.service.Update(ctx, userID, &tt.input)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, profile.DisplayName)
		})
	}
}

func TestProfileService_UploadAvatar(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()
	data := []byte("png-bytes")

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(&entity.UserProfile{ID: userID}, nil)
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixAvatars, data, "image/png").Return("https://cdn.example.com/avatars/a.png", nil)
	fx.profileRepo.EXPECT().Upsert(ctx, mock.AnythingOfType("*entity.UserProfile")).Return(nil)

	profile, err := fx.service.UploadAvatar(ctx, userID, usecase.UploadInput{Data: data, ContentType: "image/png"})

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/a.png", profile.AvatarURL)
}

func TestProfileService_UploadAvatar_StorageError(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	userID := uuid.New()

	fx.profileRepo.EXPECT().Get(ctx, userID).Return(&entity.UserProfile{ID: userID}, nil)
	fx.storage.EXPECT().Upload(ctx, constants.StoragePrefixAvatars, mock.Anything, mock.Anything).Return("", errors.New("bucket unavailable"))

	_, err := fx.service.UploadAvatar(ctx, userID, usecase.UploadInput{Data: []byte{1}})

	assert.ErrorIs(t, err, domainerrors.ErrUploadFailed)
}
