package impl

import (
	"context"
	"testing"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	mockRepo "forthecos/internal/mocks/repository"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type generationServiceFixtures struct {
	service        usecase.GenerationUsecase
	generationRepo *mockRepo.MockGenerationRepository
	likeRepo       *mockRepo.MockLikeRepository
}

func createTestGenerationService(t *testing.T) generationServiceFixtures {
	fx := generationServiceFixtures{
		generationRepo: mockRepo.NewMockGenerationRepository(t),
		likeRepo:       mockRepo.NewMockLikeRepository(t),
	}
	fx.service = NewGenerationService(GenerationServiceParams{
		GenerationRepo: fx.generationRepo,
		LikeRepo:       fx.likeRepo,
		Config:         newTestConfig(),
		Logger:         newDiscardLogger(),
	})

	return fx
}

func TestGenerationService_Save(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	stats := entity.Stats{Strength: 25, Agility: 3, Intelligence: -3, Speed: 7}
	gen := &entity.Generation{
		UserID:     uuid.New(),
		ImageURL:   "https://cdn.example.com/results/a.png",
		Type:       entity.PresentationCard,
		Stats:      &stats,
		Transforms: entity.IdentityTransforms(),
	}

	fx.generationRepo.EXPECT().Upsert(ctx, gen).Return(nil)

	require.NoError(t, fx.service.Save(ctx, gen))
	assert.NotEqual(t, uuid.Nil, gen.ID)
	assert.False(t, gen.CreatedAt.IsZero())
	assert.Equal(t, entity.StatMax, gen.Stats.Strength)
	assert.Equal(t, entity.StatMin, gen.Stats.Intelligence)
	assert.Len(t, gen.Transforms, 2)
	assert.Contains(t, gen.Transforms, entity.SurfaceCardBack)
}

func TestGenerationService_Save_Rejects(t *testing.T) {
	fx := createTestGenerationService(t)

	err := fx.service.Save(context.Background(), &entity.Generation{ImageURL: "x"})
	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)

	err = fx.service.Save(context.Background(), &entity.Generation{UserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrResultRequired)
}

func TestGenerationService_Get_PrivateIsHiddenFromOthers(t *testing.T) {
	ownerID := uuid.New()
	id := uuid.New()
	private := &entity.Generation{ID: id, UserID: ownerID, IsPublic: false}
	owner := usecase.Principal{UserID: ownerID, Roles: entity.Roles{entity.RoleUser}}
	stranger := userPrincipal()
	admin := adminPrincipal()

	tests := []struct {
		name    string
		viewer  *usecase.Principal
		wantErr error
	}{
		{name: "guest", viewer: nil, wantErr: domainerrors.ErrGenerationNotFound},
		{name: "stranger", viewer: &stranger, wantErr: domainerrors.ErrGenerationNotFound},
		{name: "owner", viewer: &owner},
		{name: "admin", viewer: &admin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestGenerationService(t)
			fx.generationRepo.EXPECT().FindByID(mock.Anything, id, tt.viewer.ID()).Return(private, nil)

			gen, err := fx.service.Get(context.Background(), id, tt.viewer)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, gen)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, id, gen.ID)
		})
	}
}

func TestGenerationService_ToggleVisibility(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	owner := userPrincipal()
	id := uuid.New()

	fx.generationRepo.EXPECT().FindByID(ctx, id, &owner.UserID).Return(&entity.Generation{ID: id, UserID: owner.UserID}, nil).Once()
	fx.generationRepo.EXPECT().SetVisibility(ctx, id, owner.UserID, true).Return(nil)
	fx.generationRepo.EXPECT().FindByID(ctx, id, &owner.UserID).Return(&entity.Generation{ID: id, UserID: owner.UserID, IsPublic: true}, nil).Once()

	gen, err := fx.service.ToggleVisibility(ctx, owner, id)

	require.NoError(t, err)
	assert.True(t, gen.IsPublic)
}

func TestGenerationService_SetVisibility_Idempotent(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	owner := userPrincipal()
	id := uuid.New()

	fx.generationRepo.EXPECT().FindByID(ctx, id, &owner.UserID).Return(&entity.Generation{ID: id, UserID: owner.UserID, IsPublic: true}, nil)

	gen, err := fx.service.SetVisibility(ctx, owner, id, true)

	require.NoError(t, err)
	assert.True(t, gen.IsPublic)
}

func TestGenerationService_ToggleVisibility_ForbiddenForOthers(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	stranger := userPrincipal()
	id := uuid.New()

	fx.generationRepo.EXPECT().FindByID(ctx, id, &stranger.UserID).Return(&entity.Generation{ID: id, UserID: uuid.New(), IsPublic: true}, nil)

	_, err := fx.service.ToggleVisibility(ctx, stranger, id)

	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestGenerationService_Delete(t *testing.T) {
	t.Run("owner deletes with ownership filter", func(t *testing.T) {
		fx := createTestGenerationService(t)
		ctx := context.Background()
		owner := userPrincipal()
		id := uuid.New()

		fx.generationRepo.EXPECT().FindByID(ctx, id, &owner.UserID).Return(&entity.Generation{ID: id, UserID: owner.UserID}, nil)
		fx.generationRepo.EXPECT().Delete(ctx, id, &owner.UserID).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, owner, id))
	})

	t.Run("admin deletes anyone's artifact", func(t *testing.T) {
		fx := createTestGenerationService(t)
		ctx := context.Background()
		admin := adminPrincipal()
		id := uuid.New()

		fx.generationRepo.EXPECT().FindByID(ctx, id, &admin.UserID).Return(&entity.Generation{ID: id, UserID: uuid.New(), IsPublic: true}, nil)
		fx.generationRepo.EXPECT().Delete(ctx, id, (*uuid.UUID)(nil)).Return(nil)

		require.NoError(t, fx.service.Delete(ctx, admin, id))
	})
}

func TestGenerationService_ToggleLike_Optimistic(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	viewer := userPrincipal()
	id := uuid.New()

	fx.generationRepo.EXPECT().FindByID(ctx, id, &viewer.UserID).Return(&entity.Generation{ID: id, UserID: uuid.New(), IsPublic: true, LikeCount: 4}, nil)
	fx.likeRepo.EXPECT().Add(ctx, mock.AnythingOfType("*entity.Like")).Return(nil)

	out, err := fx.service.ToggleLike(ctx, &viewer, id)

	require.NoError(t, err)
	assert.False(t, out.Reconciled)
	assert.True(t, out.Generation.UserHasLiked)
	assert.Equal(t, 5, out.Generation.LikeCount)
}

func TestGenerationService_ToggleLike_ReconcilesOnWriteFailure(t *testing.T) {
	fx := createTestGenerationService(t)

	ctx := context.Background()
	viewer := userPrincipal()
	id := uuid.New()
	liked := &entity.Generation{ID: id, UserID: uuid.New(), IsPublic: true, LikeCount: 3, UserHasLiked: true}
	fresh := &entity.Generation{ID: id, UserID: liked.UserID, IsPublic: true, LikeCount: 3, UserHasLiked: true}

	fx.generationRepo.EXPECT().FindByID(ctx, id, &viewer.UserID).Return(liked, nil).Once()
	fx.likeRepo.EXPECT().Remove(ctx, viewer.UserID, id).Return(errors.New("deadlock"))
	fx.generationRepo.EXPECT().FindByID(ctx, id, &viewer.UserID).Return(fresh, nil).Once()

	out, err := fx.service.ToggleLike(ctx, &viewer, id)

	require.NoError(t, err)
	assert.True(t, out.Reconciled)
	assert.Equal(t, fresh, out.Generation)
}

func TestGenerationService_ToggleLike_Guest(t *testing.T) {
	fx := createTestGenerationService(t)

	_, err := fx.service.ToggleLike(context.Background(), nil, uuid.New())

	assert.ErrorIs(t, err, domainerrors.ErrAuthRequired)
}

func TestGenerationService_Get_NotFound(t *testing.T) {
	fx := createTestGenerationService(t)

	id := uuid.New()
	fx.generationRepo.EXPECT().FindByID(mock.Anything, id, (*uuid.UUID)(nil)).Return(nil, repository.ErrGenerationNotFound)

	_, err := fx.service.Get(context.Background(), id, nil)

	assert.ErrorIs(t, err, domainerrors.ErrGenerationNotFound)
}
