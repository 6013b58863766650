package postgres

import (
	"context"
	"testing"
	"time"

	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/repository"
	"forthecos/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGeneration(owner uuid.UUID, public bool, createdAt time.Time) *entity.Generation {
	stats := entity.DefaultStats()

	return &entity.Generation{
		UserID:    owner,
		CreatedAt: createdAt,
		ImageURL:  "https://cdn.example.com/" + uuid.NewString() + ".png",
		Name:      "THE LEGENDARY Elven Enclaves",
		Category:  "Fantasy",
		Type:      entity.PresentationCard,
		Stats:     &stats,
		Transforms: entity.Transforms{
			entity.SurfaceCardFront: {Scale: 1.4, Offset: entity.Offset{X: 5}},
			entity.SurfaceCardBack:  entity.IdentityTransform(),
		},
		ComicLayout: entity.DefaultComicLayout(),
		IsPublic:    public,
	}
}

func TestGenerationRepository_UpsertOverwrites(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenerationRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	gen := newGeneration(owner, false, time.Now())
	require.NoError(t, repo.Upsert(ctx, gen))
	id := gen.ID

	gen.Name = "Renamed"
	gen.IsPublic = true
	require.NoError(t, repo.Upsert(ctx, gen))
	assert.Equal(t, id, gen.ID)

	mine, err := repo.ListByOwner(ctx, owner, &owner)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Renamed", mine[0].Name)
	assert.True(t, mine[0].IsPublic)
	require.NotNil(t, mine[0].Stats)
	assert.Equal(t, entity.DefaultStats(), *mine[0].Stats)
	assert.InDelta(t, 1.4, mine[0].Transforms.Get(entity.SurfaceCardFront).Scale, 1e-9)
}

func TestGenerationRepository_RawHasNoStats(t *testing.T) {
	db := newTestDB(t)
	repo := NewGenerationRepository(db)
	ctx := context.Background()

	gen := newGeneration(uuid.New(), false, time.Now())
	gen.Type = entity.PresentationRaw
	gen.Stats = nil
	require.NoError(t, repo.Upsert(ctx, gen))

	got, err := repo.FindByID(ctx, gen.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, got.Stats)
	assert.Equal(t, entity.PresentationRaw, got.Type)
}

func TestGenerationRepository_FeedDerivesLikes(t *testing.T) {
	db := newTestDB(t)
	gens := NewGenerationRepository(db)
	likes := NewLikeRepository(db)
	profiles := NewProfileRepository(db)
	ctx := context.Background()

	owner := uuid.New()
	viewer := uuid.New()
	require.NoError(t, profiles.Upsert(ctx, &entity.UserProfile{ID: owner, DisplayName: "Maker"}))

	older := newGeneration(owner, true, time.Now().Add(-time.Hour))
	newer := newGeneration(owner, true, time.Now())
	private := newGeneration(owner, false, time.Now())
	for _, g := range []*entity.Generation{older, newer, private} {
		require.NoError(t, gens.Upsert(ctx, g))
	}

	require.NoError(t, likes.Add(ctx, &entity.Like{UserID: viewer, GenerationID: older.ID}))
	require.NoError(t, likes.Add(ctx, &entity.Like{UserID: owner, GenerationID: older.ID}))
	// Adding twice is a no-op.
	require.NoError(t, likes.Add(ctx, &entity.Like{UserID: viewer, GenerationID: older.ID}))

	feed, err := gens.ListPublic(ctx, &viewer, 0)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, newer.ID, feed[0].ID)
	assert.Equal(t, older.ID, feed[1].ID)
	assert.Equal(t, 2, feed[1].LikeCount)
	assert.True(t, feed[1].UserHasLiked)
	assert.False(t, feed[0].UserHasLiked)
	require.NotNil(t, feed[0].Profile)
	assert.Equal(t, "Maker", feed[0].Profile.DisplayName)

	guestFeed, err := gens.ListPublic(ctx, nil, 1)
	require.NoError(t, err)
	require.Len(t, guestFeed, 1)
	assert.False(t, guestFeed[0].UserHasLiked)

	publicOnly, err := gens.ListPublicByOwner(ctx, owner, nil)
	require.NoError(t, err)
	assert.Len(t, publicOnly, 2)
}

func TestGenerationRepository_VisibilityAndDelete(t *testing.T) {
	db := newTestDB(t)
	gens := NewGenerationRepository(db)
	likes := NewLikeRepository(db)
	ctx := context.Background()
	owner := uuid.New()
	stranger := uuid.New()

	gen := newGeneration(owner, false, time.Now())
	require.NoError(t, gens.Upsert(ctx, gen))
	require.NoError(t, likes.Add(ctx, &entity.Like{UserID: stranger, GenerationID: gen.ID}))

	err := gens.SetVisibility(ctx, gen.ID, stranger, true)
	assert.True(t, errors.Is(err, repository.ErrGenerationNotFound))

	require.NoError(t, gens.SetVisibility(ctx, gen.ID, owner, true))
	got, err := gens.FindByID(ctx, gen.ID, nil)
	require.NoError(t, err)
	assert.True(t, got.IsPublic)
	assert.Equal(t, 1, got.LikeCount)

	err = gens.Delete(ctx, gen.ID, &stranger)
	assert.True(t, errors.Is(err, repository.ErrGenerationNotFound))

	require.NoError(t, gens.Delete(ctx, gen.ID, &owner))
	_, err = gens.FindByID(ctx, gen.ID, nil)
	assert.True(t, errors.Is(err, repository.ErrGenerationNotFound))

	n, err := likes.Count(ctx, gen.ID)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestLikeRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewLikeRepository(db)
	ctx := context.Background()
	userID, genID := uuid.New(), uuid.New()

	ok, err := repo.Exists(ctx, userID, genID)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Add(ctx, &entity.Like{UserID: userID, GenerationID: genID}))
	ok, err = repo.Exists(ctx, userID, genID)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, repo.Remove(ctx, userID, genID))
	n, err := repo.Count(ctx, genID)
	require.NoError(t, err)
	assert.Zero(t, n)
}
