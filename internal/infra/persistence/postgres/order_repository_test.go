package postgres

import (
	"context"
	"testing"
	"time"

	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/entity"
	"forthecos/internal/domain/repository"
	"forthecos/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_MarkPaidIsMonotonic(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	owner := uuid.New()

	order := &entity.PhysicalOrder{
		UserID:          owner,
		PaymentOrderID:  constants.PendingPaymentOrderID,
		ItemType:        entity.ItemComicPrint,
		ItemName:        "Comic Cover Print",
		Amount:          14.99,
		PreviewImageURL: "https://cdn.example.com/orders/comic.png",
	}
	require.NoError(t, repo.Create(ctx, order))
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	changed, err := repo.MarkPaid(ctx, order.ID, "PAY-1")
	require.NoError(t, err)
	assert.True(t, changed)

	changed, err = repo.MarkPaid(ctx, order.ID, "PAY-2")
	require.NoError(t, err)
	assert.False(t, changed)

	got, err := repo.FindByID(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, got.IsPaid())
	assert.Equal(t, "PAY-1", got.PaymentOrderID)
	require.NotNil(t, got.PaidAt)

	_, err = repo.MarkPaid(ctx, uuid.New(), "PAY-3")
	assert.True(t, errors.Is(err, repository.ErrOrderNotFound))
}

func TestOrderRepository_Lists(t *testing.T) {
	db := newTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	alice, bob := uuid.New(), uuid.New()

	for i, owner := range []uuid.UUID{alice, alice, bob} {
		require.NoError(t, repo.Create(ctx, &entity.PhysicalOrder{
			UserID:         owner,
			PaymentOrderID: constants.PendingPaymentOrderID,
			ItemType:       entity.ItemCardSet,
			ItemName:       "Trading Card Set",
			Amount:         8.99,
			CreatedAt:      time.Now().Add(time.Duration(i) * time.Minute),
		}))
	}

	mine, err := repo.ListByOwner(ctx, alice)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
	assert.True(t, mine[0].CreatedAt.After(mine[1].CreatedAt))

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSettingsRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	_, err := repo.Load(ctx)
	assert.True(t, errors.Is(err, repository.ErrSettingsNotFound))

	settings := entity.DefaultAdminSettings()
	settings.PaymentLinkComic = "https://pay.example.com/comic"
	require.NoError(t, repo.Save(ctx, &settings))

	settings.DefaultTitle = "THE MYTHIC"
	require.NoError(t, repo.Save(ctx, &settings))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "THE MYTHIC", got.DefaultTitle)
	assert.Equal(t, "https://pay.example.com/comic", got.PaymentLinkComic)
	assert.InDelta(t, 14.99, got.PriceComicPrint, 1e-9)
}

func TestAPILogRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewAPILogRepository(db)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, repo.Create(ctx, &entity.APILog{
		CreatedAt: time.Now().Add(-48 * time.Hour), Status: entity.APILogStatusSuccess, Model: "m",
	}))
	require.NoError(t, repo.Create(ctx, &entity.APILog{
		UserID: &userID, Status: entity.APILogStatusFailed, Model: "m", Category: "Fantasy",
	}))

	logs, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, entity.APILogStatusFailed, logs[0].Status)
	require.NotNil(t, logs[0].UserID)
	assert.Equal(t, userID, *logs[0].UserID)

	removed, err := repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	require.NoError(t, repo.Clear(ctx))
	logs, err = repo.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, logs)
}
