package impl

import (
	"context"
	"testing"
	"time"

	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	mockRepo "forthecos/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAPILogService(t *testing.T, retention time.Duration) (*apiLogService, *mockRepo.MockAPILogRepository) {
	repo := mockRepo.NewMockAPILogRepository(t)
	cfg := newTestConfig()
	cfg.APILogs.Retention = retention

	srv := NewAPILogService(APILogServiceParams{Repo: repo, Config: cfg, Logger: newDiscardLogger()})

	return srv.(*apiLogService), repo
}

func TestAPILogService_Record_FillsIdentity(t *testing.T) {
	srv, repo := createTestAPILogService(t, 0)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	srv.now = func() time.Time { return now }

	entry := &entity.APILog{UserSession: "s-1", Status: entity.APILogStatusSuccess, Cost: 0.04}
	repo.EXPECT().Create(mock.Anything, entry).Return(nil)

	require.NoError(t, srv.Record(context.Background(), entry))
	assert.NotEqual(t, uuid.Nil, entry.ID)
	assert.Equal(t, now, entry.CreatedAt)
}

func TestAPILogService_ListAndClear_RequireAdmin(t *testing.T) {
	srv, _ := createTestAPILogService(t, 0)

	_, err := srv.List(context.Background(), userPrincipal(), 10)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = srv.Clear(context.Background(), userPrincipal())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestAPILogService_List_Admin(t *testing.T) {
	srv, repo := createTestAPILogService(t, 0)

	logs := []*entity.APILog{{ID: uuid.New()}}
	repo.EXPECT().List(mock.Anything, 0).Return(logs, nil)

	got, err := srv.List(context.Background(), adminPrincipal(), -5)

	require.NoError(t, err)
	assert.Equal(t, logs, got)
}

func TestAPILogService_Prune(t *testing.T) {
	t.Run("no retention", func(t *testing.T) {
		srv, _ := createTestAPILogService(t, 0)

		removed, err := srv.Prune(context.Background())

		require.NoError(t, err)
		assert.Zero(t, removed)
	})

	t.Run("cutoff from retention", func(t *testing.T) {
		srv, repo := createTestAPILogService(t, 48*time.Hour)
		now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
		srv.now = func() time.Time { return now }

		repo.EXPECT().DeleteOlderThan(mock.Anything, now.Add(-48*time.Hour)).Return(int64(7), nil)

		removed, err := srv.Prune(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(7), removed)
	})
}
