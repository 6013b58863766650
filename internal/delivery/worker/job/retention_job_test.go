package job

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"forthecos/config"
	mocks "forthecos/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type jobFixtures struct {
	job      *RetentionJob
	lc       *fxtest.Lifecycle
	apiLogUC *mocks.MockAPILogUsecase
	authUC   *mocks.MockAuthUsecase
}

func newTestJob(t *testing.T, schedule string) (jobFixtures, error) {
	t.Helper()

	f := jobFixtures{
		lc:       fxtest.NewLifecycle(t),
		apiLogUC: mocks.NewMockAPILogUsecase(t),
		authUC:   mocks.NewMockAuthUsecase(t),
	}
	d, err := NewRetentionJob(RetentionJobParams{
		Lc:       f.lc,
		Cfg:      &config.Config{APILogs: &config.APILogsConfig{Schedule: schedule}},
		APILogUC: f.apiLogUC,
		AuthUC:   f.authUC,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	if err != nil {
		return f, err
	}
	f.job = d.(*RetentionJob)

	return f, nil
}

func TestNewRetentionJob_DefaultSchedule(t *testing.T) {
	f, err := newTestJob(t, "")
	require.NoError(t, err)
	assert.Equal(t, defaultRetentionSchedule, f.job.schedule)
	assert.Len(t, f.job.cron.Entries(), 1)
}

func TestNewRetentionJob_InvalidSchedule(t *testing.T) {
	_, err := newTestJob(t, "every tuesday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "every tuesday")
}

func TestRetentionJob_Run(t *testing.T) {
	f, err := newTestJob(t, "@hourly")
	require.NoError(t, err)

	f.apiLogUC.EXPECT().Prune(mock.Anything).Return(int64(12), nil).Once()
	f.authUC.EXPECT().PurgeExpiredSessions(mock.Anything).Return(int64(2), nil).Once()

	f.job.Run()
}

func TestRetentionJob_RunContinuesAfterFailure(t *testing.T) {
	f, err := newTestJob(t, "@hourly")
	require.NoError(t, err)

	f.apiLogUC.EXPECT().Prune(mock.Anything).Return(int64(0), errors.New("db down")).Once()
	f.authUC.EXPECT().PurgeExpiredSessions(mock.Anything).Return(int64(0), nil).Once()

	assert.NotPanics(t, f.job.Run)
}

func TestRetentionJob_ServeAndStop(t *testing.T) {
	f, err := newTestJob(t, "@every 1h")
	require.NoError(t, err)

	f.lc.RequireStart()
	require.NoError(t, f.job.Serve(context.Background()))
	f.lc.RequireStop()
}
