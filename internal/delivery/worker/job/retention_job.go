// Package job holds scheduled maintenance tasks run by the order worker.
package job

import (
	"context"
	"log/slog"
	"time"

	"forthecos/config"
	"forthecos/internal/delivery"
	"forthecos/internal/domain/lifecycle"
	"forthecos/internal/usecase"

	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const (
	defaultRetentionSchedule = "@daily"
	pruneTimeout             = time.Minute
)

// RetentionJob prunes API logs past retention and expired login sessions
// on a cron schedule.
type RetentionJob struct {
	cron     *cron.Cron
	schedule string
	apiLogUC usecase.APILogUsecase
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
}

// RetentionJobParams holds dependencies for the RetentionJob
type RetentionJobParams struct {
	fx.In

	Lc       fx.Lifecycle
	Cfg      *config.Config
	APILogUC usecase.APILogUsecase
	AuthUC   usecase.AuthUsecase
	Logger   *slog.Logger
}

// NewRetentionJob registers the prune task. An invalid schedule fails startup.
func NewRetentionJob(params RetentionJobParams) (delivery.Delivery, error) {
	schedule := defaultRetentionSchedule
	if params.Cfg.APILogs != nil && params.Cfg.APILogs.Schedule != "" {
		schedule = params.Cfg.APILogs.Schedule
	}

	job := &RetentionJob{
		cron:     cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger))),
		schedule: schedule,
		apiLogUC: params.APILogUC,
		authUC:   params.AuthUC,
		logger:   params.Logger,
	}

	if _, err := job.cron.AddFunc(schedule, job.Run); err != nil {
		return nil, errors.Wrapf(err, "invalid api log retention schedule %q", schedule)
	}

	params.Lc.Append(fx.Hook{
		OnStop: job.stop,
	})

	return job, nil
}

// Serve starts the scheduler in the background.
func (j *RetentionJob) Serve(_ context.Context) error {
	j.logger.Info("Starting retention job", slog.String("schedule", j.schedule))
	j.cron.Start()

	return nil
}

// Run prunes once. Each task runs even when the other fails.
func (j *RetentionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), pruneTimeout)
	defer cancel()

	if removed, err := j.apiLogUC.Prune(ctx); err != nil {
		j.logger.Error("API log retention failed", slog.Any("error", err))
	} else {
		j.logger.Info("API log retention finished", slog.Int64("removed", removed))
	}

	if removed, err := j.authUC.PurgeExpiredSessions(ctx); err != nil {
		j.logger.Error("Session purge failed", slog.Any("error", err))
	} else {
		j.logger.Info("Session purge finished", slog.Int64("removed", removed))
	}
}

// stop waits for a running prune to finish.
func (j *RetentionJob) stop(ctx context.Context) error {
	stopCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	j.logger.Info("Stopping retention job")

	select {
	case <-j.cron.Stop().Done():
		return nil
	case <-stopCtx.Done():
		return errors.WithStack(stopCtx.Err())
	}
}
