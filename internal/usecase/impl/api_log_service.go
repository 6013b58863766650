package impl

import (
	"context"
	"log/slog"
	"time"

	"forthecos/config"
	deliverycontext "forthecos/internal/delivery/context"
	"forthecos/internal/domain/entity"
	domainerrors "forthecos/internal/domain/errors"
	"forthecos/internal/domain/repository"
	"forthecos/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type apiLogService struct {
	repo      repository.APILogRepository
	retention time.Duration
	now       func() time.Time
	logger    *slog.Logger
}

// APILogServiceParams holds dependencies for APILogService, injected by Fx.
type APILogServiceParams struct {
	fx.In

	Repo   repository.APILogRepository
	Config *config.Config
	Logger *slog.Logger
}

// NewAPILogService creates the generation call log service.
func NewAPILogService(params APILogServiceParams) usecase.APILogUsecase {
	var retention time.Duration
	if params.Config != nil && params.Config.APILogs != nil {
		retention = params.Config.APILogs.Retention
	}

	return &apiLogService{
		repo:      params.Repo,
		retention: retention,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *apiLogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *apiLogService) Record(ctx context.Context, log *entity.APILog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = srv.now()
	}

	if err := srv.repo.Create(ctx, log); err != nil {
		return errors.Wrap(err, "failed to record api log")
	}

	return nil
}

func (srv *apiLogService) List(ctx context.Context, viewer usecase.Principal, limit int) ([]*entity.APILog, error) {
	if !viewer.IsAdmin() {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "api logs require the admin role")
	}

	logs, err := srv.repo.List(ctx, max(limit, 0))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list api logs")
	}

	return logs, nil
}

func (srv *apiLogService) Clear(ctx context.Context, viewer usecase.Principal) error {
	if !viewer.IsAdmin() {
		return errors.Wrap(domainerrors.ErrForbidden, "api logs require the admin role")
	}

	if err := srv.repo.Clear(ctx); err != nil {
		return errors.Wrap(err, "failed to clear api logs")
	}
	srv.log(ctx).Info("API logs cleared", slog.Any("userID", viewer.UserID))

	return nil
}

// Prune is a no-op when no retention is configured.
func (srv *apiLogService) Prune(ctx context.Context) (int64, error) {
	if srv.retention <= 0 {
		return 0, nil
	}

	removed, err := srv.repo.DeleteOlderThan(ctx, srv.now().Add(-srv.retention))
	if err != nil {
		return 0, errors.Wrap(err, "failed to prune api logs")
	}
	srv.log(ctx).Info("API logs pruned", slog.Int64("removed", removed), slog.Duration("retention", srv.retention))

	return removed, nil
}
