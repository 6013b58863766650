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

const defaultFeedLimit = 50

type generationService struct {
	generationRepo repository.GenerationRepository
	likeRepo       repository.LikeRepository
	feedLimit      int
	logger         *slog.Logger
}

// GenerationServiceParams holds dependencies for GenerationService, injected by Fx.
type GenerationServiceParams struct {
	fx.In

	GenerationRepo repository.GenerationRepository
	LikeRepo       repository.LikeRepository
	Config         *config.Config
	Logger         *slog.Logger
}

// NewGenerationService creates the artifact service.
func NewGenerationService(params GenerationServiceParams) usecase.GenerationUsecase {
	feedLimit := defaultFeedLimit
	if params.Config != nil && params.Config.Studio != nil && params.Config.Studio.FeedLimit > 0 {
		feedLimit = params.Config.Studio.FeedLimit
	}

	return &generationService{
		generationRepo: params.GenerationRepo,
		likeRepo:       params.LikeRepo,
		feedLimit:      feedLimit,
		logger:         params.Logger,
	}
}

func (srv *generationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *generationService) Save(ctx context.Context, gen *entity.Generation) error {
	if gen.UserID == uuid.Nil {
		return errors.WithStack(domainerrors.ErrAuthRequired)
	}
	if gen.ImageURL == "" {
		return errors.WithStack(domainerrors.ErrResultRequired)
	}
	if gen.ID == uuid.Nil {
		gen.ID = uuid.New()
	}
	if gen.CreatedAt.IsZero() {
		gen.CreatedAt = time.Now()
	}
	gen.UpdatedAt = time.Now()
	if gen.Stats != nil {
		stats := gen.Stats.Clamp()
		gen.Stats = &stats
	}
	gen.Transforms = gen.MeaningfulTransforms()

	if err := srv.generationRepo.Upsert(ctx, gen); err != nil {
		srv.log(ctx).Error("Failed to save generation", slog.Any("generationID", gen.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to save generation")
	}
	srv.log(ctx).Info("Generation saved",
		slog.Any("generationID", gen.ID),
		slog.String("type", string(gen.Type)),
		slog.Bool("public", gen.IsPublic),
	)

	return nil
}

func (srv *generationService) ListMine(ctx context.Context, viewer usecase.Principal) ([]*entity.Generation, error) {
	gens, err := srv.generationRepo.ListByOwner(ctx, viewer.UserID, viewer.ID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to list generations")
	}

	return gens, nil
}

func (srv *generationService) Feed(ctx context.Context, viewer *usecase.Principal) ([]*entity.Generation, error) {
	gens, err := srv.generationRepo.ListPublic(ctx, viewer.ID(), srv.feedLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load community feed")
	}

	return gens, nil
}

func (srv *generationService) Get(ctx context.Context, id uuid.UUID, viewer *usecase.Principal) (*entity.Generation, error) {
	gen, err := srv.generationRepo.FindByID(ctx, id, viewer.ID())
	if err != nil {
		if errors.Is(err, repository.ErrGenerationNotFound) {
			return nil, errors.WithStack(domainerrors.ErrGenerationNotFound)
		}

		return nil, errors.Wrap(err, "failed to find generation")
	}

	// Private artifacts are invisible to everyone but the owner and admins.
	if !gen.IsPublic && !canManage(viewer, gen) {
		return nil, errors.WithStack(domainerrors.ErrGenerationNotFound)
	}

	return gen, nil
}

func (srv *generationService) ToggleVisibility(ctx context.Context, viewer usecase.Principal, id uuid.UUID) (*entity.Generation, error) {
	gen, err := srv.loadManaged(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	return srv.setVisibility(ctx, viewer, gen, !gen.IsPublic)
}

func (srv *generationService) SetVisibility(ctx context.Context, viewer usecase.Principal, id uuid.UUID, public bool) (*entity.Generation, error) {
	gen, err := srv.loadManaged(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	if gen.IsPublic == public {
		return gen, nil
	}

	return srv.setVisibility(ctx, viewer, gen, public)
}

func (srv *generationService) setVisibility(ctx context.Context, viewer usecase.Principal, gen *entity.Generation, public bool) (*entity.Generation, error) {
	if err := srv.generationRepo.SetVisibility(ctx, gen.ID, gen.UserID, public); err != nil {
		return nil, errors.Wrap(err, "failed to update visibility")
	}
	srv.log(ctx).Info("Generation visibility changed", slog.Any("generationID", gen.ID), slog.Bool("public", public))

	updated, err := srv.generationRepo.FindByID(ctx, gen.ID, viewer.ID())
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload generation")
	}

	return updated, nil
}

func (srv *generationService) Delete(ctx context.Context, viewer usecase.Principal, id uuid.UUID) error {
	gen, err := srv.loadManaged(ctx, viewer, id)
	if err != nil {
		return err
	}

	owner := &gen.UserID
	if !gen.OwnedBy(viewer.UserID) {
		// Admin delete skips the ownership filter.
		owner = nil
	}
	if err := srv.generationRepo.Delete(ctx, id, owner); err != nil {
		if errors.Is(err, repository.ErrGenerationNotFound) {
			return errors.WithStack(domainerrors.ErrGenerationNotFound)
		}

		return errors.Wrap(err, "failed to delete generation")
	}
	srv.log(ctx).Info("Generation deleted", slog.Any("generationID", id), slog.Any("by", viewer.UserID))

	return nil
}

// ToggleLike applies the flip locally, writes it, and on a failed write
// answers with a fresh read instead of the optimistic view.
func (srv *generationService) ToggleLike(ctx context.Context, viewer *usecase.Principal, id uuid.UUID) (*usecase.LikeOutput, error) {
	if viewer == nil {
		return nil, errors.WithStack(domainerrors.ErrAuthRequired)
	}

	current, err := srv.Get(ctx, id, viewer)
	if err != nil {
		return nil, err
	}

	optimistic := entity.ApplyLikeToggle(*current)
	if writeErr := srv.writeLike(ctx, viewer.UserID, id, optimistic.UserHasLiked); writeErr != nil {
		srv.log(ctx).Warn("Like write failed, reconciling", slog.Any("generationID", id), slog.Any("error", writeErr))

		fresh, err := srv.generationRepo.FindByID(ctx, id, viewer.ID())
		if err != nil {
			return nil, errors.Wrap(writeErr, "failed to toggle like")
		}

		return &usecase.LikeOutput{Generation: fresh, Reconciled: true}, nil
	}

	return &usecase.LikeOutput{Generation: &optimistic}, nil
}

func (srv *generationService) writeLike(ctx context.Context, userID, generationID uuid.UUID, liked bool) error {
	if liked {
		return srv.likeRepo.Add(ctx, &entity.Like{UserID: userID, GenerationID: generationID, CreatedAt: time.Now()})
	}

	return srv.likeRepo.Remove(ctx, userID, generationID)
}

func (srv *generationService) loadManaged(ctx context.Context, viewer usecase.Principal, id uuid.UUID) (*entity.Generation, error) {
	gen, err := srv.Get(ctx, id, &viewer)
	if err != nil {
		return nil, err
	}
	if !canManage(&viewer, gen) {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "only the owner can change this artifact")
	}

	return gen, nil
}

func canManage(viewer *usecase.Principal, gen *entity.Generation) bool {
	if viewer == nil {
		return false
	}

	return gen.OwnedBy(viewer.UserID) || viewer.IsAdmin()
}
