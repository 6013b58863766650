package main

import (
	"context"
	"log/slog"
	"os"

	"forthecos/config"
	"forthecos/internal/delivery"
	"forthecos/internal/delivery/api"
	"forthecos/internal/delivery/api/middleware"
	"forthecos/internal/delivery/api/router/handler"
	"forthecos/internal/domain/service"
	"forthecos/internal/infra/auth"
	"forthecos/internal/infra/cache"
	"forthecos/internal/infra/imagegen"
	logs "forthecos/internal/infra/log"
	"forthecos/internal/infra/metrics"
	"forthecos/internal/infra/persistence/postgres"
	"forthecos/internal/infra/pubsub"
	"forthecos/internal/infra/qrcode"
	"forthecos/internal/infra/render"
	"forthecos/internal/infra/storage"
	"forthecos/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		func(m *metrics.Metrics) service.Metrics { return m },
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewProfileRepository,
			postgres.NewGenerationRepository,
			postgres.NewLikeRepository,
			postgres.NewOrderRepository,
			postgres.NewSettingsRepository,
			postgres.NewAPILogRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			cache.NewSessionStore,
			storage.New,
			render.NewCompositor,
			qrcode.NewFromConfig,
			pubsub.NewEventPublisher,
			fx.Annotate(
				imagegen.NewFactory,
				fx.As(new(service.ImageGeneratorProvider)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewSettingsService,
			impl.NewGenerationService,
			impl.NewOrderService,
			impl.NewAPILogService,
			impl.NewStudioService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewCatalogHandler,
			handler.NewStudioHandler,
			handler.NewGenerationHandler,
			handler.NewOrderHandler,
			handler.NewProfileHandler,
			handler.NewAdminHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
