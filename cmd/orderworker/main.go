package main

import (
	"context"
	"log/slog"
	"os"

	"forthecos/config"
	"forthecos/internal/delivery"
	"forthecos/internal/delivery/worker"
	"forthecos/internal/delivery/worker/handler"
	"forthecos/internal/delivery/worker/job"
	"forthecos/internal/domain/service"
	"forthecos/internal/infra/auth"
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
		injectHandler(),
		injectDelivery(),
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
			postgres.NewOrderRepository,
			postgres.NewSettingsRepository,
			postgres.NewAPILogRepository,
			postgres.NewUserRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
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
			impl.NewSettingsService,
			impl.NewOrderService,
			impl.NewAPILogService,
			impl.NewAuthService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewPushHandler,
			handler.NewPaymentHookHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				job.NewRetentionJob,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start worker", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
