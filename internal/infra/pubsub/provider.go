package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"forthecos/config"
	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/service"
	"forthecos/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher drops order events when no provider is configured.
type noopPublisher struct {
	logger *slog.Logger
}

func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishOrderPaid(ctx context.Context, event *service.OrderPaidEvent) error {
	p.logger.DebugContext(ctx, "[NoopPubSub] Event publishing disabled, skipping",
		slog.String("order_id", event.OrderID),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher picks the order event transport from configuration and
// closes it on shutdown.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	if cfg == nil || cfg.Provider == "" {
		params.Logger.Info("PubSub not configured, order events will not reach the worker")

		return NewNoopPublisher(params.Logger), nil
	}

	publisher, err := newPublisher(params.Ctx, params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing order event publisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newPublisher(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.EventPublisher, error) {
	ps := cfg.PubSub

	switch ps.Provider {
	case constants.PubSubProviderLocal:
		endpoint := localEndpoint(cfg)
		if endpoint == "" {
			return nil, errors.New("local provider needs pubsub.localEndpoint or worker.port")
		}
		logger.Info("Publishing order events to the local worker", slog.String("endpoint", endpoint))

		return NewLocalHTTPPublisher(endpoint, logger), nil

	case constants.PubSubProviderGoogle:
		if ps.ProjectID == "" || ps.TopicID == "" {
			return nil, errors.New("google provider needs pubsub.projectId and pubsub.topicId")
		}
		logger.Info("Publishing order events to Google Pub/Sub",
			slog.String("project_id", ps.ProjectID),
			slog.String("topic_id", ps.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, ps.ProjectID, ps.TopicID, logger)

	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", ps.Provider)
	}
}

// localEndpoint falls back to the worker's push route on localhost.
func localEndpoint(cfg *config.Config) string {
	if cfg.PubSub.LocalEndpoint != "" {
		return cfg.PubSub.LocalEndpoint
	}
	if cfg.Worker != nil && cfg.Worker.Port != 0 {
		return fmt.Sprintf("http://localhost:%d/push", cfg.Worker.Port)
	}

	return ""
}
