package cache

import (
	"context"
	"log/slog"

	"forthecos/config"
	"forthecos/internal/domain/constants"
	"forthecos/internal/domain/service"
	"forthecos/internal/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params defines the dependencies for the session store.
type Params struct {
	fx.In

	Lifecycle fx.Lifecycle
	Config    *config.Config
	Logger    *slog.Logger
}

// NewSessionStore picks the Redis store when studio.sessionStore is "redis"
// and falls back to the in-process store otherwise.
func NewSessionStore(params Params) (service.SessionStore, error) {
	studioCfg := params.Config.Studio

	switch studioCfg.SessionStore {
	case constants.SessionStoreRedis:
		redisCfg := params.Config.Redis
		if redisCfg.Addr == "" {
			return nil, errors.New("redis.addr is required when studio.sessionStore is redis")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     redisCfg.Addr,
			Password: redisCfg.Password,
			DB:       redisCfg.DB,
		})

		params.Lifecycle.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					return errors.Wrap(err, "failed to ping redis")
				}
				params.Logger.Info("Redis session store connected", slog.String("addr", redisCfg.Addr))

				return nil
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(client.Close())
			},
		})

		return NewRedisStore(client, redisCfg.KeyPrefix, studioCfg.SessionTTL), nil
	case constants.SessionStoreMemory, "":
		params.Logger.Info("Using in-memory session store")

		return NewMemoryStore(studioCfg.SessionTTL), nil
	default:
		return nil, errors.Errorf("unsupported session store: %s", studioCfg.SessionStore)
	}
}
