package session

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"

	"rxconsole/config"
	"rxconsole/internal/domain/repository"
)

// StoreParams holds dependencies for the token store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenRepository creates the token store named by session.store
func NewTokenRepository(params StoreParams) (repository.TokenRepository, error) {
	cfg := params.Config.Session
	logger := params.Logger

	switch cfg.Store {
	case "", config.SessionStoreMemory:
		logger.Info("Using in-memory session store")

		return NewMemoryStore(), nil

	case config.SessionStoreRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, errors.Wrap(err, "parse session.redisUrl")
		}
		client := redis.NewClient(opts)
		logger.Info("Using redis session store",
			slog.String("addr", opts.Addr),
			slog.String("key", cfg.Key),
		)

		params.Lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				return errors.Wrap(client.Ping(ctx).Err(), "ping session redis")
			},
			OnStop: func(context.Context) error {
				logger.Info("Closing session redis client")

				return client.Close()
			},
		})

		return NewRedisStore(client, cfg.Key), nil

	default:
		return nil, errors.Errorf("unknown session store: %s", cfg.Store)
	}
}

// Module provides the session FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenRepository, NewJWTInspector),
)
