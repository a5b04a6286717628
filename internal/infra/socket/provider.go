package socket

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"rxconsole/config"
	"rxconsole/internal/domain/service"
)

// noopStream is used when no socket is configured; subscribers simply never hear anything.
type noopStream struct{}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

func (noopStream) Subscribe(service.EventHandler) service.Subscription {
	return noopSubscription{}
}

// StreamParams holds dependencies for the EventStream, injected by Fx
type StreamParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Tokens service.TokenSource
	Logger *slog.Logger
}

// NewEventStream creates the process-wide notification stream.
func NewEventStream(params StreamParams) (service.EventStream, error) {
	if params.Config.Socket == nil || params.Config.Socket.URL == "" {
		params.Logger.Info("Socket not configured, live notifications disabled")

		return noopStream{}, nil
	}

	client, err := NewClient(params.Config.Socket, params.Tokens, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStart: client.Start,
		OnStop: func(ctx context.Context) error {
			return client.Stop(ctx)
		},
	})

	return client, nil
}

// Module provides the socket FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventStream),
)
