package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"rxconsole/config"
	"rxconsole/internal/delivery"
	"rxconsole/internal/delivery/http"
	"rxconsole/internal/delivery/http/middleware"
	"rxconsole/internal/delivery/http/router/handler"
	"rxconsole/internal/domain/entity"
	"rxconsole/internal/domain/repository"
	"rxconsole/internal/domain/service"
	"rxconsole/internal/infra/export"
	logs "rxconsole/internal/infra/log"
	"rxconsole/internal/infra/metrics"
	"rxconsole/internal/infra/pubsub"
	"rxconsole/internal/infra/restapi"
	"rxconsole/internal/infra/session"
	"rxconsole/internal/infra/socket"
	"rxconsole/internal/usecase"
	"rxconsole/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type tableParams struct {
	fx.In

	Client    *restapi.Client
	Logger    *slog.Logger
	Exporters []service.Exporter
	Archive   service.ExportArchive `optional:"true"`
	Publisher service.EventPublisher
}

type mountParams struct {
	fx.In
	fx.Lifecycle

	Stream        service.EventStream
	Notifications usecase.NotificationCenter
	Badge         usecase.Badge
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			seedSession,
			mountNotifications,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		session.Module,
		socket.Module,
		export.Module,
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			restapi.NewClient,
			restapi.NewNotificationRepository,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				impl.NewSessionService,
				fx.As(new(usecase.SessionUsecase)),
				fx.As(new(service.TokenSource)),
			),
			newTableRegistry,
			newNotificationCenter,
			impl.NewBadge,
		),
	)
}

// newTableRegistry registers one controller per backend resource
func newTableRegistry(params tableParams) usecase.TableRegistry {
	registry := impl.NewTableRegistry(impl.TableDeps{
		Logger:    params.Logger,
		Validator: impl.NewFormValidator(),
		Exporters: params.Exporters,
		Archive:   params.Archive,
		Publisher: params.Publisher,
		Now:       time.Now,
	})

	register(registry, params.Client, impl.DriversDefinition())
	register(registry, params.Client, impl.PharmaciesDefinition())
	register(registry, params.Client, impl.IndependentPharmaciesDefinition())
	register(registry, params.Client, impl.InvestorsDefinition())
	register(registry, params.Client, impl.OtherBusinessesDefinition())
	register(registry, params.Client, impl.PaymentsDefinition())
	register(registry, params.Client, impl.PrescriptionsDefinition())
	register(registry, params.Client, impl.TransferRequestsDefinition())
	register(registry, params.Client, impl.RefillRequestsDefinition())
	register(registry, params.Client, impl.ScheduleRequestsDefinition())
	register(registry, params.Client, impl.ZipCodesDefinition())
	register(registry, params.Client, impl.DeliveryZonesDefinition())
	register(registry, params.Client, impl.UsersDefinition())
	register(registry, params.Client, impl.BlogsDefinition())

	return registry
}

func register[T entity.Record](registry *impl.TableRegistry, client *restapi.Client, def impl.Definition[T]) {
	impl.Register(registry, def, restapi.NewResourceRepository[T](client, def.Path))
}

func newNotificationCenter(
	repo repository.NotificationRepository,
	badge usecase.Badge,
	logger *slog.Logger,
) usecase.NotificationCenter {
	return impl.NewNotificationCenter(repo, logger, time.Now, impl.RefreshBadge(badge, logger))
}

// seedSession stores the configured bearer token once the session store is up
func seedSession(lc fx.Lifecycle, cfg *config.Config, sessions usecase.SessionUsecase, logger *slog.Logger) {
	if cfg.Session.Token == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if _, err := sessions.SignIn(ctx, cfg.Session.Token); err != nil {
				logger.Warn("Configured session token rejected", slog.Any("error", err))
			}

			return nil
		},
	})
}

// mountNotifications attaches the notification center and badge to the socket for the life of the process
func mountNotifications(ctx context.Context, params mountParams) {
	params.Append(fx.Hook{
		OnStart: func(context.Context) error {
			params.Notifications.Mount(ctx, params.Stream)
			params.Badge.Mount(ctx, params.Stream)

			return nil
		},
		OnStop: func(context.Context) error {
			params.Badge.Unmount()
			params.Notifications.Unmount()

			return nil
		},
	})
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewResourceHandler,
			handler.NewNotificationHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, cfg *config.Config, params startServerParams) {
	if cfg.Metrics.Enabled {
		metrics.Init()
	}

	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
