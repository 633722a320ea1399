package main

import (
	"context"
	"log/slog"
	"os"

	"townscoffee/config"
	"townscoffee/internal/delivery"
	"townscoffee/internal/delivery/api"
	"townscoffee/internal/delivery/api/middleware"
	"townscoffee/internal/delivery/api/router/handler"
	"townscoffee/internal/infra/auth/firebase"
	logs "townscoffee/internal/infra/log"
	"townscoffee/internal/infra/metrics"
	"townscoffee/internal/infra/notification"
	"townscoffee/internal/infra/persistence"
	"townscoffee/internal/infra/persistence/docrepo"
	"townscoffee/internal/infra/pubsub"
	"townscoffee/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

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
		newMetrics,
		persistence.NewStore,
		firebase.NewApp,
	)
}

// newMetrics returns nil when metrics are disabled; consumers take it as optional.
func newMetrics(cfg *config.Config) *metrics.Metrics {
	if cfg.Metrics == nil || !cfg.Metrics.Enabled {
		return nil
	}

	return metrics.New(cfg)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			docrepo.NewTownRepository,
			docrepo.NewCoffeeRepository,
			docrepo.NewCoffeeFarmerRepository,
			docrepo.NewAuthRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			firebase.NewIdentityProvider,
			notification.NewFirebaseService,
			pubsub.NewEventPublisher,
			pubsub.NewAnalyticsSink,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewTownService,
			impl.NewCoffeeService,
			impl.NewFavoritesService,
			impl.NewFarmerService,
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
			handler.NewUserHandler,
			handler.NewTownHandler,
			handler.NewCoffeeHandler,
			handler.NewFavoritesHandler,
			handler.NewFarmerHandler,
			handler.NewAdminHandler,
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
				os.Exit(1)
			}
		}()
	}
}
