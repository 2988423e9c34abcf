package main

import (
	"context"
	"log/slog"
	"os"

	"taskhub/config"
	"taskhub/internal/delivery"
	"taskhub/internal/delivery/http"
	"taskhub/internal/delivery/http/middleware"
	"taskhub/internal/delivery/http/router"
	"taskhub/internal/delivery/http/router/handler"
	"taskhub/internal/domain/service"
	"taskhub/internal/infra/auth"
	logs "taskhub/internal/infra/log"
	"taskhub/internal/infra/peer"
	"taskhub/internal/infra/persistence/postgres"
	"taskhub/internal/usecase/impl"

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
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewPrincipalRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewActiveTokenRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newBcryptHasher,
			auth.NewJWTService,
			auth.NewAuthenticator,
			newUserClient,
		),
	)
}

// newBcryptHasher picks the configured cost, falling back to the default.
func newBcryptHasher(cfg *config.Config) service.PasswordHasher {
	if cfg.Auth != nil && cfg.Auth.BcryptCost > 0 {
		return auth.NewBcryptHasherWithCost(cfg.Auth.BcryptCost)
	}

	return auth.NewBcryptHasher()
}

// newUserClient builds the peer client for the user service from config.
func newUserClient(cfg *config.Config, logger *slog.Logger) service.UserClient {
	return peer.NewUserClient(cfg.Peers.UserService.BaseURL, cfg.Peers.UserService.Timeout, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewRefreshTokenStore,
			impl.NewSessionService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			router.NewAuthRouter,
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
