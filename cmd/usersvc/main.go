package main

import (
	"context"
	"log/slog"
	"os"

	"taskhub/config"
	"taskhub/internal/delivery"
	"taskhub/internal/delivery/http"
	"taskhub/internal/delivery/http/router"
	"taskhub/internal/delivery/http/router/handler"
	"taskhub/internal/domain/service"
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
			postgres.NewUserRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			newDirectoryClient,
		),
	)
}

// newDirectoryClient builds the peer client for department and address
// lookups.
func newDirectoryClient(cfg *config.Config, logger *slog.Logger) service.DirectoryClient {
	return peer.NewDirectoryClient(cfg.Peers.DirectoryService.BaseURL, cfg.Peers.DirectoryService.Timeout, logger)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewUserHandler,
			router.NewUserRouter,
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
