package main

import (
	"context"
	"log/slog"
	"os"

	"curator/config"
	"curator/internal/delivery"
	"curator/internal/delivery/http"
	"curator/internal/delivery/http/middleware"
	"curator/internal/delivery/http/router/handler"
	"curator/internal/infra/analytics"
	"curator/internal/infra/api"
	"curator/internal/infra/auth"
	logs "curator/internal/infra/log"
	"curator/internal/infra/qrcode"
	"curator/internal/infra/realtime"
	"curator/internal/infra/storage"
	"curator/internal/state"
	"curator/internal/usecase"
	"curator/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

type backgroundParams struct {
	fx.In
	fx.Lifecycle

	Config   *config.Config
	Logger   *slog.Logger
	Store    *state.Store
	Session  usecase.SessionUsecase
	Realtime usecase.RealtimeUsecase
}

func main() {
	fx.New(options()).Run()
}

func options() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectState(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startBackground,
			startServer,
		),
	)
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
		),
		storage.Module,
	)
}

func injectRepo() fx.Option {
	return api.Module
}

func injectService() fx.Option {
	return fx.Options(
		auth.Module,
		realtime.Module,
		analytics.Module,
		qrcode.Module,
	)
}

func injectState() fx.Option {
	return state.Module
}

func injectUsecase() fx.Option {
	return impl.Module
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewRequestIDMiddleware,
			middleware.NewErrorMiddleware,
			middleware.NewSessionMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return handler.Module
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

// startBackground restores persisted UI preferences, then runs session
// recovery and, when enabled, the realtime bridge for the lifetime of the app.
func startBackground(params backgroundParams) {
	params.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := params.Store.UI.LoadPreferences(ctx); err != nil {
				params.Logger.Warn("Failed to load UI preferences", slog.Any("error", err))
			}
			if err := params.Session.Start(ctx); err != nil {
				return err
			}
			if params.Config.RealtimeEnabled() {
				return params.Realtime.Start(ctx)
			}

			return nil
		},
		OnStop: func(context.Context) error {
			params.Session.Stop()
			if params.Config.RealtimeEnabled() {
				if err := params.Realtime.Stop(); err != nil {
					params.Logger.Warn("Realtime bridge stopped with error", slog.Any("error", err))
				}
			}

			return nil
		},
	})
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
