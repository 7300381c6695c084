package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/polkiloo/micromart/internal/config"
)

// DirectoryModule wires the user directory runtime components and
// lifecycle hooks.
var DirectoryModule = fx.Options(
	fx.Provide(
		NewDirectoryFacade,
		newDirectoryServer,
	),
	fx.Invoke(registerDirectoryLifecycle),
)

// OrderModule wires the order service runtime components and lifecycle
// hooks.
var OrderModule = fx.Options(
	fx.Provide(
		NewOrderFacade,
		newOrderServer,
	),
	fx.Invoke(registerOrderLifecycle),
)

type directoryServerParams struct {
	fx.In

	Config *config.DirectoryConfig
	Router *gin.Engine
}

func newDirectoryServer(p directoryServerParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type orderServerParams struct {
	fx.In

	Config *config.OrderConfig
	Router *gin.Engine
}

func newOrderServer(p orderServerParams) *http.Server {
	return &http.Server{
		Addr:    p.Config.RunAddress,
		Handler: p.Router,
	}
}

type directoryLifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.DirectoryConfig
}

func registerDirectoryLifecycle(p directoryLifecycleParams) {
	registerServer(p.Lifecycle, p.Shutdowner, p.Logger, p.Server, "user directory", p.Config.ShutdownTimeout)
}

type orderLifecycleParams struct {
	fx.In

	Lifecycle  fx.Lifecycle
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
	Server     *http.Server
	Config     *config.OrderConfig
}

func registerOrderLifecycle(p orderLifecycleParams) {
	registerServer(p.Lifecycle, p.Shutdowner, p.Logger, p.Server, "order service", p.Config.ShutdownTimeout)
}

func registerServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, logger *slog.Logger, server *http.Server, name string, shutdownTimeout time.Duration) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting "+name, slog.String("addr", server.Addr))
			go func() {
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server terminated", slog.String("error", err.Error()))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx := ctx
			cancel := func() {}
			if _, ok := ctx.Deadline(); !ok {
				shutdownCtx, cancel = context.WithTimeout(ctx, shutdownTimeout)
			}
			defer cancel()

			if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			logger.Info(name + " stopped")
			return nil
		},
	})
}
