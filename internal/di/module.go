package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/micromart/internal/adapter/userdirectory"
	"github.com/polkiloo/micromart/internal/app"
	"github.com/polkiloo/micromart/internal/config"
	"github.com/polkiloo/micromart/internal/logger"
	"github.com/polkiloo/micromart/internal/server/http/handlers"
	"github.com/polkiloo/micromart/internal/server/http/router"
	"github.com/polkiloo/micromart/internal/storage/memory"
	"github.com/polkiloo/micromart/internal/usecase"
)

// DirectoryModule assembles the user directory service graph.
func DirectoryModule(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.DirectoryModule,
		logger.Module,
		memory.DirectoryModule,
		usecase.DirectoryModule,
		fx.Provide(func(f *app.DirectoryFacade) handlers.DirectoryFacade { return f }),
		router.DirectoryModule,
		app.DirectoryModule,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}

// OrderModule assembles the order service graph.
func OrderModule(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.OrderModule,
		logger.Module,
		memory.OrderModule,
		userdirectory.Module,
		fx.Provide(func(client userdirectory.Client) usecase.LookupProvider { return client }),
		usecase.OrderModule,
		fx.Provide(func(f *app.OrderFacade) handlers.OrderFacade { return f }),
		router.OrderModule,
		app.OrderModule,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
