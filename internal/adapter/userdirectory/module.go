package userdirectory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/polkiloo/micromart/internal/config"
)

// Module exposes the directory client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.OrderConfig
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.UserServiceAddress, p.Config.LookupTimeout, p.Logger)
}
