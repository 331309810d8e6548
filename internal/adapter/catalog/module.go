package catalog

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/salwa-health/rentalboard/internal/config"
)

// Module exposes the catalog client to the fx graph. An empty catalog
// address yields a nil client and the built-in seed takes over.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	if p.Config.CatalogAddress == "" {
		return nil, nil
	}
	return NewHTTPClient(p.Config.CatalogAddress, p.Logger)
}
