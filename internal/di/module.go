package di

import (
	"go.uber.org/fx"

	"github.com/salwa-health/rentalboard/internal/adapter/catalog"
	"github.com/salwa-health/rentalboard/internal/app"
	"github.com/salwa-health/rentalboard/internal/config"
	"github.com/salwa-health/rentalboard/internal/logger"
	"github.com/salwa-health/rentalboard/internal/pkg/session"
	"github.com/salwa-health/rentalboard/internal/server/http/router"
	"github.com/salwa-health/rentalboard/internal/storage/memory"
	"github.com/salwa-health/rentalboard/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		session.Module,
		memory.Module,
		catalog.Module,
		usecase.Module,
		fx.Provide(func(client catalog.Client) usecase.SeedSource {
			if client == nil {
				return nil
			}
			return client
		}),
		fx.Provide(func(facade *app.RentalFacade) router.Facade { return facade }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
