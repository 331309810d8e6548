package session

import (
	"go.uber.org/fx"

	"github.com/salwa-health/rentalboard/internal/config"
)

// Module provides session token primitives via fx.
var Module = fx.Provide(newTokenStrategy)

type strategyParams struct {
	fx.In

	Config *config.Config
}

func newTokenStrategy(p strategyParams) Strategy {
	return NewHMACStrategy(p.Config.SessionSecret, Options{TTL: p.Config.SessionTTL})
}
