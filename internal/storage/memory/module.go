package memory

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/salwa-health/rentalboard/internal/domain/repository"
)

// Module wires in-memory storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(
		func(s *Storage) repository.WorkspaceRepository { return s.Workspaces() },
		func(s *Storage) repository.HandoffRepository { return s.Handoffs() },
	),
)

type storageParams struct {
	fx.In

	Logger *slog.Logger
}

func newStorage(p storageParams) *Storage {
	return New(p.Logger)
}
