package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/domain/repository"
)

// SeedSource supplies the initial order collection from the platform catalog.
// A nil source means the built-in seed list is used.
type SeedSource interface {
	FetchOrders(ctx context.Context) ([]model.Order, error)
}

// WorkspaceUseCase creates and reseeds per-session workspaces.
type WorkspaceUseCase struct {
	workspaces repository.WorkspaceRepository
	catalog    SeedSource
	clock      Clock
	sessionTTL time.Duration
	logger     *slog.Logger
}

// NewWorkspaceUseCase constructs WorkspaceUseCase.
func NewWorkspaceUseCase(workspaces repository.WorkspaceRepository, catalog SeedSource, clock Clock, sessionTTL time.Duration, logger *slog.Logger) *WorkspaceUseCase {
	return &WorkspaceUseCase{
		workspaces: workspaces,
		catalog:    catalog,
		clock:      clock,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

// Open creates a fresh workspace: catalog orders when a source is configured
// and reachable, otherwise the built-in seed. IDs are always reassigned
// sequentially, and the feed starts from the static seed entries.
func (u *WorkspaceUseCase) Open(ctx context.Context) (*model.Workspace, error) {
	orders := u.seedOrders(ctx)
	return u.workspaces.Create(ctx, orders, model.SeedNotifications(), u.sessionTTL)
}

// Reset reseeds the order collection from an injected payload, falling back
// to the default seed when the payload carries no items.
func (u *WorkspaceUseCase) Reset(ctx context.Context, workspaceID string, payload model.SeedPayload) ([]model.Order, error) {
	items := payload.Items
	if len(items) == 0 {
		items = u.seedOrders(ctx)
	}
	items = model.ReassignIDs(items)
	if err := u.workspaces.ReplaceOrders(ctx, workspaceID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// SweepExpired evicts workspaces whose session deadline passed.
func (u *WorkspaceUseCase) SweepExpired(ctx context.Context) (int, error) {
	return u.workspaces.DeleteExpired(ctx, u.clock.Now())
}

func (u *WorkspaceUseCase) seedOrders(ctx context.Context) []model.Order {
	if u.catalog != nil {
		orders, err := u.catalog.FetchOrders(ctx)
		if err == nil && len(orders) > 0 {
			return model.ReassignIDs(orders)
		}
		if err != nil {
			u.logger.Warn("catalog seed fetch failed, using built-in seed", slog.String("error", err.Error()))
		}
	}
	return model.SeedOrders()
}
