package repository

import (
	"context"
	"time"

	"github.com/salwa-health/rentalboard/internal/domain/model"
)

// WorkspaceRepository holds per-session workflow state. Implementations return
// copies, never live references: edits in one view must not leak into another.
type WorkspaceRepository interface {
	Create(ctx context.Context, orders []model.Order, feed []model.Notification, ttl time.Duration) (*model.Workspace, error)
	Get(ctx context.Context, id string) (*model.Workspace, error)
	ReplaceOrders(ctx context.Context, id string, orders []model.Order) error
	UpdateOrderStatus(ctx context.Context, id string, orderID int64, status model.Status) (*model.Order, error)
	SetDecision(ctx context.Context, id string, orderID int64, decision model.Status) error
	PrependNotification(ctx context.Context, id string, n model.Notification) error
	Feed(ctx context.Context, id string) ([]model.Notification, error)
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
