package handlers

import (
	"context"

	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/usecase"
)

// WorkflowFacade exposes the order list and its state machine.
type WorkflowFacade interface {
	Orders(ctx context.Context, workspaceID string) ([]model.Order, model.Totals, error)
	ReasonPrompt(ctx context.Context, workspaceID string, orderID int64) (*usecase.ReasonModal, error)
	ApplyAction(ctx context.Context, workspaceID string, orderID int64, action model.Action, reason string) (*usecase.ActionResult, error)
}

// DetailFacade exposes the order detail projection and its local decisions.
type DetailFacade interface {
	OrderDetail(ctx context.Context, workspaceID string, orderID int64) (*model.OrderDetail, model.Status, error)
	Decide(ctx context.Context, workspaceID string, orderID int64, decision model.Status) (*usecase.DecisionResult, error)
}

// NotificationFacade exposes the notification feed.
type NotificationFacade interface {
	Feed(ctx context.Context, workspaceID, handoffToken, query string) ([]usecase.FeedEntry, error)
}

// WorkspaceFacade exposes workspace reseeding.
type WorkspaceFacade interface {
	ResetWorkspace(ctx context.Context, workspaceID string, payload model.SeedPayload) ([]model.Order, error)
}

// RentalFacade aggregates the full set of operations used across handlers.
type RentalFacade interface {
	WorkflowFacade
	DetailFacade
	NotificationFacade
	WorkspaceFacade
}
