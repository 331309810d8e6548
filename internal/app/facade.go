package app

import (
	"context"
	"errors"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/pkg/session"
	"github.com/salwa-health/rentalboard/internal/usecase"
)

// RentalFacade aggregates the rental workflow use cases behind the single
// surface handlers, middleware, and the sweeper consume.
type RentalFacade struct {
	workflow      *usecase.WorkflowUseCase
	notifications *usecase.NotificationUseCase
	detail        *usecase.DetailUseCase
	workspace     *usecase.WorkspaceUseCase
	sessions      session.Strategy
}

// NewRentalFacade constructs RentalFacade.
func NewRentalFacade(
	workflow *usecase.WorkflowUseCase,
	notifications *usecase.NotificationUseCase,
	detail *usecase.DetailUseCase,
	workspace *usecase.WorkspaceUseCase,
	sessions session.Strategy,
) *RentalFacade {
	return &RentalFacade{
		workflow:      workflow,
		notifications: notifications,
		detail:        detail,
		workspace:     workspace,
		sessions:      sessions,
	}
}

// OpenWorkspace creates a freshly seeded workspace and issues its session
// token.
func (f *RentalFacade) OpenWorkspace(ctx context.Context) (string, string, error) {
	ws, err := f.workspace.Open(ctx)
	if err != nil {
		return "", "", err
	}
	token, err := f.sessions.IssueToken(ws.ID)
	if err != nil {
		return "", "", err
	}
	return ws.ID, token, nil
}

// ParseSessionToken resolves a session token to its workspace ID.
func (f *RentalFacade) ParseSessionToken(token string) (string, error) {
	return f.sessions.ParseToken(token)
}

// HasWorkspace reports whether the workspace still exists.
func (f *RentalFacade) HasWorkspace(ctx context.Context, workspaceID string) bool {
	_, _, err := f.workflow.Orders(ctx, workspaceID)
	return !errors.Is(err, domainErrors.ErrNotFound)
}

// ResetWorkspace reseeds the order collection from a navigation payload.
func (f *RentalFacade) ResetWorkspace(ctx context.Context, workspaceID string, payload model.SeedPayload) ([]model.Order, error) {
	return f.workspace.Reset(ctx, workspaceID, payload)
}

// Orders returns the list view collection with derived totals.
func (f *RentalFacade) Orders(ctx context.Context, workspaceID string) ([]model.Order, model.Totals, error) {
	return f.workflow.Orders(ctx, workspaceID)
}

// ReasonPrompt opens the writable rejection-reason dialog.
func (f *RentalFacade) ReasonPrompt(ctx context.Context, workspaceID string, orderID int64) (*usecase.ReasonModal, error) {
	return f.workflow.ReasonPrompt(ctx, workspaceID, orderID)
}

// ApplyAction runs one workflow transition.
func (f *RentalFacade) ApplyAction(ctx context.Context, workspaceID string, orderID int64, action model.Action, reason string) (*usecase.ActionResult, error) {
	return f.workflow.Apply(ctx, workspaceID, orderID, action, reason)
}

// OrderDetail resolves the detail projection for an order.
func (f *RentalFacade) OrderDetail(ctx context.Context, workspaceID string, orderID int64) (*model.OrderDetail, model.Status, error) {
	return f.detail.Get(ctx, workspaceID, orderID)
}

// Decide records an in-detail decision.
func (f *RentalFacade) Decide(ctx context.Context, workspaceID string, orderID int64, decision model.Status) (*usecase.DecisionResult, error) {
	return f.detail.Decide(ctx, workspaceID, orderID, decision)
}

// Feed returns the notification feed, consuming a handoff token when given.
func (f *RentalFacade) Feed(ctx context.Context, workspaceID, handoffToken, query string) ([]usecase.FeedEntry, error) {
	return f.notifications.Feed(ctx, workspaceID, handoffToken, query)
}

// SweepExpired evicts expired workspaces and stale unconsumed handoffs.
func (f *RentalFacade) SweepExpired(ctx context.Context) (int, error) {
	workspaces, err := f.workspace.SweepExpired(ctx)
	if err != nil {
		return workspaces, err
	}
	handoffs, err := f.workflow.SweepHandoffs(ctx)
	return workspaces + handoffs, err
}
