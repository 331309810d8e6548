package test

import (
	"context"

	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/usecase"
)

// RentalFacadeStub provides controllable behaviour for handler, middleware,
// and router tests. Unset functions fall back to simple defaults.
type RentalFacadeStub struct {
	OrdersFn       func(context.Context, string) ([]model.Order, model.Totals, error)
	ReasonPromptFn func(context.Context, string, int64) (*usecase.ReasonModal, error)
	ApplyFn        func(context.Context, string, int64, model.Action, string) (*usecase.ActionResult, error)
	DetailFn       func(context.Context, string, int64) (*model.OrderDetail, model.Status, error)
	DecideFn       func(context.Context, string, int64, model.Status) (*usecase.DecisionResult, error)
	FeedFn         func(context.Context, string, string, string) ([]usecase.FeedEntry, error)
	ResetFn        func(context.Context, string, model.SeedPayload) ([]model.Order, error)

	ParseFn func(string) (string, error)
	HasFn   func(context.Context, string) bool
	OpenFn  func(context.Context) (string, string, error)

	SweepFn     func(context.Context) (int, error)
	SweepCalled chan struct{}
}

// Orders returns the configured collection or the default seed.
func (s *RentalFacadeStub) Orders(ctx context.Context, workspaceID string) ([]model.Order, model.Totals, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, workspaceID)
	}
	orders := model.SeedOrders()
	return orders, model.ComputeTotals(orders), nil
}

// ReasonPrompt returns an edit-mode reason dialog.
func (s *RentalFacadeStub) ReasonPrompt(ctx context.Context, workspaceID string, orderID int64) (*usecase.ReasonModal, error) {
	if s.ReasonPromptFn != nil {
		return s.ReasonPromptFn(ctx, workspaceID, orderID)
	}
	modal := usecase.NewReasonModal(usecase.ReasonModalEdit, "")
	return &modal, nil
}

// ApplyAction delegates to the override or reports a plain status change.
func (s *RentalFacadeStub) ApplyAction(ctx context.Context, workspaceID string, orderID int64, action model.Action, reason string) (*usecase.ActionResult, error) {
	if s.ApplyFn != nil {
		return s.ApplyFn(ctx, workspaceID, orderID, action, reason)
	}
	return &usecase.ActionResult{Order: model.Order{ID: orderID, Status: model.StatusApproved}}, nil
}

// OrderDetail returns the configured detail or a fallback projection.
func (s *RentalFacadeStub) OrderDetail(ctx context.Context, workspaceID string, orderID int64) (*model.OrderDetail, model.Status, error) {
	if s.DetailFn != nil {
		return s.DetailFn(ctx, workspaceID, orderID)
	}
	detail := model.FallbackDetail(orderID)
	return &detail, "", nil
}

// Decide records an in-detail decision.
func (s *RentalFacadeStub) Decide(ctx context.Context, workspaceID string, orderID int64, decision model.Status) (*usecase.DecisionResult, error) {
	if s.DecideFn != nil {
		return s.DecideFn(ctx, workspaceID, orderID, decision)
	}
	return &usecase.DecisionResult{Decision: decision}, nil
}

// Feed returns the configured feed entries.
func (s *RentalFacadeStub) Feed(ctx context.Context, workspaceID, handoffToken, query string) ([]usecase.FeedEntry, error) {
	if s.FeedFn != nil {
		return s.FeedFn(ctx, workspaceID, handoffToken, query)
	}
	return nil, nil
}

// ResetWorkspace reseeds with the payload items or the default seed.
func (s *RentalFacadeStub) ResetWorkspace(ctx context.Context, workspaceID string, payload model.SeedPayload) ([]model.Order, error) {
	if s.ResetFn != nil {
		return s.ResetFn(ctx, workspaceID, payload)
	}
	if len(payload.Items) > 0 {
		return model.ReassignIDs(payload.Items), nil
	}
	return model.SeedOrders(), nil
}

// ParseSessionToken accepts any token as workspace "ws-1" by default.
func (s *RentalFacadeStub) ParseSessionToken(token string) (string, error) {
	if s.ParseFn != nil {
		return s.ParseFn(token)
	}
	return "ws-1", nil
}

// HasWorkspace reports workspace existence, true by default.
func (s *RentalFacadeStub) HasWorkspace(ctx context.Context, workspaceID string) bool {
	if s.HasFn != nil {
		return s.HasFn(ctx, workspaceID)
	}
	return true
}

// OpenWorkspace returns a fixed workspace and token by default.
func (s *RentalFacadeStub) OpenWorkspace(ctx context.Context) (string, string, error) {
	if s.OpenFn != nil {
		return s.OpenFn(ctx)
	}
	return "ws-1", "session-token", nil
}

// SweepExpired notifies tests about sweep invocations.
func (s *RentalFacadeStub) SweepExpired(ctx context.Context) (int, error) {
	if s.SweepCalled != nil {
		select {
		case s.SweepCalled <- struct{}{}:
		default:
		}
	}
	if s.SweepFn != nil {
		return s.SweepFn(ctx)
	}
	return 0, nil
}
