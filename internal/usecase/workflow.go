package usecase

import (
	"context"
	"fmt"
	"time"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/domain/repository"
)

// NotificationsRoute is where a reject handoff redirects the client.
const NotificationsRoute = "/api/rental-services/notifications"

// HandoffResult points the client at the notification feed carrying the
// one-shot token for the freshly rejected order.
type HandoffResult struct {
	Token    string
	Redirect string
}

// ActionResult describes the outcome of applying a workflow action. Exactly
// one of Success or Handoff is set for approve/publish and reject; neither is
// set for mark-pending and reopen.
type ActionResult struct {
	Order   model.Order
	Success *SuccessModal
	Handoff *HandoffResult
}

// WorkflowUseCase drives the order status state machine.
type WorkflowUseCase struct {
	workspaces repository.WorkspaceRepository
	handoffs   repository.HandoffRepository
	clock      Clock
	ids        IDGenerator
	handoffTTL time.Duration
}

// NewWorkflowUseCase constructs WorkflowUseCase.
func NewWorkflowUseCase(workspaces repository.WorkspaceRepository, handoffs repository.HandoffRepository, clock Clock, ids IDGenerator, handoffTTL time.Duration) *WorkflowUseCase {
	return &WorkflowUseCase{
		workspaces: workspaces,
		handoffs:   handoffs,
		clock:      clock,
		ids:        ids,
		handoffTTL: handoffTTL,
	}
}

// Orders returns the workspace collection with derived totals.
func (u *WorkflowUseCase) Orders(ctx context.Context, workspaceID string) ([]model.Order, model.Totals, error) {
	ws, err := u.workspaces.Get(ctx, workspaceID)
	if err != nil {
		return nil, model.Totals{}, err
	}
	return ws.Orders, model.ComputeTotals(ws.Orders), nil
}

// ReasonPrompt returns the writable rejection-reason dialog for a pending
// order, the step the operator goes through before submitting a reject.
func (u *WorkflowUseCase) ReasonPrompt(ctx context.Context, workspaceID string, orderID int64) (*ReasonModal, error) {
	ws, err := u.workspaces.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	order := model.FindOrder(ws.Orders, orderID)
	if order == nil {
		return nil, domainErrors.ErrNotFound
	}
	if _, ok := model.NextStatus(order.Status, model.ActionReject); !ok {
		return nil, domainErrors.ErrInvalidTransition
	}
	modal := NewReasonModal(ReasonModalEdit, "")
	return &modal, nil
}

// Apply runs one transition of the state machine. The reason argument is only
// consulted for reject, where a non-empty trimmed value is mandatory and is
// validated before any state changes.
func (u *WorkflowUseCase) Apply(ctx context.Context, workspaceID string, orderID int64, action model.Action, reason string) (*ActionResult, error) {
	ws, err := u.workspaces.Get(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	order := model.FindOrder(ws.Orders, orderID)
	if order == nil {
		return nil, domainErrors.ErrNotFound
	}

	next, ok := model.NextStatus(order.Status, action)
	if !ok {
		return nil, fmt.Errorf("%w: %s from %s", domainErrors.ErrInvalidTransition, action, order.Status)
	}

	if action == model.ActionReject {
		trimmed, ok := ValidateReason(reason)
		if !ok {
			return nil, domainErrors.ErrReasonRequired
		}
		reason = trimmed
	}

	updated, err := u.workspaces.UpdateOrderStatus(ctx, workspaceID, orderID, next)
	if err != nil {
		return nil, err
	}

	result := &ActionResult{Order: *updated}
	now := u.clock.Now()

	switch action {
	case model.ActionApprove, model.ActionPublish:
		modal, err := NewSuccessModal(next, now, now)
		if err != nil {
			return nil, err
		}
		result.Success = modal
	case model.ActionReject:
		token := u.ids.NewID()
		handoff := model.Handoff{
			Token:     token,
			Order:     *updated,
			Reason:    reason,
			Timestamp: now,
			ExpiresAt: now.Add(u.handoffTTL),
		}
		if err := u.handoffs.Put(ctx, handoff); err != nil {
			return nil, err
		}
		result.Handoff = &HandoffResult{
			Token:    token,
			Redirect: fmt.Sprintf("%s?handoff=%s", NotificationsRoute, token),
		}
	}

	return result, nil
}

// SweepHandoffs drops handoff records that were never consumed.
func (u *WorkflowUseCase) SweepHandoffs(ctx context.Context) (int, error) {
	return u.handoffs.DeleteExpired(ctx, u.clock.Now())
}
