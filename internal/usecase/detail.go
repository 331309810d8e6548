package usecase

import (
	"context"
	"errors"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/domain/repository"
)

// DecisionResult reports the banner shown after an in-detail decision and,
// when write-back is enabled, the order as updated in the shared collection.
type DecisionResult struct {
	Decision model.Status
	Order    *model.Order
}

// DetailUseCase serves the read-only order detail projection.
//
// Detail decisions historically do not write back to the shared order list;
// whether that is intentional is undecided upstream, so write-back is a
// configuration flag rather than hard-wired either way.
type DetailUseCase struct {
	workspaces repository.WorkspaceRepository
	writeBack  bool
}

// NewDetailUseCase constructs DetailUseCase.
func NewDetailUseCase(workspaces repository.WorkspaceRepository, writeBack bool) *DetailUseCase {
	return &DetailUseCase{workspaces: workspaces, writeBack: writeBack}
}

// Get resolves the detail view for an order. An unknown ID synthesizes a
// fallback detail from the route parameter instead of failing, matching
// direct navigation and page refresh.
func (u *DetailUseCase) Get(ctx context.Context, workspaceID string, orderID int64) (*model.OrderDetail, model.Status, error) {
	ws, err := u.workspaces.Get(ctx, workspaceID)
	if err != nil {
		return nil, "", err
	}

	decision := ws.Decisions[orderID]

	order := model.FindOrder(ws.Orders, orderID)
	if order == nil {
		detail := model.FallbackDetail(orderID)
		return &detail, decision, nil
	}
	detail := model.BuildDetail(*order)
	return &detail, decision, nil
}

// Decide records an approve/reject decision made on the detail page. By
// default it only sets the banner flag; with write-back enabled the decision
// also moves the order through the shared state machine.
func (u *DetailUseCase) Decide(ctx context.Context, workspaceID string, orderID int64, decision model.Status) (*DecisionResult, error) {
	if decision != model.StatusApproved && decision != model.StatusRejected {
		return nil, domainErrors.ErrInvalidDecision
	}

	if err := u.workspaces.SetDecision(ctx, workspaceID, orderID, decision); err != nil {
		return nil, err
	}

	result := &DecisionResult{Decision: decision}
	if !u.writeBack {
		return result, nil
	}

	updated, err := u.workspaces.UpdateOrderStatus(ctx, workspaceID, orderID, decision)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return result, nil
		}
		return nil, err
	}
	result.Order = updated
	return result, nil
}
