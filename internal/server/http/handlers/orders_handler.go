package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/server/http/dto"
)

// OrderHandler manages the order list, detail, and workflow actions.
type OrderHandler struct {
	facade RentalFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade RentalFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// List handles GET /api/rental-services/orders.
func (h *OrderHandler) List(c *gin.Context) {
	orders, totals, err := h.facade.Orders(c.Request.Context(), CurrentWorkspaceID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Totals: toTotalsResponse(totals),
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

// Detail handles GET /api/rental-services/orders/:id. An unknown ID resolves
// to a synthesized fallback detail, never 404.
func (h *OrderHandler) Detail(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	detail, decision, err := h.facade.OrderDetail(c.Request.Context(), CurrentWorkspaceID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.DetailResponse{
		Order:   toOrderResponse(detail.Order),
		Gallery: detail.Gallery,
		Specs:   make([]dto.DetailFieldResponse, 0, len(detail.Specs)),
		Contact: dto.ContactResponse{
			Name:  detail.Contact.Name,
			Phone: detail.Contact.Phone,
			Email: detail.Contact.Email,
		},
		Decision: string(decision),
	}
	for _, f := range detail.Specs {
		response.Specs = append(response.Specs, dto.DetailFieldResponse{Label: f.Label, Value: f.Value})
	}

	c.JSON(http.StatusOK, response)
}

// Approve handles POST /api/rental-services/orders/:id/approve.
func (h *OrderHandler) Approve(c *gin.Context) {
	h.apply(c, model.ActionApprove, "")
}

// Publish handles POST /api/rental-services/orders/:id/publish.
func (h *OrderHandler) Publish(c *gin.Context) {
	h.apply(c, model.ActionPublish, "")
}

// MarkPending handles POST /api/rental-services/orders/:id/pending.
func (h *OrderHandler) MarkPending(c *gin.Context) {
	h.apply(c, model.ActionMarkPending, "")
}

// Reopen handles POST /api/rental-services/orders/:id/reopen.
func (h *OrderHandler) Reopen(c *gin.Context) {
	h.apply(c, model.ActionReopen, "")
}

// RejectPrompt handles GET /api/rental-services/orders/:id/reject, the
// writable reason dialog opened before a rejection is submitted.
func (h *OrderHandler) RejectPrompt(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	modal, err := h.facade.ReasonPrompt(c.Request.Context(), CurrentWorkspaceID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toReasonModalResponse(*modal))
}

// Reject handles POST /api/rental-services/orders/:id/reject.
func (h *OrderHandler) Reject(c *gin.Context) {
	var req dto.RejectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.apply(c, model.ActionReject, req.Reason)
}

// Decide handles POST /api/rental-services/orders/:id/decision, the
// detail-page approve/reject that by default does not touch the shared list.
func (h *OrderHandler) Decide(c *gin.Context) {
	id, ok := orderIDParam(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var decision model.Status
	switch req.Decision {
	case "approve":
		decision = model.StatusApproved
	case "reject":
		decision = model.StatusRejected
	default:
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "decision must be approve or reject"})
		return
	}

	result, err := h.facade.Decide(c.Request.Context(), CurrentWorkspaceID(c), id, decision)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.DecisionResponse{Decision: string(result.Decision)}
	if result.Order != nil {
		order := toOrderResponse(*result.Order)
		response.Order = &order
	}

	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) apply(c *gin.Context, action model.Action, reason string) {
	id, ok := orderIDParam(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	result, err := h.facade.ApplyAction(c.Request.Context(), CurrentWorkspaceID(c), id, action, reason)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.ActionResponse{
		Order:   toOrderResponse(result.Order),
		Success: toSuccessModalResponse(result.Success),
	}
	if result.Handoff != nil {
		response.Handoff = &dto.HandoffResponse{
			Token:    result.Handoff.Token,
			Redirect: result.Handoff.Redirect,
		}
	}

	c.JSON(http.StatusOK, response)
}
