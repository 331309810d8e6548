package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/server/http/dto"
)

// WorkspaceHandler reseeds the session workspace.
type WorkspaceHandler struct {
	facade RentalFacade
}

// NewWorkspaceHandler constructs WorkspaceHandler.
func NewWorkspaceHandler(facade RentalFacade) *WorkspaceHandler {
	return &WorkspaceHandler{facade: facade}
}

// Reset handles POST /api/workspace. An empty body (or one without items)
// reseeds from the default collection; injected items are renumbered
// sequentially, matching a fresh page load with a navigation payload.
func (h *WorkspaceHandler) Reset(c *gin.Context) {
	var req dto.WorkspaceSeedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
	}

	payload := model.SeedPayload{
		CategoryID:   req.CategoryID,
		ServiceID:    req.ServiceID,
		ServiceTitle: req.ServiceTitle,
		OptionID:     req.OptionID,
		OptionTitle:  req.OptionTitle,
		BaseRoute:    req.BaseRoute,
		Items:        make([]model.Order, 0, len(req.Items)),
	}
	for _, item := range req.Items {
		payload.Items = append(payload.Items, toSeedOrder(item))
	}

	orders, err := h.facade.ResetWorkspace(c.Request.Context(), CurrentWorkspaceID(c), payload)
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.OrderListResponse{
		Orders: make([]dto.OrderResponse, 0, len(orders)),
		Totals: toTotalsResponse(model.ComputeTotals(orders)),
	}
	for _, o := range orders {
		response.Orders = append(response.Orders, toOrderResponse(o))
	}

	c.JSON(http.StatusOK, response)
}

func toSeedOrder(item dto.OrderSeed) model.Order {
	status := model.Status(item.Status)
	if !status.Valid() {
		status = model.StatusPending
	}
	return model.Order{
		Number:         item.OrderNo,
		Title:          item.OrderTitle,
		DeviceName:     item.DeviceName,
		FDANumber:      item.FDANumber,
		DeviceType:     item.DeviceType,
		ApprovalNumber: item.ApprovalNumber,
		Date:           item.Date,
		Country:        item.Country,
		Region:         item.Region,
		City:           item.City,
		Status:         status,
	}
}
