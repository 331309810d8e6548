package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/server/http/dto"
	"github.com/salwa-health/rentalboard/internal/server/http/middleware"
	"github.com/salwa-health/rentalboard/internal/usecase"
)

// CurrentWorkspaceID extracts the session workspace identifier from context.
func CurrentWorkspaceID(c *gin.Context) string {
	val, ok := c.Get(middleware.WorkspaceContextKey)
	if !ok {
		return ""
	}
	id, _ := val.(string)
	return id
}

// orderIDParam parses the :id route parameter.
func orderIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// respondError maps domain errors to HTTP statuses with a visible message.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domainErrors.ErrInvalidTransition):
		status = http.StatusConflict
	case errors.Is(err, domainErrors.ErrReasonRequired),
		errors.Is(err, domainErrors.ErrInvalidDecision),
		errors.Is(err, domainErrors.ErrInvalidStatus):
		status = http.StatusBadRequest
	}
	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	actions := model.ActionsFor(order.Status)
	names := make([]string, 0, len(actions))
	for _, a := range actions {
		names = append(names, string(a))
	}
	return dto.OrderResponse{
		ID:             order.ID,
		OrderNo:        order.Number,
		OrderTitle:     order.Title,
		DeviceName:     order.DeviceName,
		FDANumber:      order.FDANumber,
		DeviceType:     order.DeviceType,
		ApprovalNumber: order.ApprovalNumber,
		Date:           order.Date,
		Country:        order.Country,
		Region:         order.Region,
		City:           order.City,
		Status:         string(order.Status),
		Actions:        names,
	}
}

func toTotalsResponse(t model.Totals) dto.TotalsResponse {
	return dto.TotalsResponse{Approved: t.Approved, Rejected: t.Rejected, Total: t.Total}
}

func toReasonModalResponse(m usecase.ReasonModal) *dto.ReasonModalResponse {
	return &dto.ReasonModalResponse{Mode: m.Mode, Reason: m.Reason, CanSubmit: m.CanSubmit}
}

func toSuccessModalResponse(m *usecase.SuccessModal) *dto.SuccessModalResponse {
	if m == nil {
		return nil
	}
	return &dto.SuccessModalResponse{
		Status:     string(m.Status),
		Verb:       m.Verb,
		DateLabel:  m.DateLabel,
		ActionDate: m.ActionDate,
	}
}
