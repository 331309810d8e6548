package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/salwa-health/rentalboard/internal/server/http/dto"
)

// NotificationHandler serves the notification feed.
type NotificationHandler struct {
	facade RentalFacade
}

// NewNotificationHandler constructs NotificationHandler.
func NewNotificationHandler(facade RentalFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// Feed handles GET /api/rental-services/notifications. The optional handoff
// token is consumed exactly once; q filters the feed.
func (h *NotificationHandler) Feed(c *gin.Context) {
	entries, err := h.facade.Feed(c.Request.Context(), CurrentWorkspaceID(c), c.Query("handoff"), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}

	response := dto.FeedResponse{Entries: make([]dto.NotificationResponse, 0, len(entries))}
	for _, e := range entries {
		entry := dto.NotificationResponse{
			ID:          e.Notification.ID,
			OrderNo:     e.Notification.OrderNumber,
			OrderTitle:  e.Notification.OrderTitle,
			Status:      string(e.Notification.Status),
			Timestamp:   e.Notification.Timestamp,
			DisplayTime: e.DisplayTime,
			Success:     toSuccessModalResponse(e.Success),
		}
		if e.Reason != nil {
			entry.Reason = toReasonModalResponse(*e.Reason)
		}
		response.Entries = append(response.Entries, entry)
	}

	c.JSON(http.StatusOK, response)
}
