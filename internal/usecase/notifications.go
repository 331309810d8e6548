package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
	"github.com/salwa-health/rentalboard/internal/domain/repository"
)

// FeedEntry pairs a notification with its display time and the modal the
// entry reopens when clicked.
type FeedEntry struct {
	Notification model.Notification
	DisplayTime  string
	Reason       *ReasonModal
	Success      *SuccessModal
}

// NotificationUseCase maintains the per-workspace notification feed.
type NotificationUseCase struct {
	workspaces repository.WorkspaceRepository
	handoffs   repository.HandoffRepository
	clock      Clock
}

// NewNotificationUseCase constructs NotificationUseCase.
func NewNotificationUseCase(workspaces repository.WorkspaceRepository, handoffs repository.HandoffRepository, clock Clock) *NotificationUseCase {
	return &NotificationUseCase{workspaces: workspaces, handoffs: handoffs, clock: clock}
}

// Feed returns the workspace feed, first consuming a handoff token when one
// is supplied. Consumption is read-once: a repeated or unknown token changes
// nothing, so refreshes and back-navigation cannot duplicate entries. The
// query filters entries without mutating the stored feed.
func (u *NotificationUseCase) Feed(ctx context.Context, workspaceID, handoffToken, query string) ([]FeedEntry, error) {
	if handoffToken != "" {
		if err := u.mergeHandoff(ctx, workspaceID, handoffToken); err != nil {
			return nil, err
		}
	}

	feed, err := u.workspaces.Feed(ctx, workspaceID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	entries := make([]FeedEntry, 0, len(feed))
	for _, n := range feed {
		if !matchesQuery(n, query) {
			continue
		}
		entries = append(entries, u.buildEntry(n, now))
	}
	return entries, nil
}

func (u *NotificationUseCase) mergeHandoff(ctx context.Context, workspaceID, token string) error {
	h, err := u.handoffs.Take(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil
		}
		return err
	}

	if !model.NotificationEligible(h.Order.Status) {
		return nil
	}

	n := model.Notification{
		ID:          fmt.Sprintf("order-%d", h.Order.ID),
		OrderNumber: h.Order.Number,
		OrderTitle:  h.Order.Title,
		Status:      h.Order.Status,
		Timestamp:   h.Timestamp,
		Reason:      h.Reason,
	}
	return u.workspaces.PrependNotification(ctx, workspaceID, n)
}

func (u *NotificationUseCase) buildEntry(n model.Notification, now time.Time) FeedEntry {
	entry := FeedEntry{
		Notification: n,
		DisplayTime:  FormatFeedTime(n.Timestamp, now),
	}
	if n.Status == model.StatusRejected {
		modal := NewViewReasonModal(n.Reason)
		entry.Reason = &modal
		return entry
	}
	if modal, err := NewSuccessModal(n.Status, n.Timestamp, now); err == nil {
		entry.Success = modal
	}
	return entry
}

// matchesQuery does a case-insensitive substring search over the
// concatenation of order number, title and status.
func matchesQuery(n model.Notification, query string) bool {
	query = strings.TrimSpace(query)
	if query == "" {
		return true
	}
	haystack := strings.ToLower(n.OrderNumber + n.OrderTitle + string(n.Status))
	return strings.Contains(haystack, strings.ToLower(query))
}
