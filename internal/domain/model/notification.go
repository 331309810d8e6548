package model

import "time"

// Notification is a terminal-status event shown in the feed. Order fields are
// snapshots taken at the moment of the status change, never live references.
type Notification struct {
	ID          string
	OrderNumber string
	OrderTitle  string
	Status      Status
	Timestamp   time.Time
	Reason      string
}

// NotificationEligible reports whether a status change produces a feed entry.
// Pending is never notification-worthy.
func NotificationEligible(status Status) bool {
	switch status {
	case StatusApproved, StatusPublished, StatusRejected:
		return true
	}
	return false
}

// Handoff carries a rejected (or otherwise decided) order from the list view
// to the notification feed. It is consumed exactly once.
type Handoff struct {
	Token     string
	Order     Order
	Reason    string
	Timestamp time.Time
	ExpiresAt time.Time
}

// Workspace is one session's private copy of the workflow state: the order
// collection, the notification feed, and in-detail decision flags.
type Workspace struct {
	ID        string
	Orders    []Order
	Feed      []Notification
	Decisions map[int64]Status
	ExpiresAt time.Time
}
