package dto

import "time"

// NotificationResponse is one entry of the notification feed.
type NotificationResponse struct {
	ID          string                `json:"id"`
	OrderNo     string                `json:"orderNo"`
	OrderTitle  string                `json:"orderTitle"`
	Status      string                `json:"status"`
	Timestamp   time.Time             `json:"timestamp"`
	DisplayTime string                `json:"displayTime"`
	Reason      *ReasonModalResponse  `json:"reason,omitempty"`
	Success     *SuccessModalResponse `json:"success,omitempty"`
}

// FeedResponse is the notification view payload.
type FeedResponse struct {
	Entries []NotificationResponse `json:"entries"`
}
