package dto

// ReasonModalResponse is the rejection-reason dialog payload. CanSubmit is
// always false in view mode.
type ReasonModalResponse struct {
	Mode      string `json:"mode"`
	Reason    string `json:"reason"`
	CanSubmit bool   `json:"canSubmit"`
}

// SuccessModalResponse is the status-success dialog payload. Status is
// Approved or Published, never Rejected.
type SuccessModalResponse struct {
	Status     string `json:"status"`
	Verb       string `json:"verb"`
	DateLabel  string `json:"dateLabel"`
	ActionDate string `json:"actionDate"`
}
