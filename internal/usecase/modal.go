package usecase

import (
	"time"

	domainErrors "github.com/salwa-health/rentalboard/internal/domain/errors"
	"github.com/salwa-health/rentalboard/internal/domain/model"
)

// Reason modal modes. View mode never renders a submit affordance.
const (
	ReasonModalEdit = "edit"
	ReasonModalView = "view"
)

// ReasonModal is the view model of the rejection-reason dialog.
type ReasonModal struct {
	Mode      string
	Reason    string
	CanSubmit bool
}

// NewReasonModal builds the dialog payload. Submission is only offered in
// edit mode regardless of what the caller asks for.
func NewReasonModal(mode, reason string) ReasonModal {
	if mode != ReasonModalEdit {
		mode = ReasonModalView
	}
	return ReasonModal{
		Mode:      mode,
		Reason:    reason,
		CanSubmit: mode == ReasonModalEdit,
	}
}

// NewViewReasonModal replays a stored rejection reason read-only.
func NewViewReasonModal(reason string) ReasonModal {
	if reason == "" {
		reason = "No reason provided."
	}
	return NewReasonModal(ReasonModalView, reason)
}

// SuccessModal is the view model of the status-success dialog.
type SuccessModal struct {
	Status     model.Status
	Verb       string
	DateLabel  string
	ActionDate string
}

var (
	successVerbs = map[model.Status]string{
		model.StatusApproved:  "accepted",
		model.StatusPublished: "published",
	}
	successDateLabels = map[model.Status]string{
		model.StatusApproved:  "Order Accepted Date",
		model.StatusPublished: "Order Published Date",
	}
)

// NewSuccessModal builds the dialog for an Approved or Published order. A
// zero action date falls back to now; callers that log or diff the value must
// pass an explicit timestamp.
func NewSuccessModal(status model.Status, actionDate, now time.Time) (*SuccessModal, error) {
	verb, ok := successVerbs[status]
	if !ok {
		return nil, domainErrors.ErrInvalidStatus
	}
	if actionDate.IsZero() {
		actionDate = now
	}
	return &SuccessModal{
		Status:     status,
		Verb:       verb,
		DateLabel:  successDateLabels[status],
		ActionDate: FormatActionDate(actionDate),
	}, nil
}
