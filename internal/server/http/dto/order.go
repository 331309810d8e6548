package dto

// OrderResponse represents one rental order row in the list view.
type OrderResponse struct {
	ID             int64    `json:"id"`
	OrderNo        string   `json:"orderNo"`
	OrderTitle     string   `json:"orderTitle"`
	DeviceName     string   `json:"deviceName"`
	FDANumber      string   `json:"fdaNumber"`
	DeviceType     string   `json:"deviceType"`
	ApprovalNumber string   `json:"approvalNumber"`
	Date           string   `json:"date"`
	Country        string   `json:"country"`
	Region         string   `json:"region"`
	City           string   `json:"city"`
	Status         string   `json:"status"`
	Actions        []string `json:"actions"`
}

// TotalsResponse carries the derived aggregate counts.
type TotalsResponse struct {
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// OrderListResponse is the list view payload.
type OrderListResponse struct {
	Orders []OrderResponse `json:"orders"`
	Totals TotalsResponse  `json:"totals"`
}

// RejectRequest carries the rejection reason collected by the modal.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// DecisionRequest carries an in-detail approve/reject decision.
type DecisionRequest struct {
	Decision string `json:"decision"`
}

// HandoffResponse points the client at the notification feed after a reject.
type HandoffResponse struct {
	Token    string `json:"token"`
	Redirect string `json:"redirect"`
}

// ActionResponse describes the outcome of a workflow action.
type ActionResponse struct {
	Order   OrderResponse         `json:"order"`
	Success *SuccessModalResponse `json:"success,omitempty"`
	Handoff *HandoffResponse      `json:"handoff,omitempty"`
}

// DetailFieldResponse is one labeled value in the detail specification list.
type DetailFieldResponse struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ContactResponse is the supplier contact block.
type ContactResponse struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// DetailResponse is the detail view payload.
type DetailResponse struct {
	Order    OrderResponse         `json:"order"`
	Gallery  []string              `json:"gallery"`
	Specs    []DetailFieldResponse `json:"specs"`
	Contact  ContactResponse       `json:"contact"`
	Decision string                `json:"decision,omitempty"`
}

// DecisionResponse reports the banner after an in-detail decision.
type DecisionResponse struct {
	Decision string         `json:"decision"`
	Order    *OrderResponse `json:"order,omitempty"`
}
