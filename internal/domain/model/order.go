package model

// Status describes the approval lifecycle of a rental order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusPublished Status = "Published"
)

// Valid reports whether the value is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusPublished:
		return true
	}
	return false
}

// Order describes a rental equipment order held in a workspace.
// Status is the only field that changes during the workflow.
type Order struct {
	ID             int64
	Number         string
	Title          string
	DeviceName     string
	FDANumber      string
	DeviceType     string
	ApprovalNumber string
	Date           string
	Country        string
	Region         string
	City           string
	Status         Status
}

// Totals aggregates order counts derived from the current collection.
type Totals struct {
	Approved int
	Rejected int
	Total    int
}

// ComputeTotals derives aggregate counts by filtering the collection.
// Counts are never stored separately, so they cannot drift from the orders.
func ComputeTotals(orders []Order) Totals {
	t := Totals{Total: len(orders)}
	for _, o := range orders {
		switch o.Status {
		case StatusApproved:
			t.Approved++
		case StatusRejected:
			t.Rejected++
		}
	}
	return t
}

// UpdateOrderStatus returns a copy of the collection where only the order with
// the matching ID has its status replaced. Ordering and every other field are
// preserved. An unknown ID leaves the result equal to the input.
func UpdateOrderStatus(orders []Order, id int64, next Status) []Order {
	updated := make([]Order, len(orders))
	for i, o := range orders {
		if o.ID == id {
			o.Status = next
		}
		updated[i] = o
	}
	return updated
}

// ReassignIDs renumbers the collection sequentially starting from 1, matching
// how a workspace is (re)initialized from a seed list.
func ReassignIDs(orders []Order) []Order {
	renumbered := make([]Order, len(orders))
	for i, o := range orders {
		o.ID = int64(i + 1)
		renumbered[i] = o
	}
	return renumbered
}

// FindOrder returns the order with the given ID, or nil when absent.
func FindOrder(orders []Order, id int64) *Order {
	for i := range orders {
		if orders[i].ID == id {
			o := orders[i]
			return &o
		}
	}
	return nil
}
