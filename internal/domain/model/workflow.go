package model

// Action identifies an operator action on an order.
type Action string

const (
	ActionApprove     Action = "approve"
	ActionReject      Action = "reject"
	ActionPublish     Action = "publish"
	ActionMarkPending Action = "mark-pending"
	ActionReopen      Action = "reopen"
)

// actionOrder fixes the order in which available actions are reported.
var actionOrder = []Action{ActionApprove, ActionReject, ActionPublish, ActionMarkPending, ActionReopen}

// transitions is the full order workflow. Published is terminal: no actions.
var transitions = map[Status]map[Action]Status{
	StatusPending: {
		ActionApprove: StatusApproved,
		ActionReject:  StatusRejected,
	},
	StatusApproved: {
		ActionPublish:     StatusPublished,
		ActionMarkPending: StatusPending,
	},
	StatusRejected: {
		ActionReopen: StatusPending,
	},
	StatusPublished: {},
}

// NextStatus resolves the status reached by applying an action. The second
// return value is false when the action is not offered from the given status.
func NextStatus(from Status, action Action) (Status, bool) {
	next, ok := transitions[from][action]
	return next, ok
}

// ActionsFor lists the actions offered for an order in the given status.
func ActionsFor(status Status) []Action {
	allowed := transitions[status]
	if len(allowed) == 0 {
		return nil
	}
	actions := make([]Action, 0, len(allowed))
	for _, a := range actionOrder {
		if _, ok := allowed[a]; ok {
			actions = append(actions, a)
		}
	}
	return actions
}
