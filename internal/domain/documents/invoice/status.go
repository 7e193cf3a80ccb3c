package invoice

import (
	"fakturo/internal/core/apperror"
)

// Status is the invoice lifecycle state.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusIssued    Status = "issued"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// transitions is the full reachability graph. Paid and Cancelled are
// terminal; same-status updates are handled separately as idempotent no-ops.
var transitions = map[Status][]Status{
	StatusDraft:     {StatusIssued, StatusCancelled},
	StatusIssued:    {StatusPaid, StatusCancelled},
	StatusPaid:      {},
	StatusCancelled: {},
}

// ParseStatus validates a raw status string.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusDraft, StatusIssued, StatusPaid, StatusCancelled:
		return Status(s), nil
	}
	return "", apperror.NewValidation("unknown status").WithDetail("status", s)
}

// IsTerminal reports whether no transition leaves this status.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

// CanTransition reports whether target is reachable from s in one step.
func (s Status) CanTransition(target Status) bool {
	for _, next := range transitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Mutable reports whether header updates are still allowed in this status.
// Once paid or cancelled, the financial record is frozen; status changes are
// the only mutation left, and there are none from terminal states.
func (s Status) Mutable() bool {
	return s == StatusDraft || s == StatusIssued
}
