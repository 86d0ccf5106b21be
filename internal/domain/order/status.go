package order

import (
	"errors"
	"slices"
	"strings"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrUnknownStatus     = errors.New("unknown order status")
)

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusPaid       Status = "PAID"
	StatusProcessing Status = "PROCESSING"
	StatusShipped    Status = "SHIPPED"
	StatusDelivered  Status = "DELIVERED"
	StatusCancelled  Status = "CANCELLED"
	StatusRefunded   Status = "REFUNDED"
)

var allStatuses = []Status{
	StatusPending,
	StatusPaid,
	StatusProcessing,
	StatusShipped,
	StatusDelivered,
	StatusCancelled,
	StatusRefunded,
}

// transitions is the only place the lifecycle is defined. Both the admin path
// and the payment callbacks go through it.
var transitions = map[Status][]Status{
	StatusPending:    {StatusCancelled},
	StatusPaid:       {StatusProcessing, StatusCancelled, StatusRefunded},
	StatusProcessing: {StatusShipped, StatusCancelled, StatusRefunded},
	StatusShipped:    {StatusDelivered, StatusRefunded},
	StatusDelivered:  {StatusRefunded},
	StatusCancelled:  {},
	StatusRefunded:   {},
}

// settlementTransitions can only be taken by a confirmed payment.
var settlementTransitions = map[Status][]Status{
	StatusPending: {StatusPaid},
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToUpper(strings.TrimSpace(s)))
	if !st.IsValid() {
		return "", ErrUnknownStatus
	}
	return st, nil
}

func AllStatuses() []Status {
	return slices.Clone(allStatuses)
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	targets, ok := transitions[s]
	return ok && len(targets) == 0
}

// CanTransition reports whether from -> to is in the manual transition table.
func CanTransition(from, to Status) bool {
	return slices.Contains(transitions[from], to)
}

func canSettle(from, to Status) bool {
	return slices.Contains(settlementTransitions[from], to)
}

// AllowedTargets lists the manual targets reachable from s.
func AllowedTargets(s Status) []Status {
	return slices.Clone(transitions[s])
}

// TransitionTable returns a copy suitable for publishing to clients.
func TransitionTable() map[Status][]Status {
	out := make(map[Status][]Status, len(transitions))
	for from, targets := range transitions {
		out[from] = slices.Clone(targets)
	}
	return out
}
