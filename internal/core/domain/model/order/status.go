package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/pkg/errs"
)

var (
	// ErrInvalidStatus marks a status value outside of the enumerated set.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrIllegalTransition marks a status change the active policy forbids.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// Status represents the lifecycle state of an order.
//
// State transitions (strict policy):
//
//	Pending ──> Preparing ──> Ready ──> Delivered
//	   │            │           │
//	   └────────────┴───────────┴──> Cancelled
//
// Delivered and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every new order.
	Pending

	// Preparing means the kitchen has started on the order.
	Preparing

	// Ready means the order is waiting to be served.
	Ready

	// Delivered means the order reached the table. Only delivered orders count as sales.
	Delivered

	// Cancelled means the order was abandoned.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Preparing: "Preparing",
		Ready:     "Ready",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// Statuses lists the valid statuses in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Preparing, Ready, Delivered, Cancelled}
}

// InvalidStatusError names the rejected status value.
type InvalidStatusError struct {
	Value string
}

func (e *InvalidStatusError) Error() string {
	names := make([]string, 0, len(Statuses()))
	for _, s := range Statuses() {
		names = append(names, s.String())
	}
	return fmt.Sprintf("Invalid status %q. Must be one of: %s", e.Value, strings.Join(names, ", "))
}

func (e *InvalidStatusError) Unwrap() []error {
	return []error{ErrInvalidStatus, errs.ErrValueIsInvalid}
}

// ParseStatus accepts the exact status names, e.g. "Preparing".
func ParseStatus(s string) (Status, error) {
	for _, status := range Statuses() {
		if status.String() == s {
			return status, nil
		}
	}
	return Unknown, &InvalidStatusError{Value: s}
}

// Validate checks that s is one of the five enumerated statuses.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return &InvalidStatusError{Value: fmt.Sprintf("%d", int(s))}
	}
	return nil
}

// String implements fmt.Stringer and is safe on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transition is allowed under the strict policy.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// CanTransitionTo reports whether next directly follows s in the lifecycle graph.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case Pending:
		return next == Preparing || next == Cancelled
	case Preparing:
		return next == Ready || next == Cancelled
	case Ready:
		return next == Delivered || next == Cancelled
	default:
		return false
	}
}

// TransitionError reports a change rejected by the transition policy.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: cannot move order from %s to %s", ErrIllegalTransition, e.From, e.To)
}

func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// TransitionPolicy decides which status changes updateStatus accepts.
type TransitionPolicy string

const (
	// PermissivePolicy accepts any enumerated status from any status.
	PermissivePolicy TransitionPolicy = "permissive"

	// StrictPolicy only accepts the edges of the lifecycle graph.
	StrictPolicy TransitionPolicy = "strict"
)

// ParseTransitionPolicy is case-insensitive; empty input selects PermissivePolicy.
func ParseTransitionPolicy(s string) (TransitionPolicy, error) {
	switch TransitionPolicy(strings.ToLower(strings.TrimSpace(s))) {
	case "", PermissivePolicy:
		return PermissivePolicy, nil
	case StrictPolicy:
		return StrictPolicy, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"status policy",
			fmt.Errorf("%q must be %q or %q", s, PermissivePolicy, StrictPolicy),
		)
	}
}

// Check returns a *TransitionError when the policy forbids from -> to.
func (p TransitionPolicy) Check(from, to Status) error {
	if err := to.Validate(); err != nil {
		return err
	}
	if p == StrictPolicy && !from.CanTransitionTo(to) {
		return &TransitionError{From: from, To: to}
	}
	return nil
}
