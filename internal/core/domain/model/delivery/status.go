package delivery

import (
	"fmt"

	"glassgo/internal/pkg/errs"
)

// Status represents the lifecycle state of a delivery.
// It implements a deliberately loose state machine: any valid status may
// overwrite any non-terminal status, and only the terminal statuses block
// further transitions.
//
// State transitions:
//
//	pending ──> in_progress ──┬──> delayed ───┐
//	                          ├──> incident ──┤
//	                          │     ^   │     │
//	                          │     └───┘     ├──> completed
//	                          └───────────────┴──> delivered
//
// delayed and incident may move onward to a terminal status or back to
// in_progress. completed and delivered are final.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is a delivery that has been registered but not started.
	Pending

	// InProgress is a delivery currently moving along its route.
	// Every delivery starts in this status.
	InProgress

	// Delayed is a delivery running behind schedule. Raises a critical alert.
	Delayed

	// Incident is a delivery interrupted by an incident. Raises a critical alert.
	Incident

	// Completed is a finished delivery. Terminal.
	Completed

	// Delivered is a delivery confirmed received. Terminal.
	Delivered
)

// getStatusStrings returns a map of Status values to their wire representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Delayed:    "delayed",
		Incident:   "incident",
		Completed:  "completed",
		Delivered:  "delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation and parsing.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Delayed:    "delayed",
		Incident:   "incident",
		Completed:  "completed",
		Delivered:  "delivered",
	}
}

// StatusFromString parses a wire string into a Status.
// Unrecognized strings are rejected: the status set is closed, so values like
// "foo" fail at the boundary instead of being silently stored.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a recognized status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, InProgress, Delayed, Incident, Completed,
// Delivered. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, e.g. "in_progress".
// Returns "unknown" for invalid status values.
// This method implements the fmt.Stringer interface.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is final.
// Terminal deliveries ignore further status-change requests.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Delivered
}

// IsDisruptive reports whether the status signals a disruption that warrants
// a critical impact alert.
func (s Status) IsDisruptive() bool {
	return s == Delayed || s == Incident
}

// ChangeTo transitions to the next status.
//
// Valid transitions: any valid status may follow any non-terminal status.
// There is no transition table beyond that; the terminal statuses are the
// only hard stop.
//
// Returns:
//   - (next, nil) on a valid transition
//   - (0, error) if the current status is terminal or next is not a valid status
//
// Callers that want terminal requests ignored rather than rejected must check
// IsTerminal before calling; Delivery.ChangeStatus does exactly that.
func (s Status) ChangeTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return 0, err
	}

	if s.IsTerminal() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is terminal and cannot change", s.String()),
		)
	}

	return next, nil
}
