package order

import (
	"fmt"

	"commerce/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> Confirmed ──> Processing ──> Shipped ──> Delivered
//	   │             │             │
//	   └─────────────┴─────────────┴──> Cancelled
//
// Shipped and Delivered orders can never be cancelled.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are awaiting payment.
	Pending

	// Confirmed indicates payment has been captured for the order.
	Confirmed

	// Processing indicates the order is being prepared in the warehouse.
	Processing

	// Shipped indicates the order has left the warehouse.
	// Shipped orders can no longer be cancelled.
	Shipped

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was cancelled before shipping.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Confirmed:  "Confirmed",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Processing, Shipped, Delivered,
// Cancelled. Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values.
// This method implements the fmt.Stringer interface and is safe
// to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a status name as stored or displayed.
// Returns an error for names that do not map to a valid status.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("%q is not a valid status name", s),
	)
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Pending -> Confirmed (payment captured)
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the order is not pending payment; the error names
//     the current status
func (s Status) Confirm() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidStateError("order", s.String(), "is not pending payment")
	}

	return Confirmed, nil
}

// StartProcessing transitions the status to Processing.
//
// Valid transitions:
//   - Confirmed -> Processing (warehouse picked up the order)
func (s Status) StartProcessing() (Status, error) {
	if s != Confirmed {
		return 0, errs.NewInvalidStateError("order", s.String(), "is not confirmed")
	}

	return Processing, nil
}

// Ship transitions the status to Shipped.
//
// Valid transitions:
//   - Confirmed -> Shipped
//   - Processing -> Shipped
//
// There is no state skip: shipping requires a paid order.
func (s Status) Ship() (Status, error) {
	if err := s.ValidateShip(); err != nil {
		return 0, err
	}

	return Shipped, nil
}

// ValidateShip checks if the status allows shipping without performing the
// transition. Useful for pre-validation before calling external carriers.
func (s Status) ValidateShip() error {
	if s != Confirmed && s != Processing {
		return errs.NewInvalidStateError("order", s.String(), "is not ready for shipping")
	}
	return nil
}

// Deliver transitions the status to Delivered.
//
// Valid transitions:
//   - Shipped -> Delivered
//
// Delivered is a final state with no further transitions possible.
func (s Status) Deliver() (Status, error) {
	if s != Shipped {
		return 0, errs.NewInvalidStateError("order", s.String(), "has not been shipped")
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - Confirmed -> Cancelled
//   - Processing -> Cancelled
//
// Invalid transitions:
//   - Shipped / Delivered -> Cancelled (cancel-immune)
//   - Cancelled -> Cancelled (already cancelled)
func (s Status) Cancel() (Status, error) {
	if err := s.ValidateCancel(); err != nil {
		return 0, err
	}

	return Cancelled, nil
}

// ValidateCancel checks if the status allows cancellation without performing
// the transition. Shipped and Delivered orders always fail this check.
func (s Status) ValidateCancel() error {
	if s != Pending && s != Confirmed && s != Processing {
		return errs.NewInvalidStateError("order", s.String(), "cannot be cancelled")
	}
	return nil
}
