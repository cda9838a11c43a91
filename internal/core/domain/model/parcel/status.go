package parcel

import (
	"fmt"
	"strings"

	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// Status represents the operational lifecycle state of a parcel.
// It implements a state machine with defined transitions to ensure
// parcels follow the correct delivery workflow.
//
// State transitions:
//
//	PendingPickup ──> InTransit ──> Delivered
//	      │
//	      └─────────> Cancelled
//
// Delivered and Cancelled are final states with no further transitions.
// A "pay now" confirmation may deliver a parcel straight from PendingPickup;
// that path goes through TransitionTo rather than Complete.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// PendingPickup is the initial status when a parcel is first created.
	// Parcels in this status are waiting for a dispatcher to assign them.
	PendingPickup

	// InTransit indicates the parcel has been picked up and is on its way.
	InTransit

	// Delivered indicates the parcel reached its recipient. Final state.
	Delivered

	// Cancelled indicates the sender cancelled the parcel before pickup. Final state.
	Cancelled
)

// getStatusStrings returns a map of Status values to their canonical display strings.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "Unknown",
		PendingPickup: "Pending Pickup",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// getValidStatusStrings returns only valid Status values, to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		PendingPickup: "Pending Pickup",
		InTransit:     "In Transit",
		Delivered:     "Delivered",
		Cancelled:     "Cancelled",
	}
}

// ParseStatus collapses every known spelling of a status into one canonical
// value. The source data carries legacy lowercase and underscored variants
// ("pending_pickup", "in transit", "canceled"), all of which are normalized
// here at the system boundary. A missing status is treated as PendingPickup;
// an unrecognized one parses to Unknown.
func ParseStatus(raw string) Status {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer("_", " ", "-", " ").Replace(key)
	key = strings.Join(strings.Fields(key), " ")

	switch key {
	case "":
		return PendingPickup
	case "pending pickup", "pendingpickup":
		return PendingPickup
	case "in transit", "intransit":
		return InTransit
	case "delivered":
		return Delivered
	case "cancelled", "canceled":
		return Cancelled
	default:
		return Unknown
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are PendingPickup, InTransit, Delivered and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the canonical display name of the status,
// e.g. "Pending Pickup". Safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsFinal reports whether no further transitions are defined from this status.
func (s Status) IsFinal() bool {
	return s == Delivered || s == Cancelled
}

// Assign transitions the status to InTransit.
//
// Valid transitions:
//   - PendingPickup -> InTransit (dispatcher picks the parcel up)
//
// Returns (0, error) if the parcel is not awaiting pickup.
func (s Status) Assign() (Status, error) {
	if s != PendingPickup {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to assign", s.String()),
		)
	}

	return InTransit, nil
}

// Complete transitions the status to Delivered.
//
// Valid transitions:
//   - InTransit -> Delivered
//
// Returns (0, error) for any other current status.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}

	return Delivered, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - PendingPickup -> Cancelled (sender withdraws the parcel before pickup)
//
// Cancellation after pickup is not defined; the parcel must run to Delivered.
func (s Status) Cancel() (Status, error) {
	if s != PendingPickup {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}

// TransitionTo validates a general forward transition and returns the target
// status on success. Allowed pairs:
//
//   - PendingPickup -> InTransit
//   - PendingPickup -> Cancelled
//   - PendingPickup -> Delivered (pay-now confirmation forces delivery)
//   - InTransit     -> Delivered
//
// Everything else, including any transition out of a final state, is rejected.
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}

	allowed := map[Status][]Status{
		PendingPickup: {InTransit, Cancelled, Delivered},
		InTransit:     {Delivered},
	}

	for _, next := range allowed[s] {
		if next == target {
			return target, nil
		}
	}

	return 0, errs.NewValueIsInvalidErrorWithCause(
		"status is invalid",
		fmt.Errorf("transition from %s to %s is not allowed", s.String(), target.String()),
	)
}
