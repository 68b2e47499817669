package donation

import (
	"fmt"

	"foodbridge/internal/pkg/errs"
)

// Status represents the lifecycle state of a donation.
// It implements a state machine with defined transitions to ensure donations
// follow the pickup/delivery workflow.
//
// State transitions:
//
//	Pending ──> Accepted ──> Collected ──┐
//	   ^            │            │       │
//	   │            │            v       │
//	   └────────────┘        Verifying <─┘
//	  (pickup expiry)            │
//	                             v
//	                         Delivered
//
// Accepted donations can be delivered directly (skipping Collected) because a
// courier may drop an entire batch at a camp in one trip. Pending is restored
// only by the pickup-expiry revert. Delivered is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when a supplier pledges a donation.
	// Pending donations are visible to every courier and open for acceptance.
	Pending

	// Accepted indicates a courier has claimed the pickup.
	// Accepted donations revert to Pending when the pickup window expires.
	Accepted

	// Collected indicates the courier has physically picked up the food.
	// Collected donations never expire; collection is evidence of handling.
	Collected

	// Verifying indicates the courier dropped the donation at a camp and the
	// organization has not yet confirmed receipt.
	Verifying

	// Delivered indicates the organization confirmed receipt.
	// This is the terminal state; only the rating may change afterwards.
	Delivered
)

// getStatusStrings returns a map of Status values to their string representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Accepted:  "Accepted",
		Collected: "Collected",
		Verifying: "Verifying",
		Delivered: "Delivered",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Accepted:  "Accepted",
		Collected: "Collected",
		Verifying: "Verifying",
		Delivered: "Delivered",
	}
}

// Validate checks if the Status value is one of the five valid lifecycle
// states. Unknown (0) and any other values are invalid. Used to check Status
// values arriving from external sources (database, API) before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, or "Unknown" for
// invalid values. Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsActivePickup reports whether the donation currently occupies a slot of
// its courier's capacity. Accepted and Collected donations count; Verifying
// and Delivered ones have already been dropped at a camp.
func (s Status) IsActivePickup() bool {
	return s == Accepted || s == Collected
}

// ValidateCanHaveCourier validates the consistency between donation status
// and courier assignment.
//
// Business rules:
//   - Pending donations must not have a courier assigned
//   - All other valid statuses must have a courier assigned
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s.String()),
		)
	}

	if !courier && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s.String()),
		)
	}

	return nil
}

// ValidateCanHaveTargetCamp validates the consistency between donation status
// and target-camp assignment.
//
// Business rules:
//   - Verifying and Delivered donations must have a target camp
//   - All other valid statuses must not have a target camp
func (s Status) ValidateCanHaveTargetCamp(camp bool) error {
	if camp && s != Verifying && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a target camp", s.String()),
		)
	}

	if !camp && (s == Verifying || s == Delivered) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no target camp", s.String()),
		)
	}

	return nil
}

// Accept transitions the status to Accepted.
//
// Valid transitions:
//   - Pending -> Accepted (courier claims the pickup)
//
// Any other source state fails: a donation that is no longer Pending has
// already been claimed by another courier.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Collect transitions the status to Collected.
//
// Valid transitions:
//   - Accepted -> Collected (courier picked up the food)
func (s Status) Collect() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to collect", s.String()),
		)
	}

	return Collected, nil
}

// Deliver transitions the status to Verifying.
//
// Valid transitions:
//   - Accepted -> Verifying (courier delivers straight from pickup)
//   - Collected -> Verifying (courier delivers after collection)
func (s Status) Deliver() (Status, error) {
	if !s.IsActivePickup() {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Verifying, nil
}

// Confirm transitions the status to Delivered.
//
// Valid transitions:
//   - Verifying -> Delivered (organization confirms receipt)
//
// Delivered is terminal; no further transitions are possible.
func (s Status) Confirm() (Status, error) {
	if s != Verifying {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Delivered, nil
}

// Release transitions the status back to Pending when a pickup expires.
//
// Valid transitions:
//   - Accepted -> Pending (pickup window elapsed without collection)
//
// Collected, Verifying, and Delivered donations are never released because
// collection is evidence of active handling.
func (s Status) Release() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to release", s.String()),
		)
	}

	return Pending, nil
}
