package donation

import (
	"errors"
	"fmt"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

const (
	// RatingMin is the lowest score an organization can give a delivery.
	RatingMin = 1
	// RatingMax is the highest score an organization can give a delivery.
	RatingMax = 5
)

var (
	// ErrDonationIsNotConstructed is returned when a Donation instance was not
	// created through NewDonation or RestoreDonation.
	ErrDonationIsNotConstructed = errors.New("Donation must be created via NewDonation constructor")
	// ErrFoodDescriptionIsRequired is returned when creating a donation without
	// describing the food being pledged.
	ErrFoodDescriptionIsRequired = errs.NewValueIsRequiredError("food description")
	// ErrPickupAddressIsRequired is returned when creating a donation without a
	// pickup address.
	ErrPickupAddressIsRequired = errs.NewValueIsRequiredError("pickup address")
	// ErrCourierMismatch is returned when a courier acts on a donation that is
	// assigned to somebody else.
	ErrCourierMismatch = errors.New("donation is assigned to a different courier")
)

// Donation is the aggregate root tracking a unit of pledged food from the
// supplier's pledge through courier pickup to confirmed delivery at a camp.
//
// Donation enforces these invariants:
//   - A courier is assigned iff the status is past Pending
//   - A target camp is assigned iff the status is Verifying or Delivered
//   - Each lifecycle timestamp is written only by the transition that names it
//   - acceptedAt is cleared (with the courier) when an expired pickup is released
//   - A rating exists only on Delivered donations and stays within [1, 5]
//
// All state changes go through the transition methods below; the struct uses
// private fields so the invariants cannot be bypassed.
type Donation struct {
	// id is the unique identifier for the donation
	id kernel.UUID

	// supplierID references the restaurant that pledged the food, immutable after creation
	supplierID kernel.UUID

	// foodDescription describes the pledged food
	foodDescription string

	// quantity is the approximate number of servings
	quantity int

	// pickupAddress is where the courier collects the food
	pickupAddress string

	// status is the current state in the donation lifecycle
	status Status

	// courierID is the assigned courier (nil while Pending)
	courierID *kernel.UUID

	// targetCampID is the camp the donation was delivered to (nil before Verifying)
	targetCampID *kernel.UUID

	// createdAt is set once when the supplier pledges the donation
	createdAt time.Time

	// acceptedAt is set on acceptance and cleared when an expired pickup is released
	acceptedAt *time.Time

	// collectedAt is set when the courier physically picks up the food
	collectedAt *time.Time

	// deliveredAt is set when the courier drops the donation at a camp
	deliveredAt *time.Time

	// rating is the organization's score for the delivery, nil until rated
	rating *int

	// review is the optional free-text feedback paired with the rating
	review string

	// guard ensures the donation was created via a constructor
	guard guard.ConstructorGuard
}

// NewDonation creates a Pending donation pledged by a supplier.
// This and RestoreDonation are the only ways to obtain a valid Donation.
//
// Parameters:
//   - id: unique identifier (must be a valid UUID)
//   - supplierID: the pledging supplier (must be a valid UUID)
//   - foodDescription: what is being donated (must be non-empty)
//   - quantity: approximate servings (must be positive)
//   - pickupAddress: where to collect (must be non-empty)
//   - createdAt: pledge time, supplied by the caller's clock
func NewDonation(
	id kernel.UUID,
	supplierID kernel.UUID,
	foodDescription string,
	quantity int,
	pickupAddress string,
	createdAt time.Time,
) (*Donation, error) {
	d := &Donation{
		status:    Pending,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSupplierID(supplierID),
		d.setFoodDescription(foodDescription),
		d.setQuantity(quantity),
		d.setPickupAddress(pickupAddress),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDonation reconstructs a Donation aggregate from persistent storage.
// Unlike NewDonation it accepts the full lifecycle state and re-validates the
// cross-field invariants, so corrupted rows surface as errors instead of
// invalid aggregates.
func RestoreDonation(
	id kernel.UUID,
	supplierID kernel.UUID,
	foodDescription string,
	quantity int,
	pickupAddress string,
	status Status,
	courierID *kernel.UUID,
	targetCampID *kernel.UUID,
	createdAt time.Time,
	acceptedAt *time.Time,
	collectedAt *time.Time,
	deliveredAt *time.Time,
	rating *int,
	review string,
) (*Donation, error) {
	d := &Donation{
		status:      status,
		createdAt:   createdAt,
		acceptedAt:  acceptedAt,
		collectedAt: collectedAt,
		deliveredAt: deliveredAt,
		review:      review,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setSupplierID(supplierID),
		d.setFoodDescription(foodDescription),
		d.setQuantity(quantity),
		d.setPickupAddress(pickupAddress),
		status.Validate(),
		status.ValidateCanHaveCourier(courierID != nil),
		status.ValidateCanHaveTargetCamp(targetCampID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		id := *courierID
		d.courierID = &id
	}

	if targetCampID != nil {
		if err := targetCampID.Validate(); err != nil {
			return nil, err
		}
		id := *targetCampID
		d.targetCampID = &id
	}

	if rating != nil {
		if err := validateRating(*rating); err != nil {
			return nil, err
		}
		score := *rating
		d.rating = &score
	}

	return d, nil
}

// Validate ensures the Donation instance was properly constructed.
// Returns ErrDonationIsNotConstructed for zero-value or hand-built instances.
func (d *Donation) Validate() error {
	if d == nil {
		return ErrDonationIsNotConstructed
	}

	return d.guard.Validate(ErrDonationIsNotConstructed)
}

// IsEqual compares two donations by their unique identifiers.
func (d *Donation) IsEqual(other *Donation) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the donation's unique identifier.
func (d *Donation) ID() kernel.UUID {
	return d.id
}

// SupplierID returns the pledging supplier's identifier.
func (d *Donation) SupplierID() kernel.UUID {
	return d.supplierID
}

// FoodDescription returns the description of the pledged food.
func (d *Donation) FoodDescription() string {
	return d.foodDescription
}

// Quantity returns the approximate number of servings.
func (d *Donation) Quantity() int {
	return d.quantity
}

// PickupAddress returns the address where the courier collects the food.
func (d *Donation) PickupAddress() string {
	return d.pickupAddress
}

// Status returns the current lifecycle status.
func (d *Donation) Status() Status {
	return d.status
}

// Courier returns the assigned courier's ID, or nil while Pending.
func (d *Donation) Courier() *kernel.UUID {
	return d.courierID
}

// TargetCamp returns the delivery camp's ID, or nil before Verifying.
func (d *Donation) TargetCamp() *kernel.UUID {
	return d.targetCampID
}

// CreatedAt returns the pledge time.
func (d *Donation) CreatedAt() time.Time {
	return d.createdAt
}

// AcceptedAt returns when the current courier accepted the pickup, or nil.
func (d *Donation) AcceptedAt() *time.Time {
	return d.acceptedAt
}

// CollectedAt returns when the courier picked up the food, or nil.
func (d *Donation) CollectedAt() *time.Time {
	return d.collectedAt
}

// DeliveredAt returns when the courier dropped the donation at a camp, or nil.
func (d *Donation) DeliveredAt() *time.Time {
	return d.deliveredAt
}

// Rating returns the organization's score, or nil if not rated yet.
func (d *Donation) Rating() *int {
	return d.rating
}

// Review returns the free-text feedback paired with the rating.
func (d *Donation) Review() string {
	return d.review
}

// Accept assigns the donation to a courier and moves it to Accepted.
//
// Business rules:
//   - The courier ID must be valid
//   - The donation must be Pending; anything else means another courier
//     already claimed it
//
// The caller is responsible for executing Accept under the store's row lock
// and for enforcing the courier's capacity ceiling in the same transaction.
func (d *Donation) Accept(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Accept()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.courierID = &courierID
	d.acceptedAt = &now
	return nil
}

// Collect marks the food as physically picked up by the assigned courier.
//
// Business rules:
//   - Only the assigned courier may collect (ErrCourierMismatch otherwise)
//   - The donation must be Accepted
//
// Once Collected the donation can no longer expire back to Pending.
func (d *Donation) Collect(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	if d.courierID == nil || !d.courierID.IsEqual(courierID) {
		return ErrCourierMismatch
	}

	newStatus, err := d.status.Collect()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.collectedAt = &now
	return nil
}

// DeliverTo moves an active pickup to Verifying at the given camp.
//
// Business rules:
//   - The donation must be Accepted or Collected
//   - The camp ID must be valid; camp eligibility (existence, active flag)
//     is checked by the caller, which owns the camp lookup
func (d *Donation) DeliverTo(campID kernel.UUID, now time.Time) error {
	if err := campID.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.Deliver()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.targetCampID = &campID
	d.deliveredAt = &now
	return nil
}

// Confirm finalizes the delivery after the organization verified receipt.
// The donation must be Verifying; Delivered is the terminal state.
func (d *Donation) Confirm() error {
	newStatus, err := d.status.Confirm()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// Rate stores the organization's score and review for a completed delivery.
//
// Business rules:
//   - The donation must be Delivered
//   - The score must lie in [RatingMin, RatingMax]
//   - Re-rating overwrites the previous score and review
func (d *Donation) Rate(score int, review string) error {
	if d.status != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to rate", d.status.String()),
		)
	}

	if err := validateRating(score); err != nil {
		return err
	}

	d.rating = &score
	d.review = review
	return nil
}

// ReleasePickup reverts an expired Accepted donation back to Pending,
// clearing the courier assignment and acceptance timestamp. The bulk sweep in
// the store performs the same mutation set-wide; this method exists for the
// single-aggregate path and for tests.
func (d *Donation) ReleasePickup() error {
	newStatus, err := d.status.Release()
	if err != nil {
		return err
	}

	d.status = newStatus
	d.courierID = nil
	d.acceptedAt = nil
	return nil
}

// PickupExpired reports whether an Accepted pickup has outlived the given
// window. Always false for other statuses.
func (d *Donation) PickupExpired(now time.Time, window time.Duration) bool {
	if d.status != Accepted || d.acceptedAt == nil {
		return false
	}

	return now.Sub(*d.acceptedAt) > window
}

func validateRating(score int) error {
	if score < RatingMin || score > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", score, RatingMin, RatingMax)
	}
	return nil
}

func (d *Donation) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Donation) setSupplierID(supplierID kernel.UUID) error {
	if err := supplierID.Validate(); err != nil {
		return err
	}
	d.supplierID = supplierID
	return nil
}

func (d *Donation) setFoodDescription(foodDescription string) error {
	if foodDescription == "" {
		return ErrFoodDescriptionIsRequired
	}
	d.foodDescription = foodDescription
	return nil
}

func (d *Donation) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	d.quantity = quantity
	return nil
}

func (d *Donation) setPickupAddress(pickupAddress string) error {
	if pickupAddress == "" {
		return ErrPickupAddressIsRequired
	}
	d.pickupAddress = pickupAddress
	return nil
}
