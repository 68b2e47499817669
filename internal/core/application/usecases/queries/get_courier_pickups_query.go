package queries

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetCourierPickupsQueryIsNotConstructed = errors.New(
	"GetCourierPickupsQuery must be created via NewGetCourierPickupsQuery constructor",
)

// GetCourierPickupsQuery retrieves a courier's current load and delivery
// history: active pickups ordered oldest claim first, completed runs newest
// delivery first.
type GetCourierPickupsQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetCourierPickupsQuery creates a query for one courier's pickups.
func NewGetCourierPickupsQuery(courierID kernel.UUID) (GetCourierPickupsQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetCourierPickupsQuery{}, err
	}

	return GetCourierPickupsQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCourierPickupsQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierPickupsQueryIsNotConstructed)
}

// CourierID returns the courier whose pickups are requested.
func (q GetCourierPickupsQuery) CourierID() kernel.UUID {
	return q.courierID
}

// CourierPickupResponse represents one donation a courier has handled.
type CourierPickupResponse struct {
	ID              kernel.UUID
	FoodDescription string
	Quantity        int
	PickupAddress   string
	Status          donation.Status
	AcceptedAt      *time.Time
	DeliveredAt     *time.Time
}

// GetCourierPickupsQueryResponse splits the courier's pickups into the
// active load and the finished history.
type GetCourierPickupsQueryResponse struct {
	Active  []CourierPickupResponse
	History []CourierPickupResponse
}
