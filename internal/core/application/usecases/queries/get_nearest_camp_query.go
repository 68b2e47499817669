package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetNearestCampQueryIsNotConstructed = errors.New(
	"GetNearestCampQuery must be created via NewGetNearestCampQuery constructor",
)

// GetNearestCampQuery resolves the closest active camp a courier can
// deliver to, judged by great-circle distance from the courier's last
// reported position.
type GetNearestCampQuery struct { //nolint:recvcheck //using for validation
	courierID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetNearestCampQuery creates a nearest-camp query for a courier.
func NewGetNearestCampQuery(courierID kernel.UUID) (GetNearestCampQuery, error) {
	if err := courierID.Validate(); err != nil {
		return GetNearestCampQuery{}, err
	}

	return GetNearestCampQuery{
		courierID: courierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetNearestCampQuery) Validate() error {
	return q.guard.Validate(ErrGetNearestCampQueryIsNotConstructed)
}

// CourierID returns the courier asking for directions.
func (q GetNearestCampQuery) CourierID() kernel.UUID {
	return q.courierID
}

// GetNearestCampQueryResponse represents the resolved camp and how far
// away it is.
type GetNearestCampQueryResponse struct {
	CampID         kernel.UUID
	OrganizationID kernel.UUID
	Name           string
	Location       kernel.GeoPoint
	DistanceMeters float64
}
