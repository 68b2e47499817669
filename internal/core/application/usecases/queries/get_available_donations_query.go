// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetAvailableDonationsQueryIsNotConstructed = errors.New(
	"GetAvailableDonationsQuery must be created via NewGetAvailableDonationsQuery constructor",
)

// GetAvailableDonationsQuery retrieves every donation currently open for
// pickup, newest pledge first. Stale claims are swept before reading, so a
// donation whose courier timed out shows up as available again.
//
// Example:
//
//	query := NewGetAvailableDonationsQuery()
//	handler := NewGetAvailableDonationsQueryHandler(db, clock.System(), 30*time.Minute)
//
//	available, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve available donations: %w", err)
//	}
type GetAvailableDonationsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAvailableDonationsQuery creates a query for the open donation pool.
func NewGetAvailableDonationsQuery() GetAvailableDonationsQuery {
	return GetAvailableDonationsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAvailableDonationsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableDonationsQueryIsNotConstructed)
}

// GetAvailableDonationsQueryResponse represents one claimable donation in
// the read model.
type GetAvailableDonationsQueryResponse struct {
	ID              kernel.UUID
	SupplierID      kernel.UUID
	FoodDescription string
	Quantity        int
	PickupAddress   string
	CreatedAt       time.Time
}
