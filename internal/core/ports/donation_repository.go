// Package ports defines repository interfaces for the donation domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
)

// DonationRepository defines the persistence contract for donation aggregates.
// Provides methods for storing, retrieving, and querying donation entities
// based on their status and pickup state.
type DonationRepository interface {
	// Add persists a new donation aggregate to storage.
	// The donation must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *donation.Donation) error

	// Update persists changes to an existing donation aggregate.
	// The donation must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *donation.Donation) error

	// Get retrieves a donation aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// GetForUpdate retrieves a donation aggregate by its unique identifier
	// while holding a row-level write lock for the remainder of the current
	// transaction. Concurrent callers serialize on the row, so only one of
	// two racing pickup attempts observes the donation still unclaimed.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*donation.Donation, error)

	// GetActiveByCourierForUpdate retrieves all of a courier's active
	// pickups (Accepted or Collected) with row-level write locks, ordered
	// by acceptance time. Used by the bulk delivery workflow.
	GetActiveByCourierForUpdate(ctx context.Context, courierID kernel.UUID) ([]*donation.Donation, error)

	// CountActiveByCourier returns the number of donations the courier
	// currently holds in Accepted or Collected status. Must be called
	// inside the same transaction as the pickup it guards.
	CountActiveByCourier(ctx context.Context, courierID kernel.UUID) (int, error)

	// ReleaseExpiredPickups returns every donation accepted at or before
	// the cutoff, but not yet collected, back to the unclaimed pool in a
	// single conditional update. Returns the number of released rows.
	ReleaseExpiredPickups(ctx context.Context, cutoff time.Time) (int64, error)
}
