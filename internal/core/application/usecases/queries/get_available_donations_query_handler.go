package queries

import (
	"context"
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/clock"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAvailableDonationsQueryHandler retrieves the open donation pool from
// the database. Uses direct SQL queries for optimal read performance in the
// CQRS pattern.
type GetAvailableDonationsQueryHandler struct {
	db           *gorm.DB
	clock        clock.Clock
	expiryWindow time.Duration
}

// NewGetAvailableDonationsQueryHandler creates a handler for availability
// queries. The expiry window drives the lazy sweep that precedes the read.
func NewGetAvailableDonationsQueryHandler(
	db *gorm.DB,
	clk clock.Clock,
	expiryWindow time.Duration,
) GetAvailableDonationsQueryHandler {
	return GetAvailableDonationsQueryHandler{db: db, clock: clk, expiryWindow: expiryWindow}
}

// Handle executes the query. Expired claims revert to the pool first, then
// Pending donations are returned newest pledge first.
func (h GetAvailableDonationsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableDonationsQuery,
) ([]GetAvailableDonationsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if err := releaseExpiredPickups(ctx, h.db, h.clock.Now().Add(-h.expiryWindow)); err != nil {
		return nil, err
	}

	donations := make([]GetAvailableDonationsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			supplier_id,
			food_description,
			quantity,
			pickup_address,
			created_at
		FROM donations
		WHERE status = ?
		ORDER BY created_at DESC
	`, donation.Pending).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAvailableDonationsQueryResponse
		var id, supplierID uuid.UUID

		err = rows.Scan(
			&id,
			&supplierID,
			&resp.FoodDescription,
			&resp.Quantity,
			&resp.PickupAddress,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		donationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = donationID

		supID, idErr := kernel.UUIDFromBytes(supplierID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.SupplierID = supID

		donations = append(donations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}

// releaseExpiredPickups reverts Accepted claims older than the cutoff back
// to Pending. Shared by the read paths that must not show stale claims.
func releaseExpiredPickups(ctx context.Context, db *gorm.DB, cutoff time.Time) error {
	return db.WithContext(ctx).Exec(`
		UPDATE donations
		SET status = ?, courier_id = NULL, accepted_at = NULL
		WHERE status = ? AND accepted_at <= ?
	`, donation.Pending, donation.Accepted, cutoff).Error
}
