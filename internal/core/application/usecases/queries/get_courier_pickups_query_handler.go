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

// GetCourierPickupsQueryHandler retrieves a courier's active load and
// delivery history from the database.
type GetCourierPickupsQueryHandler struct {
	db           *gorm.DB
	clock        clock.Clock
	expiryWindow time.Duration
}

// NewGetCourierPickupsQueryHandler creates a handler for courier pickup
// queries. The expiry window drives the lazy sweep that precedes the read.
func NewGetCourierPickupsQueryHandler(
	db *gorm.DB,
	clk clock.Clock,
	expiryWindow time.Duration,
) GetCourierPickupsQueryHandler {
	return GetCourierPickupsQueryHandler{db: db, clock: clk, expiryWindow: expiryWindow}
}

// Handle executes the query. Expired claims revert first, so a courier who
// sat on a pickup past the window sees it gone from their active load.
// Active pickups come back oldest claim first, history newest delivery
// first.
func (h GetCourierPickupsQueryHandler) Handle(
	ctx context.Context,
	query GetCourierPickupsQuery,
) (GetCourierPickupsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCourierPickupsQueryResponse{}, err
	}

	if err := releaseExpiredPickups(ctx, h.db, h.clock.Now().Add(-h.expiryWindow)); err != nil {
		return GetCourierPickupsQueryResponse{}, err
	}

	active, err := h.scanPickups(ctx, `
		SELECT
			id,
			food_description,
			quantity,
			pickup_address,
			status,
			accepted_at,
			delivered_at
		FROM donations
		WHERE courier_id = ? AND status IN ?
		ORDER BY accepted_at
	`, query.CourierID().Bytes(), []int{int(donation.Accepted), int(donation.Collected)})
	if err != nil {
		return GetCourierPickupsQueryResponse{}, err
	}

	history, err := h.scanPickups(ctx, `
		SELECT
			id,
			food_description,
			quantity,
			pickup_address,
			status,
			accepted_at,
			delivered_at
		FROM donations
		WHERE courier_id = ? AND status IN ?
		ORDER BY delivered_at DESC
	`, query.CourierID().Bytes(), []int{int(donation.Verifying), int(donation.Delivered)})
	if err != nil {
		return GetCourierPickupsQueryResponse{}, err
	}

	return GetCourierPickupsQueryResponse{Active: active, History: history}, nil
}

func (h GetCourierPickupsQueryHandler) scanPickups(
	ctx context.Context,
	sql string,
	args ...interface{},
) ([]CourierPickupResponse, error) {
	pickups := make([]CourierPickupResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp CourierPickupResponse
		var id uuid.UUID
		var status int

		err = rows.Scan(
			&id,
			&resp.FoodDescription,
			&resp.Quantity,
			&resp.PickupAddress,
			&status,
			&resp.AcceptedAt,
			&resp.DeliveredAt,
		)
		if err != nil {
			return nil, err
		}

		donationID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = donationID
		resp.Status = donation.Status(status)

		pickups = append(pickups, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pickups, nil
}
