package queries

import (
	"context"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetDonationsToVerifyQueryHandler retrieves the verification queue for an
// operator from the database.
type GetDonationsToVerifyQueryHandler struct {
	db *gorm.DB
}

// NewGetDonationsToVerifyQueryHandler creates a handler for verification
// queue queries.
func NewGetDonationsToVerifyQueryHandler(db *gorm.DB) GetDonationsToVerifyQueryHandler {
	return GetDonationsToVerifyQueryHandler{db: db}
}

// Handle executes the query: donations in Verifying whose target camp
// belongs to an organization the operator manages, oldest drop first.
func (h GetDonationsToVerifyQueryHandler) Handle(
	ctx context.Context,
	query GetDonationsToVerifyQuery,
) ([]GetDonationsToVerifyQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	donations := make([]GetDonationsToVerifyQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.id,
			d.food_description,
			d.quantity,
			c.id,
			c.name,
			d.delivered_at
		FROM donations d
		JOIN camps c ON c.id = d.target_camp_id
		JOIN organizations o ON o.id = c.organization_id
		WHERE d.status = ? AND o.operator_id = ?
		ORDER BY d.delivered_at
	`, donation.Verifying, query.OperatorID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetDonationsToVerifyQueryResponse
		var id, campID uuid.UUID

		err = rows.Scan(
			&id,
			&resp.FoodDescription,
			&resp.Quantity,
			&campID,
			&resp.CampName,
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

		targetCampID, idErr := kernel.UUIDFromBytes(campID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CampID = targetCampID

		donations = append(donations, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return donations, nil
}
