// Package donationrepo provides data transfer objects and mapping functions
// for donation persistence. This package implements the repository pattern for
// the donation domain aggregate, handling the conversion between domain
// entities and database representations.
package donationrepo

import (
	"time"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// DonationDTO represents the database structure for persisting donation
// aggregates. Indexed on status, courier assignment, and acceptance time so
// the pickup capacity count and the expiry sweep stay cheap.
type DonationDTO struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey"`
	SupplierID      uuid.UUID  `gorm:"type:uuid;index"`
	FoodDescription string     `gorm:"type:text"`
	Quantity        int
	PickupAddress   string     `gorm:"type:text"`
	Status          int        `gorm:"index:idx_donations_courier_status"`
	CourierID       *uuid.UUID `gorm:"type:uuid;index:idx_donations_courier_status"`
	TargetCampID    *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt       time.Time
	AcceptedAt      *time.Time `gorm:"index"`
	CollectedAt     *time.Time
	DeliveredAt     *time.Time
	Rating          *int
	Review          string `gorm:"type:text"`
}

// TableName specifies the database table name for donation entities.
func (DonationDTO) TableName() string {
	return "donations"
}

// fromDomain converts a donation domain aggregate to its database
// representation.
func fromDomain(aggregate *donation.Donation) DonationDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	var targetCampID *uuid.UUID
	if id := aggregate.TargetCamp(); id != nil {
		raw := id.Bytes()
		targetCampID = &raw
	}

	return DonationDTO{
		ID:              aggregate.ID().Bytes(),
		SupplierID:      aggregate.SupplierID().Bytes(),
		FoodDescription: aggregate.FoodDescription(),
		Quantity:        aggregate.Quantity(),
		PickupAddress:   aggregate.PickupAddress(),
		Status:          int(aggregate.Status()),
		CourierID:       courierID,
		TargetCampID:    targetCampID,
		CreatedAt:       aggregate.CreatedAt(),
		AcceptedAt:      aggregate.AcceptedAt(),
		CollectedAt:     aggregate.CollectedAt(),
		DeliveredAt:     aggregate.DeliveredAt(),
		Rating:          aggregate.Rating(),
		Review:          aggregate.Review(),
	}
}

// toDomain converts a database DTO to a donation domain aggregate using
// RestoreDonation, which re-validates the lifecycle invariants.
func toDomain(dto DonationDTO) (*donation.Donation, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}

		courierID = &cID
	}

	var targetCampID *kernel.UUID
	if dto.TargetCampID != nil {
		tID, campErr := kernel.UUIDFromBytes((*dto.TargetCampID)[:])
		if campErr != nil {
			return nil, campErr
		}

		targetCampID = &tID
	}

	return donation.RestoreDonation(
		id,
		supplierID,
		dto.FoodDescription,
		dto.Quantity,
		dto.PickupAddress,
		donation.Status(dto.Status),
		courierID,
		targetCampID,
		dto.CreatedAt,
		dto.AcceptedAt,
		dto.CollectedAt,
		dto.DeliveredAt,
		dto.Rating,
		dto.Review,
	)
}
