// Package courierrepo provides data transfer objects and mapping functions
// for courier persistence. This package implements the repository pattern for
// the courier domain aggregate, handling the conversion between domain
// entities and database representations.
package courierrepo

import (
	"foodbridge/internal/core/domain/model/courier"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CourierDTO represents the database structure for persisting courier
// aggregates. Coordinates are nullable because couriers register before
// sharing a location.
type CourierDTO struct {
	ID            uuid.UUID                `gorm:"type:uuid;primaryKey"`
	Name          string                   `gorm:"type:varchar(255);not null"`
	Latitude      *float64                 `gorm:"type:double precision"`
	Longitude     *float64                 `gorm:"type:double precision"`
	Registrations []CourierRegistrationDTO `gorm:"foreignKey:CourierID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for courier entities.
// Overrides GORM's default naming convention to use "couriers".
func (CourierDTO) TableName() string {
	return "couriers"
}

// CourierRegistrationDTO is the join row linking a courier to an organization
// the courier registered with.
type CourierRegistrationDTO struct {
	CourierID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;primaryKey;index"`
}

// TableName specifies the database table name for registration rows.
func (CourierRegistrationDTO) TableName() string {
	return "courier_registrations"
}

// fromDomain converts a courier domain aggregate to its database
// representation, including the registration join rows.
func fromDomain(aggregate *courier.Courier) CourierDTO {
	courierID := aggregate.ID().Bytes()

	orgIDs := aggregate.OrganizationIDs()
	registrations := make([]CourierRegistrationDTO, 0, len(orgIDs))
	for _, orgID := range orgIDs {
		registrations = append(registrations, CourierRegistrationDTO{
			CourierID:      courierID,
			OrganizationID: orgID.Bytes(),
		})
	}

	dto := CourierDTO{
		ID:            courierID,
		Name:          aggregate.Name(),
		Registrations: registrations,
	}

	if loc := aggregate.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// toDomain converts a database DTO to a courier domain aggregate using
// RestoreCourier.
func toDomain(dto CourierDTO) (*courier.Courier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var location *kernel.GeoPoint
	if dto.Latitude != nil && dto.Longitude != nil {
		point, pointErr := kernel.NewGeoPoint(*dto.Latitude, *dto.Longitude)
		if pointErr != nil {
			return nil, pointErr
		}
		location = &point
	}

	orgIDs := make([]kernel.UUID, 0, len(dto.Registrations))
	for _, reg := range dto.Registrations {
		orgID, regErr := kernel.UUIDFromBytes(reg.OrganizationID[:])
		if regErr != nil {
			return nil, regErr
		}
		orgIDs = append(orgIDs, orgID)
	}

	return courier.RestoreCourier(id, dto.Name, location, orgIDs)
}
