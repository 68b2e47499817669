// Package camprepo provides data transfer objects and mapping functions for
// camp persistence.
package camprepo

import (
	"time"

	"foodbridge/internal/core/domain/model/camp"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CampDTO represents the database structure for persisting camp aggregates.
// Coordinates are nullable because camps are usable before being geocoded.
type CampDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrganizationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name           string    `gorm:"type:varchar(255);not null"`
	Latitude       *float64  `gorm:"type:double precision"`
	Longitude      *float64  `gorm:"type:double precision"`
	IsActive       bool      `gorm:"index"`
	StartTime      time.Time
	CompletedAt    *time.Time
}

// TableName specifies the database table name for camp entities.
func (CampDTO) TableName() string {
	return "camps"
}

// fromDomain converts a camp domain aggregate to its database representation.
func fromDomain(aggregate *camp.Camp) CampDTO {
	dto := CampDTO{
		ID:             aggregate.ID().Bytes(),
		OrganizationID: aggregate.OrganizationID().Bytes(),
		Name:           aggregate.Name(),
		IsActive:       aggregate.IsActive(),
		StartTime:      aggregate.StartTime(),
		CompletedAt:    aggregate.CompletedAt(),
	}

	if loc := aggregate.Location(); loc != nil {
		lat, lon := loc.Latitude(), loc.Longitude()
		dto.Latitude = &lat
		dto.Longitude = &lon
	}

	return dto
}

// toDomain converts a database DTO to a camp domain aggregate using
// RestoreCamp.
func toDomain(dto CampDTO) (*camp.Camp, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orgID, err := kernel.UUIDFromBytes(dto.OrganizationID[:])
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

	return camp.RestoreCamp(id, orgID, dto.Name, location, dto.IsActive, dto.StartTime, dto.CompletedAt)
}
