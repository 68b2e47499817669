// Package orgrepo provides data transfer objects and mapping functions for
// organization persistence.
package orgrepo

import (
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/organization"

	"github.com/google/uuid"
)

// OrganizationDTO represents the database structure for persisting
// organization aggregates.
type OrganizationDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name       string    `gorm:"type:varchar(255);not null"`
	OperatorID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName specifies the database table name for organization entities.
func (OrganizationDTO) TableName() string {
	return "organizations"
}

// fromDomain converts an organization domain aggregate to its database
// representation.
func fromDomain(aggregate *organization.Organization) OrganizationDTO {
	return OrganizationDTO{
		ID:         aggregate.ID().Bytes(),
		Name:       aggregate.Name(),
		OperatorID: aggregate.OperatorID().Bytes(),
	}
}

// toDomain converts a database DTO to an organization domain aggregate.
func toDomain(dto OrganizationDTO) (*organization.Organization, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	operatorID, err := kernel.UUIDFromBytes(dto.OperatorID[:])
	if err != nil {
		return nil, err
	}

	return organization.NewOrganization(id, dto.Name, operatorID)
}
