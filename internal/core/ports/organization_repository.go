package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/model/organization"
)

// OrganizationRepository defines the persistence contract for organization
// aggregates.
type OrganizationRepository interface {
	// Add persists a new organization aggregate to storage.
	Add(ctx context.Context, organization *organization.Organization) error

	// Get retrieves an organization aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*organization.Organization, error)
}
