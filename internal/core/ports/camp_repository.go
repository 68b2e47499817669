package ports

import (
	"context"

	"foodbridge/internal/core/domain/model/camp"
	"foodbridge/internal/core/domain/model/kernel"
)

// CampRepository defines the persistence contract for camp aggregates.
type CampRepository interface {
	// Add persists a new camp aggregate to storage.
	Add(ctx context.Context, camp *camp.Camp) error

	// Update persists changes to an existing camp aggregate.
	Update(ctx context.Context, camp *camp.Camp) error

	// Get retrieves a camp aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*camp.Camp, error)

	// GetActiveByOrganizations retrieves all active camps run by any of the
	// given organizations. Used by nearest-camp resolution, which further
	// filters out camps without coordinates.
	GetActiveByOrganizations(ctx context.Context, organizationIDs []kernel.UUID) ([]*camp.Camp, error)
}
