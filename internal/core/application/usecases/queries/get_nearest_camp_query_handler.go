package queries

import (
	"context"

	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/core/ports"
)

// GetNearestCampQueryHandler resolves the closest deliverable camp for a
// courier. Unlike the other queries this one loads aggregates through the
// repositories: the distance and tie-break rules live in the domain
// resolver and are not duplicated in SQL.
type GetNearestCampQueryHandler struct {
	courierRepo ports.CourierRepository
	campRepo    ports.CampRepository
	resolver    services.CampResolver
}

// NewGetNearestCampQueryHandler creates a handler for nearest-camp queries.
func NewGetNearestCampQueryHandler(
	courierRepo ports.CourierRepository,
	campRepo ports.CampRepository,
	resolver services.CampResolver,
) GetNearestCampQueryHandler {
	return GetNearestCampQueryHandler{
		courierRepo: courierRepo,
		campRepo:    campRepo,
		resolver:    resolver,
	}
}

// Handle executes the query. Returns services.ErrNoCourierLocation when the
// courier never shared a position and services.ErrNoCampCandidates when no
// registered organization runs a located, active camp.
func (h GetNearestCampQueryHandler) Handle(
	ctx context.Context,
	query GetNearestCampQuery,
) (GetNearestCampQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetNearestCampQueryResponse{}, err
	}

	volunteer, err := h.courierRepo.Get(ctx, query.CourierID())
	if err != nil {
		return GetNearestCampQueryResponse{}, err
	}

	camps, err := h.campRepo.GetActiveByOrganizations(ctx, volunteer.OrganizationIDs())
	if err != nil {
		return GetNearestCampQueryResponse{}, err
	}

	nearest, err := h.resolver.Resolve(volunteer, camps)
	if err != nil {
		return GetNearestCampQueryResponse{}, err
	}

	distance, err := volunteer.Location().DistanceTo(*nearest.Location())
	if err != nil {
		return GetNearestCampQueryResponse{}, err
	}

	return GetNearestCampQueryResponse{
		CampID:         nearest.ID(),
		OrganizationID: nearest.OrganizationID(),
		Name:           nearest.Name(),
		Location:       *nearest.Location(),
		DistanceMeters: distance,
	}, nil
}
