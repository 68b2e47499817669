package services

import (
	"errors"

	"foodbridge/internal/core/domain/model/camp"
	"foodbridge/internal/core/domain/model/courier"
)

var (
	// ErrNoCourierLocation is returned when resolving a camp for a courier
	// whose location is unknown.
	ErrNoCourierLocation = errors.New("courier has no known location")
	// ErrNoCampCandidates is returned when no active, geocoded camp exists
	// among the courier's organizations.
	ErrNoCampCandidates = errors.New("no candidate camps available")
)

// CampResolver is a domain service that picks the delivery camp closest to a
// courier by great-circle distance.
//
// Business rules:
//   - Only active camps with coordinates are candidates
//   - Only camps run by organizations the courier registered with are
//     candidates
//   - Equidistant candidates resolve to the lowest camp ID so repeated
//     resolutions give the same answer
//
// Example usage:
//
//	resolver := services.NewCampResolver()
//	nearest, err := resolver.Resolve(courier, camps)
//	if errors.Is(err, services.ErrNoCampCandidates) {
//	    // Courier must pick a camp manually
//	}
type CampResolver struct{}

// NewCampResolver creates a new CampResolver instance.
func NewCampResolver() CampResolver {
	return CampResolver{}
}

// Resolve returns the candidate camp nearest to the courier's location.
// Camps that are inactive, lack coordinates, or belong to organizations the
// courier has not registered with are filtered out before comparison.
//
// Returns ErrNoCourierLocation when the courier's position is unknown, and
// ErrNoCampCandidates when filtering leaves nothing to compare.
func (r CampResolver) Resolve(c *courier.Courier, camps []*camp.Camp) (*camp.Camp, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Location() == nil {
		return nil, ErrNoCourierLocation
	}

	var (
		nearest      *camp.Camp
		nearestDist  float64
		hasCandidate bool
	)

	for _, candidate := range camps {
		if err := candidate.Validate(); err != nil {
			return nil, err
		}

		if !candidate.IsActive() || !candidate.HasLocation() {
			continue
		}

		if !c.IsRegisteredWith(candidate.OrganizationID()) {
			continue
		}

		dist, err := c.Location().DistanceTo(*candidate.Location())
		if err != nil {
			return nil, err
		}

		switch {
		case !hasCandidate, dist < nearestDist:
			nearest = candidate
			nearestDist = dist
			hasCandidate = true
		case dist == nearestDist && candidate.ID().Less(nearest.ID()):
			nearest = candidate
		}
	}

	if !hasCandidate {
		return nil, ErrNoCampCandidates
	}

	return nearest, nil
}
