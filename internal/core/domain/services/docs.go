// Package services provides domain services that coordinate business
// operations across multiple aggregates.
//
// The package includes:
//   - CampResolver: picks the nearest delivery camp for a courier using
//     great-circle distance over the camps of the courier's organizations
package services
