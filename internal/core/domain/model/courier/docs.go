// Package courier contains the Courier aggregate representing the volunteers
// who transport donations. Couriers carry an optional geolocation used by the
// nearest-camp resolver and a set of organization registrations that scopes
// which camps they may deliver to.
package courier
