// Package donation contains the Donation aggregate, the central entity of the
// platform. A donation tracks a unit of pledged food from the supplier's
// pledge (Pending) through courier acceptance and collection to confirmed
// delivery at a collection camp (Delivered).
//
// The package enforces the lifecycle state machine through the Status value
// object and guards the cross-field invariants (courier assignment, target
// camp, lifecycle timestamps, rating) inside the aggregate itself.
package donation
