// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"foodbridge/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest interface that covers the aggregates
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// DonationRepoFactory provides access to the donation repository within a transaction.
	DonationRepoFactory interface {
		DonationRepository() ports.DonationRepository
	}

	// CourierRepoFactory provides access to the courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// CampRepoFactory provides access to the camp repository within a transaction.
	CampRepoFactory interface {
		CampRepository() ports.CampRepository
	}

	// OrganizationRepoFactory provides access to the organization repository within a transaction.
	OrganizationRepoFactory interface {
		OrganizationRepository() ports.OrganizationRepository
	}

	// DonationUoW manages transactions for donation-only operations:
	// pledging, accepting, collecting, and the expiry sweep.
	DonationUoW interface {
		TxManager
		DonationRepoFactory
	}

	// DonationUoWFactory creates new donation unit of work instances.
	DonationUoWFactory interface {
		Create() DonationUoW
	}

	// CourierUoW manages transactions for courier-only operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	// CourierUoWFactory creates new courier unit of work instances.
	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// RegistrationUoW manages transactions for courier-organization
	// registration, which verifies the organization exists before linking.
	RegistrationUoW interface {
		TxManager
		CourierRepoFactory
		OrganizationRepoFactory
	}

	// RegistrationUoWFactory creates new registration unit of work instances.
	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// DeliveryUoW manages transactions for the bulk delivery workflow, which
	// reads the target camp and updates the courier's active donations.
	DeliveryUoW interface {
		TxManager
		DonationRepoFactory
		CampRepoFactory
	}

	// DeliveryUoWFactory creates new delivery unit of work instances.
	DeliveryUoWFactory interface {
		Create() DeliveryUoW
	}

	// VerificationUoW manages transactions for operations gated on the
	// operator managing the donation's target camp: confirming and rating.
	VerificationUoW interface {
		TxManager
		DonationRepoFactory
		CampRepoFactory
		OrganizationRepoFactory
	}

	// VerificationUoWFactory creates new verification unit of work instances.
	VerificationUoWFactory interface {
		Create() VerificationUoW
	}

	// CampUoW manages transactions for camp administration by an operator.
	CampUoW interface {
		TxManager
		CampRepoFactory
		OrganizationRepoFactory
	}

	// CampUoWFactory creates new camp unit of work instances.
	CampUoWFactory interface {
		Create() CampUoW
	}
)
