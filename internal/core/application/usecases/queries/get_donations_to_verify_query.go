package queries

import (
	"errors"
	"time"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/guard"
)

var ErrGetDonationsToVerifyQueryIsNotConstructed = errors.New(
	"GetDonationsToVerifyQuery must be created via NewGetDonationsToVerifyQuery constructor",
)

// GetDonationsToVerifyQuery retrieves the verification queue for an
// organization operator: donations dropped at the org's camps that await a
// confirmation, oldest drop first.
type GetDonationsToVerifyQuery struct { //nolint:recvcheck //using for validation
	operatorID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetDonationsToVerifyQuery creates a query for an operator's
// verification queue.
func NewGetDonationsToVerifyQuery(operatorID kernel.UUID) (GetDonationsToVerifyQuery, error) {
	if err := operatorID.Validate(); err != nil {
		return GetDonationsToVerifyQuery{}, err
	}

	return GetDonationsToVerifyQuery{
		operatorID: operatorID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetDonationsToVerifyQuery) Validate() error {
	return q.guard.Validate(ErrGetDonationsToVerifyQueryIsNotConstructed)
}

// OperatorID returns the operator whose queue is requested.
func (q GetDonationsToVerifyQuery) OperatorID() kernel.UUID {
	return q.operatorID
}

// GetDonationsToVerifyQueryResponse represents one donation awaiting
// confirmation at a camp the operator manages.
type GetDonationsToVerifyQueryResponse struct {
	ID              kernel.UUID
	FoodDescription string
	Quantity        int
	CampID          kernel.UUID
	CampName        string
	DeliveredAt     time.Time
}
