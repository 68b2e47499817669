package queries

import (
	"errors"

	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/pkg/errs"
	"foodbridge/internal/pkg/guard"
)

var ErrGetLeaderboardQueryIsNotConstructed = errors.New(
	"GetLeaderboardQuery must be created via NewGetLeaderboardQuery constructor",
)

// LeaderboardDefaultLimit is the number of couriers shown when callers do
// not ask for a specific size.
const LeaderboardDefaultLimit = 20

// GetLeaderboardQuery ranks couriers by their delivery record. A courier's
// score is their confirmed delivery count plus twice their average rating;
// unrated deliveries do not drag the average down, and couriers with no
// confirmed deliveries do not appear at all.
//
// Example:
//
//	query, err := NewGetLeaderboardQuery(LeaderboardDefaultLimit)
//	if err != nil {
//	    return err
//	}
//
//	board, err := handler.Handle(ctx, query)
type GetLeaderboardQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetLeaderboardQuery creates a leaderboard query returning at most
// limit couriers.
func NewGetLeaderboardQuery(limit int) (GetLeaderboardQuery, error) {
	if limit <= 0 {
		return GetLeaderboardQuery{}, errs.NewValueIsInvalidError("limit")
	}

	return GetLeaderboardQuery{
		limit: limit,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetLeaderboardQuery) Validate() error {
	return q.guard.Validate(ErrGetLeaderboardQueryIsNotConstructed)
}

// Limit returns the maximum number of leaderboard rows.
func (q GetLeaderboardQuery) Limit() int {
	return q.limit
}

// GetLeaderboardQueryResponse represents one courier's standing.
type GetLeaderboardQueryResponse struct {
	CourierID  kernel.UUID
	Name       string
	Deliveries int
	AvgRating  float64
	Score      float64
}
