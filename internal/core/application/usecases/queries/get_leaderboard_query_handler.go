package queries

import (
	"context"
	"sort"

	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetLeaderboardQueryHandler computes the courier leaderboard from the
// database. Aggregation runs in SQL; the scoring formula and ordering live
// here so the weights stay in one place.
type GetLeaderboardQueryHandler struct {
	db *gorm.DB
}

// NewGetLeaderboardQueryHandler creates a handler for leaderboard queries.
func NewGetLeaderboardQueryHandler(db *gorm.DB) GetLeaderboardQueryHandler {
	return GetLeaderboardQueryHandler{db: db}
}

// Handle executes the query. Score is deliveries + 2 x average rating over
// rated deliveries (0 when nothing is rated). Ordered by score descending,
// ties by delivery count descending, then by courier ID for stable output.
func (h GetLeaderboardQueryHandler) Handle(
	ctx context.Context,
	query GetLeaderboardQuery,
) ([]GetLeaderboardQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	board := make([]GetLeaderboardQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			d.courier_id,
			c.name,
			COUNT(*),
			COALESCE(AVG(d.rating), 0)
		FROM donations d
		JOIN couriers c ON c.id = d.courier_id
		WHERE d.status = ?
		GROUP BY d.courier_id, c.name
	`, donation.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetLeaderboardQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.Name,
			&resp.Deliveries,
			&resp.AvgRating,
		)
		if err != nil {
			return nil, err
		}

		courierID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.CourierID = courierID
		resp.Score = float64(resp.Deliveries) + 2*resp.AvgRating

		board = append(board, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(board, func(i, j int) bool {
		if board[i].Score != board[j].Score {
			return board[i].Score > board[j].Score
		}
		if board[i].Deliveries != board[j].Deliveries {
			return board[i].Deliveries > board[j].Deliveries
		}
		return board[i].CourierID.Less(board[j].CourierID)
	})

	if len(board) > query.Limit() {
		board = board[:query.Limit()]
	}

	return board, nil
}
