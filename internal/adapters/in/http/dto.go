package http

import (
	"time"

	"github.com/google/uuid"
)

// Error is the JSON body returned on any failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewDonation is the request body for pledging a donation.
type NewDonation struct {
	SupplierID      uuid.UUID `json:"supplier_id"`
	FoodDescription string    `json:"food_description"`
	Quantity        int       `json:"quantity"`
	PickupAddress   string    `json:"pickup_address"`
}

// CreatedResponse returns the identifier of a newly created resource.
type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

// CourierAction identifies the courier performing a pickup-side action.
type CourierAction struct {
	CourierID uuid.UUID `json:"courier_id"`
}

// OperatorAction identifies the operator performing a camp-side action.
type OperatorAction struct {
	OperatorID uuid.UUID `json:"operator_id"`
}

// DeliverRequest names the camp a courier drops their load at.
type DeliverRequest struct {
	CampID uuid.UUID `json:"camp_id"`
}

// DeliverResponse reports how many donations the drop-off covered.
type DeliverResponse struct {
	DeliveredCount int `json:"delivered_count"`
}

// RatingRequest is the request body for rating a delivered donation.
type RatingRequest struct {
	OperatorID uuid.UUID `json:"operator_id"`
	Score      int       `json:"score"`
	Review     string    `json:"review"`
}

// NewCourier is the request body for creating a courier.
type NewCourier struct {
	Name string `json:"name"`
}

// CourierLocation is the request body for a courier position update.
type CourierLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Registration links a courier to an organization.
type Registration struct {
	OrganizationID uuid.UUID `json:"organization_id"`
}

// AvailableDonation is one claimable donation in the read model.
type AvailableDonation struct {
	ID              uuid.UUID `json:"id"`
	SupplierID      uuid.UUID `json:"supplier_id"`
	FoodDescription string    `json:"food_description"`
	Quantity        int       `json:"quantity"`
	PickupAddress   string    `json:"pickup_address"`
	CreatedAt       time.Time `json:"created_at"`
}

// Pickup is one entry in a courier's load or history.
type Pickup struct {
	ID              uuid.UUID  `json:"id"`
	FoodDescription string     `json:"food_description"`
	Quantity        int        `json:"quantity"`
	PickupAddress   string     `json:"pickup_address"`
	Status          string     `json:"status"`
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
}

// CourierPickups splits a courier's pickups into active load and history.
type CourierPickups struct {
	Active  []Pickup `json:"active"`
	History []Pickup `json:"history"`
}

// VerificationItem is one delivery awaiting operator confirmation.
type VerificationItem struct {
	ID              uuid.UUID `json:"id"`
	FoodDescription string    `json:"food_description"`
	Quantity        int       `json:"quantity"`
	CampID          uuid.UUID `json:"camp_id"`
	CampName        string    `json:"camp_name"`
	DeliveredAt     time.Time `json:"delivered_at"`
}

// LeaderboardEntry is one ranked courier.
type LeaderboardEntry struct {
	CourierID  uuid.UUID `json:"courier_id"`
	Name       string    `json:"name"`
	Deliveries int       `json:"deliveries"`
	AvgRating  float64   `json:"avg_rating"`
	Score      float64   `json:"score"`
}

// NearestCamp is the resolved drop-off camp for a courier.
type NearestCamp struct {
	CampID         uuid.UUID `json:"camp_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	DistanceMeters float64   `json:"distance_meters"`
}
