// Package http exposes the donation coordination use cases over a REST API.
package http

import (
	"errors"
	"net/http"
	"strconv"

	"foodbridge/internal/core/application/usecases/commands"
	"foodbridge/internal/core/application/usecases/queries"
	"foodbridge/internal/core/domain/model/camp"
	"foodbridge/internal/core/domain/model/donation"
	"foodbridge/internal/core/domain/model/kernel"
	"foodbridge/internal/core/domain/services"
	"foodbridge/internal/observability"
	"foodbridge/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createDonationHandler        commands.CreateDonationCommandHandler
	acceptDonationHandler        commands.AcceptDonationCommandHandler
	collectDonationHandler       commands.CollectDonationCommandHandler
	deliverDonationsHandler      commands.DeliverDonationsCommandHandler
	confirmDeliveryHandler       commands.ConfirmDeliveryCommandHandler
	rateDonationHandler          commands.RateDonationCommandHandler
	createCourierHandler         commands.CreateCourierCommandHandler
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler
	registerCourierHandler       commands.RegisterCourierCommandHandler
	completeCampHandler          commands.CompleteCampCommandHandler

	// Query handlers
	getAvailableDonationsHandler queries.GetAvailableDonationsQueryHandler
	getCourierPickupsHandler     queries.GetCourierPickupsQueryHandler
	getDonationsToVerifyHandler  queries.GetDonationsToVerifyQueryHandler
	getLeaderboardHandler        queries.GetLeaderboardQueryHandler
	getNearestCampHandler        queries.GetNearestCampQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createDonationHandler commands.CreateDonationCommandHandler,
	acceptDonationHandler commands.AcceptDonationCommandHandler,
	collectDonationHandler commands.CollectDonationCommandHandler,
	deliverDonationsHandler commands.DeliverDonationsCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	rateDonationHandler commands.RateDonationCommandHandler,
	createCourierHandler commands.CreateCourierCommandHandler,
	updateCourierLocationHandler commands.UpdateCourierLocationCommandHandler,
	registerCourierHandler commands.RegisterCourierCommandHandler,
	completeCampHandler commands.CompleteCampCommandHandler,
	getAvailableDonationsHandler queries.GetAvailableDonationsQueryHandler,
	getCourierPickupsHandler queries.GetCourierPickupsQueryHandler,
	getDonationsToVerifyHandler queries.GetDonationsToVerifyQueryHandler,
	getLeaderboardHandler queries.GetLeaderboardQueryHandler,
	getNearestCampHandler queries.GetNearestCampQueryHandler,
) *Server {
	return &Server{
		createDonationHandler:        createDonationHandler,
		acceptDonationHandler:        acceptDonationHandler,
		collectDonationHandler:       collectDonationHandler,
		deliverDonationsHandler:      deliverDonationsHandler,
		confirmDeliveryHandler:       confirmDeliveryHandler,
		rateDonationHandler:          rateDonationHandler,
		createCourierHandler:         createCourierHandler,
		updateCourierLocationHandler: updateCourierLocationHandler,
		registerCourierHandler:       registerCourierHandler,
		completeCampHandler:          completeCampHandler,
		getAvailableDonationsHandler: getAvailableDonationsHandler,
		getCourierPickupsHandler:     getCourierPickupsHandler,
		getDonationsToVerifyHandler:  getDonationsToVerifyHandler,
		getLeaderboardHandler:        getLeaderboardHandler,
		getNearestCampHandler:        getNearestCampHandler,
	}
}

// RegisterRoutes attaches all API routes to the given Echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/donations", s.CreateDonation)
	api.GET("/donations/available", s.GetAvailableDonations)
	api.POST("/donations/:donationID/accept", s.AcceptDonation)
	api.POST("/donations/:donationID/collect", s.CollectDonation)
	api.POST("/donations/:donationID/confirm", s.ConfirmDelivery)
	api.POST("/donations/:donationID/rating", s.RateDonation)

	api.POST("/couriers", s.CreateCourier)
	api.POST("/couriers/:courierID/location", s.UpdateCourierLocation)
	api.POST("/couriers/:courierID/registrations", s.RegisterCourier)
	api.POST("/couriers/:courierID/deliver", s.DeliverDonations)
	api.GET("/couriers/:courierID/pickups", s.GetCourierPickups)
	api.GET("/couriers/:courierID/nearest-camp", s.GetNearestCamp)

	api.POST("/camps/:campID/complete", s.CompleteCamp)
	api.GET("/operators/:operatorID/verification-queue", s.GetDonationsToVerify)
	api.GET("/leaderboard", s.GetLeaderboard)
}

// CreateDonation handles POST /api/v1/donations - pledges a new donation.
func (s *Server) CreateDonation(ctx echo.Context) error {
	var body NewDonation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	supplierID, err := kernel.UUIDFromBytes(body.SupplierID[:])
	if err != nil {
		return badRequest(ctx, "Invalid supplier id")
	}

	donationID := kernel.NewUUID()
	cmd, err := commands.NewCreateDonationCommand(
		donationID, supplierID, body.FoodDescription, body.Quantity, body.PickupAddress)
	if err != nil {
		return badRequest(ctx, "Invalid donation data: "+err.Error())
	}

	if err := s.createDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	observability.DonationsCreatedTotal.Inc()
	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: donationID.Bytes()})
}

// GetAvailableDonations handles GET /api/v1/donations/available.
func (s *Server) GetAvailableDonations(ctx echo.Context) error {
	query := queries.NewGetAvailableDonationsQuery()

	donations, err := s.getAvailableDonationsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailableDonation, len(donations))
	for i, d := range donations {
		response[i] = AvailableDonation{
			ID:              d.ID.Bytes(),
			SupplierID:      d.SupplierID.Bytes(),
			FoodDescription: d.FoodDescription,
			Quantity:        d.Quantity,
			PickupAddress:   d.PickupAddress,
			CreatedAt:       d.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AcceptDonation handles POST /api/v1/donations/:donationID/accept - claims
// a pending donation for a courier.
func (s *Server) AcceptDonation(ctx echo.Context) error {
	donationID, err := kernel.UUIDFromString(ctx.Param("donationID"))
	if err != nil {
		return badRequest(ctx, "Invalid donation id")
	}

	var body CourierAction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(body.CourierID[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewAcceptDonationCommand(donationID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid accept data: "+err.Error())
	}

	if err := s.acceptDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	observability.DonationsAcceptedTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// CollectDonation handles POST /api/v1/donations/:donationID/collect.
func (s *Server) CollectDonation(ctx echo.Context) error {
	donationID, err := kernel.UUIDFromString(ctx.Param("donationID"))
	if err != nil {
		return badRequest(ctx, "Invalid donation id")
	}

	var body CourierAction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID, err := kernel.UUIDFromBytes(body.CourierID[:])
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	cmd, err := commands.NewCollectDonationCommand(donationID, courierID)
	if err != nil {
		return badRequest(ctx, "Invalid collect data: "+err.Error())
	}

	if err := s.collectDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	observability.DonationsCollectedTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// DeliverDonations handles POST /api/v1/couriers/:courierID/deliver - drops
// the courier's whole active load at one camp.
func (s *Server) DeliverDonations(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var body DeliverRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	campID, err := kernel.UUIDFromBytes(body.CampID[:])
	if err != nil {
		return badRequest(ctx, "Invalid camp id")
	}

	cmd, err := commands.NewDeliverDonationsCommand(courierID, campID)
	if err != nil {
		return badRequest(ctx, "Invalid delivery data: "+err.Error())
	}

	delivered, err := s.deliverDonationsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	observability.DonationsDeliveredTotal.Add(float64(delivered))
	return ctx.JSON(http.StatusOK, DeliverResponse{DeliveredCount: delivered})
}

// ConfirmDelivery handles POST /api/v1/donations/:donationID/confirm.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	donationID, err := kernel.UUIDFromString(ctx.Param("donationID"))
	if err != nil {
		return badRequest(ctx, "Invalid donation id")
	}

	var body OperatorAction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.UUIDFromBytes(body.OperatorID[:])
	if err != nil {
		return badRequest(ctx, "Invalid operator id")
	}

	cmd, err := commands.NewConfirmDeliveryCommand(donationID, operatorID)
	if err != nil {
		return badRequest(ctx, "Invalid confirmation data: "+err.Error())
	}

	if err := s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	observability.DonationsConfirmedTotal.Inc()
	return ctx.NoContent(http.StatusNoContent)
}

// RateDonation handles POST /api/v1/donations/:donationID/rating.
func (s *Server) RateDonation(ctx echo.Context) error {
	donationID, err := kernel.UUIDFromString(ctx.Param("donationID"))
	if err != nil {
		return badRequest(ctx, "Invalid donation id")
	}

	var body RatingRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.UUIDFromBytes(body.OperatorID[:])
	if err != nil {
		return badRequest(ctx, "Invalid operator id")
	}

	cmd, err := commands.NewRateDonationCommand(donationID, operatorID, body.Score, body.Review)
	if err != nil {
		return badRequest(ctx, "Invalid rating data: "+err.Error())
	}

	if err := s.rateDonationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateCourier handles POST /api/v1/couriers - creates a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var body NewCourier
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	courierID := kernel.NewUUID()
	cmd, err := commands.NewCreateCourierCommand(courierID, body.Name)
	if err != nil {
		return badRequest(ctx, "Invalid courier data: "+err.Error())
	}

	if err := s.createCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: courierID.Bytes()})
}

// UpdateCourierLocation handles POST /api/v1/couriers/:courierID/location.
func (s *Server) UpdateCourierLocation(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var body CourierLocation
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewGeoPoint(body.Latitude, body.Longitude)
	if err != nil {
		return badRequest(ctx, "Invalid coordinates: "+err.Error())
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, location)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if err := s.updateCourierLocationHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RegisterCourier handles POST /api/v1/couriers/:courierID/registrations.
func (s *Server) RegisterCourier(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	var body Registration
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	organizationID, err := kernel.UUIDFromBytes(body.OrganizationID[:])
	if err != nil {
		return badRequest(ctx, "Invalid organization id")
	}

	cmd, err := commands.NewRegisterCourierCommand(courierID, organizationID)
	if err != nil {
		return badRequest(ctx, "Invalid registration data: "+err.Error())
	}

	if err := s.registerCourierHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CompleteCamp handles POST /api/v1/camps/:campID/complete.
func (s *Server) CompleteCamp(ctx echo.Context) error {
	campID, err := kernel.UUIDFromString(ctx.Param("campID"))
	if err != nil {
		return badRequest(ctx, "Invalid camp id")
	}

	var body OperatorAction
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	operatorID, err := kernel.UUIDFromBytes(body.OperatorID[:])
	if err != nil {
		return badRequest(ctx, "Invalid operator id")
	}

	cmd, err := commands.NewCompleteCampCommand(campID, operatorID)
	if err != nil {
		return badRequest(ctx, "Invalid completion data: "+err.Error())
	}

	if err := s.completeCampHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetCourierPickups handles GET /api/v1/couriers/:courierID/pickups.
func (s *Server) GetCourierPickups(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetCourierPickupsQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	pickups, err := s.getCourierPickupsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, CourierPickups{
		Active:  toPickups(pickups.Active),
		History: toPickups(pickups.History),
	})
}

// GetDonationsToVerify handles GET /api/v1/operators/:operatorID/verification-queue.
func (s *Server) GetDonationsToVerify(ctx echo.Context) error {
	operatorID, err := kernel.UUIDFromString(ctx.Param("operatorID"))
	if err != nil {
		return badRequest(ctx, "Invalid operator id")
	}

	query, err := queries.NewGetDonationsToVerifyQuery(operatorID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	items, err := s.getDonationsToVerifyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]VerificationItem, len(items))
	for i, item := range items {
		response[i] = VerificationItem{
			ID:              item.ID.Bytes(),
			FoodDescription: item.FoodDescription,
			Quantity:        item.Quantity,
			CampID:          item.CampID.Bytes(),
			CampName:        item.CampName,
			DeliveredAt:     item.DeliveredAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetLeaderboard handles GET /api/v1/leaderboard. The optional limit query
// parameter caps the number of entries; it defaults to the standard
// leaderboard size.
func (s *Server) GetLeaderboard(ctx echo.Context) error {
	limit := queries.LeaderboardDefaultLimit
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(ctx, "Invalid limit")
		}
		limit = parsed
	}

	query, err := queries.NewGetLeaderboardQuery(limit)
	if err != nil {
		return badRequest(ctx, "Invalid limit: "+err.Error())
	}

	entries, err := s.getLeaderboardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]LeaderboardEntry, len(entries))
	for i, entry := range entries {
		response[i] = LeaderboardEntry{
			CourierID:  entry.CourierID.Bytes(),
			Name:       entry.Name,
			Deliveries: entry.Deliveries,
			AvgRating:  entry.AvgRating,
			Score:      entry.Score,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNearestCamp handles GET /api/v1/couriers/:courierID/nearest-camp.
func (s *Server) GetNearestCamp(ctx echo.Context) error {
	courierID, err := kernel.UUIDFromString(ctx.Param("courierID"))
	if err != nil {
		return badRequest(ctx, "Invalid courier id")
	}

	query, err := queries.NewGetNearestCampQuery(courierID)
	if err != nil {
		return badRequest(ctx, "Invalid query: "+err.Error())
	}

	nearest, err := s.getNearestCampHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, NearestCamp{
		CampID:         nearest.CampID.Bytes(),
		OrganizationID: nearest.OrganizationID.Bytes(),
		Name:           nearest.Name,
		Latitude:       nearest.Location.Latitude(),
		Longitude:      nearest.Location.Longitude(),
		DistanceMeters: nearest.DistanceMeters,
	})
}

func toPickups(items []queries.CourierPickupResponse) []Pickup {
	result := make([]Pickup, len(items))
	for i, item := range items {
		result[i] = Pickup{
			ID:              item.ID.Bytes(),
			FoodDescription: item.FoodDescription,
			Quantity:        item.Quantity,
			PickupAddress:   item.PickupAddress,
			Status:          item.Status.String(),
			AcceptedAt:      item.AcceptedAt,
			DeliveredAt:     item.DeliveredAt,
		}
	}
	return result
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// respondError maps application and domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, commands.ErrDonationAlreadyTaken),
		errors.Is(err, commands.ErrCourierCapacityExceeded),
		errors.Is(err, camp.ErrCampAlreadyCompleted):
		status = http.StatusConflict
	case errors.Is(err, donation.ErrCourierMismatch),
		errors.Is(err, commands.ErrCampNotManagedByOperator):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, services.ErrNoCampCandidates):
		status = http.StatusNotFound
	case errors.Is(err, commands.ErrCampNotActive),
		errors.Is(err, services.ErrNoCourierLocation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}
