// Package http is the inbound HTTP adapter. Handlers translate between the
// JSON surface and application commands/queries; no business rules live here.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/visionyy32/Final-sub001/internal/adapters/out/mpesa"
	"github.com/visionyy32/Final-sub001/internal/core/application/payments"
	"github.com/visionyy32/Final-sub001/internal/core/application/workingset"
	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/commands"
	"github.com/visionyy32/Final-sub001/internal/core/application/usecases/queries"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/kernel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/parcel"
	"github.com/visionyy32/Final-sub001/internal/core/domain/model/user"
	"github.com/visionyy32/Final-sub001/internal/core/domain/services"
	"github.com/visionyy32/Final-sub001/internal/core/ports"
	"github.com/visionyy32/Final-sub001/internal/pkg/errs"
)

// Server wires HTTP routes to application use cases.
type Server struct {
	// Command handlers
	createParcelHandler  commands.CreateParcelCommandHandler
	cancelParcelHandler  commands.CancelParcelCommandHandler
	assignParcelHandler  commands.AssignParcelCommandHandler
	updateStatusHandler  commands.UpdateParcelStatusCommandHandler
	updateProfileHandler commands.UpdateUserProfileCommandHandler

	// Query handlers
	getParcelsByOwnerHandler queries.GetParcelsByOwnerQueryHandler
	getAllParcelsHandler     queries.GetAllParcelsQueryHandler
	getParcelHandler         queries.GetParcelQueryHandler
	trackParcelHandler       queries.TrackParcelQueryHandler

	// Payment coordination
	paymentFlow *payments.Flow

	// Dashboard working sets: one shared dispatcher-wide set, one
	// lazily-created set per customer.
	dispatcherSet *workingset.WorkingSet
	customerSets  *workingset.Registry
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	cancelParcelHandler commands.CancelParcelCommandHandler,
	assignParcelHandler commands.AssignParcelCommandHandler,
	updateStatusHandler commands.UpdateParcelStatusCommandHandler,
	updateProfileHandler commands.UpdateUserProfileCommandHandler,
	getParcelsByOwnerHandler queries.GetParcelsByOwnerQueryHandler,
	getAllParcelsHandler queries.GetAllParcelsQueryHandler,
	getParcelHandler queries.GetParcelQueryHandler,
	trackParcelHandler queries.TrackParcelQueryHandler,
	paymentFlow *payments.Flow,
	dispatcherSet *workingset.WorkingSet,
	customerSets *workingset.Registry,
) *Server {
	return &Server{
		createParcelHandler:      createParcelHandler,
		cancelParcelHandler:      cancelParcelHandler,
		assignParcelHandler:      assignParcelHandler,
		updateStatusHandler:      updateStatusHandler,
		updateProfileHandler:     updateProfileHandler,
		getParcelsByOwnerHandler: getParcelsByOwnerHandler,
		getAllParcelsHandler:     getAllParcelsHandler,
		getParcelHandler:         getParcelHandler,
		trackParcelHandler:       trackParcelHandler,
		paymentFlow:              paymentFlow,
		dispatcherSet:            dispatcherSet,
		customerSets:             customerSets,
	}
}

// RegisterRoutes mounts the API on the echo instance. The tracking endpoint
// and health probe are public; everything else requires a bearer token.
func (s *Server) RegisterRoutes(e *echo.Echo, auth *AuthMiddleware) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")
	v1.GET("/track/:code", s.TrackParcel)

	authed := v1.Group("", auth.Authenticate)
	authed.POST("/parcels", s.CreateParcel)
	authed.GET("/parcels", s.GetParcels)
	authed.GET("/dashboard", s.Dashboard)
	authed.POST("/parcels/:id/cancel", s.CancelParcel)
	authed.POST("/parcels/:id/pay", s.InitiatePayment)
	authed.GET("/parcels/:id/payment", s.PaymentState)
	authed.PUT("/users/me", s.UpdateProfile)

	dispatch := authed.Group("", auth.RequireDispatcher)
	dispatch.POST("/parcels/:id/assign", s.AssignParcel)
	dispatch.POST("/parcels/:id/status", s.UpdateParcelStatus)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateParcel handles POST /api/v1/parcels.
func (s *Server) CreateParcel(ctx echo.Context) error {
	principal, ok := CurrentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx, "Authorization token missing")
	}

	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sender, err := partyFromRequest(req.Sender)
	if err != nil {
		return badRequest(ctx, "Invalid sender: "+err.Error())
	}
	recipient, err := partyFromRequest(req.Recipient)
	if err != nil {
		return badRequest(ctx, "Invalid recipient: "+err.Error())
	}

	var dimensions *parcel.Dimensions
	if req.Dimensions != "" {
		dimensions, err = parcel.ParseDimensions(req.Dimensions)
		if err != nil {
			return badRequest(ctx, "Invalid dimensions: "+err.Error())
		}
	}

	tier := services.TierStandard
	if req.ServiceTier == "express" {
		tier = services.TierExpress
	}

	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(),
		principal.UserID,
		sender,
		recipient,
		req.Description,
		req.WeightKg,
		dimensions,
		req.Instructions,
		parcel.ParsePaymentMethod(req.PaymentMethod),
		tier,
	)
	if err != nil {
		return badRequest(ctx, "Invalid parcel data: "+err.Error())
	}

	created, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ID:           created.ID().String(),
		TrackingCode: created.TrackingCode().String(),
		Status:       created.Status().String(),
		TotalCost:    created.TotalCost().Amount(),
	})
}

// GetParcels handles GET /api/v1/parcels. Dispatchers and admins see every
// parcel; customers see only their own.
func (s *Server) GetParcels(ctx echo.Context) error {
	principal, ok := CurrentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx, "Authorization token missing")
	}

	var summaries []queries.ParcelSummary
	var err error

	if principal.Role == user.RoleDispatcher || principal.Role == user.RoleAdmin {
		summaries, err = s.getAllParcelsHandler.Handle(ctx.Request().Context(), queries.NewGetAllParcelsQuery())
	} else {
		var query queries.GetParcelsByOwnerQuery
		query, err = queries.NewGetParcelsByOwnerQuery(principal.UserID)
		if err == nil {
			summaries, err = s.getParcelsByOwnerHandler.Handle(ctx.Request().Context(), query)
		}
	}
	if err != nil {
		return s.respondError(ctx, err)
	}

	response := make([]ParcelResponse, len(summaries))
	for i, summary := range summaries {
		response[i] = parcelResponseFromSummary(summary)
	}

	return ctx.JSON(http.StatusOK, response)
}

// Dashboard handles GET /api/v1/dashboard. Serves the caller's working-set
// snapshot partitioned into the dashboard buckets. Dispatchers and admins
// read the shared dispatcher-wide set; each customer reads their own set,
// created on first request and kept current by the scheduled jobs.
func (s *Server) Dashboard(ctx echo.Context) error {
	principal, ok := CurrentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx, "Authorization token missing")
	}

	set := s.dispatcherSet
	if principal.Role != user.RoleDispatcher && principal.Role != user.RoleAdmin {
		var err error
		set, err = s.customerSets.ForOwner(ctx.Request().Context(), principal.UserID)
		if err != nil && set == nil {
			return s.respondError(ctx, err)
		}
	}

	return ctx.JSON(http.StatusOK, dashboardResponseFromCategorized(set.Categorize()))
}

// TrackParcel handles GET /api/v1/track/:code. Public: anyone holding a
// tracking code may follow the shipment.
func (s *Server) TrackParcel(ctx echo.Context) error {
	query, err := queries.NewTrackParcelQuery(ctx.Param("code"))
	if err != nil {
		return badRequest(ctx, "Invalid tracking code")
	}

	result, err := s.trackParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackParcelResponse{
		TrackingCode:      result.TrackingCode,
		SenderName:        result.SenderName,
		SenderCounty:      result.SenderCounty,
		RecipientName:     result.RecipientName,
		RecipientCounty:   result.RecipientCounty,
		Status:            result.Status.String(),
		CurrentLocation:   result.CurrentLocation,
		EstimatedDelivery: result.EstimatedDelivery,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	})
}

// CancelParcel handles POST /api/v1/parcels/:id/cancel. Only the owner can
// cancel, and only while the parcel awaits pickup.
func (s *Server) CancelParcel(ctx echo.Context) error {
	principal, ok := CurrentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx, "Authorization token missing")
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewCancelParcelCommand(parcelID, principal.UserID)
	if err != nil {
		return badRequest(ctx, "Invalid cancel request: "+err.Error())
	}

	if err := s.cancelParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignParcel handles POST /api/v1/parcels/:id/assign (dispatcher only).
func (s *Server) AssignParcel(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	cmd, err := commands.NewAssignParcelCommand(parcelID)
	if err != nil {
		return badRequest(ctx, "Invalid assign request: "+err.Error())
	}

	if err := s.assignParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateParcelStatus handles POST /api/v1/parcels/:id/status (dispatcher only).
func (s *Server) UpdateParcelStatus(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}
	if req.Status == "" {
		return badRequest(ctx, "Status is required")
	}

	cmd, err := commands.NewUpdateParcelStatusCommand(parcelID, parcel.ParseStatus(req.Status), req.Location)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	if err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// InitiatePayment handles POST /api/v1/parcels/:id/pay. The amount always
// comes from the stored parcel record, never from the request.
func (s *Server) InitiatePayment(ctx echo.Context) error {
	principal, ok := CurrentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx, "Authorization token missing")
	}

	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	var req InitiatePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	phone, err := kernel.NewPhoneNumber(req.PhoneNumber)
	if err != nil {
		return badRequest(ctx, "Invalid phone number")
	}

	query, err := queries.NewGetParcelQuery(parcelID)
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}
	summary, err := s.getParcelHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err)
	}

	isDispatcher := principal.Role == user.RoleDispatcher || principal.Role == user.RoleAdmin
	if !isDispatcher && !summary.OwnerID.IsEqual(principal.UserID) {
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: "Parcel belongs to another user",
		})
	}

	pushReq := ports.STKPushRequest{
		ParcelID:    parcelID,
		ParcelType:  "parcel",
		Phone:       phone,
		Amount:      summary.TotalCost,
		InitiatedBy: ports.InitiatedByCustomer,
	}
	if isDispatcher {
		pushReq.InitiatedBy = ports.InitiatedByDispatcher
		pushReq.InitiatedByUserID = &principal.UserID
	}

	if err := s.paymentFlow.Initiate(ctx.Request().Context(), pushReq); err != nil {
		return s.respondPaymentError(ctx, err)
	}

	return ctx.JSON(http.StatusAccepted, PaymentStateResponse{
		ParcelID: parcelID.String(),
		State:    s.paymentFlow.State(parcelID).String(),
		Message:  s.paymentFlow.Message(parcelID),
	})
}

// PaymentState handles GET /api/v1/parcels/:id/payment. Clients poll this
// while the payment surface is open.
func (s *Server) PaymentState(ctx echo.Context) error {
	parcelID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid parcel id")
	}

	return ctx.JSON(http.StatusOK, PaymentStateResponse{
		ParcelID: parcelID.String(),
		State:    s.paymentFlow.State(parcelID).String(),
		Message:  s.paymentFlow.Message(parcelID),
	})
}

// UpdateProfile handles PUT /api/v1/users/me.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	principal, ok := CurrentPrincipal(ctx)
	if !ok {
		return unauthorized(ctx, "Authorization token missing")
	}

	var req UpdateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateUserProfileCommand(principal.UserID, req.Name, req.Phone)
	if err != nil {
		return badRequest(ctx, "Invalid profile data: "+err.Error())
	}

	if err := s.updateProfileHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func partyFromRequest(req PartyRequest) (parcel.Party, error) {
	county, err := kernel.NewZone(req.County)
	if err != nil {
		return parcel.Party{}, err
	}
	phone, err := kernel.NewPhoneNumber(req.Phone)
	if err != nil {
		return parcel.Party{}, err
	}

	return parcel.NewParty(req.Name, req.Address, county, phone, req.Email, req.Carrier)
}

// respondError maps application-layer failures onto the error envelope.
// Validation already happened at the edge, so an invalid-value error from a
// handler means the operation was rejected by current state, not malformed.
func (s *Server) respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, commands.ErrParcelNotFound),
		errors.Is(err, commands.ErrUserNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, commands.ErrNotParcelOwner):
		return ctx.JSON(http.StatusForbidden, ErrorResponse{
			Code:    http.StatusForbidden,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func (s *Server) respondPaymentError(ctx echo.Context, err error) error {
	var gatewayErr *mpesa.GatewayError

	switch {
	case errors.Is(err, payments.ErrAttemptInProgress):
		return ctx.JSON(http.StatusConflict, ErrorResponse{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	case errors.Is(err, payments.ErrAmountIsNotPositive):
		return badRequest(ctx, err.Error())
	case errors.As(err, &gatewayErr):
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: gatewayErr.Message,
		})
	default:
		return ctx.JSON(http.StatusBadGateway, ErrorResponse{
			Code:    http.StatusBadGateway,
			Message: "Payment gateway unavailable",
		})
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
