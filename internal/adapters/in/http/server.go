// Package http exposes the delivery lifecycle over REST.
// Every response carries the envelope {ok, data} on success and
// {ok, error} on failure; handler errors never escape to the client
// as bare echo errors.
package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"glassgo/internal/core/application/usecases/commands"
	"glassgo/internal/core/application/usecases/queries"
	"glassgo/internal/core/domain/model/delivery"
	"glassgo/internal/core/domain/model/kernel"
	"glassgo/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startDeliveryHandler  commands.StartDeliveryCommandHandler
	updateStatusHandler   commands.UpdateDeliveryStatusCommandHandler
	updateLocationHandler commands.UpdateDeliveryLocationCommandHandler
	completeHandler       commands.CompleteDeliveryCommandHandler

	// Query handlers
	getAllDeliveriesHandler    queries.GetAllDeliveriesQueryHandler
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startDeliveryHandler commands.StartDeliveryCommandHandler,
	updateStatusHandler commands.UpdateDeliveryStatusCommandHandler,
	updateLocationHandler commands.UpdateDeliveryLocationCommandHandler,
	completeHandler commands.CompleteDeliveryCommandHandler,
	getAllDeliveriesHandler queries.GetAllDeliveriesQueryHandler,
	getActiveDeliveriesHandler queries.GetActiveDeliveriesQueryHandler,
) *Server {
	return &Server{
		startDeliveryHandler:       startDeliveryHandler,
		updateStatusHandler:        updateStatusHandler,
		updateLocationHandler:      updateLocationHandler,
		completeHandler:            completeHandler,
		getAllDeliveriesHandler:    getAllDeliveriesHandler,
		getActiveDeliveriesHandler: getActiveDeliveriesHandler,
	}
}

// RegisterRoutes mounts all delivery endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")
	api.POST("/deliveries", s.StartDelivery)
	api.GET("/deliveries", s.GetDeliveries)
	api.GET("/deliveries/active", s.GetActiveDeliveries)
	api.PATCH("/deliveries/:id/status", s.UpdateDeliveryStatus)
	api.PATCH("/deliveries/:id/location", s.UpdateDeliveryLocation)
	api.POST("/deliveries/:id/complete", s.CompleteDelivery)

	e.GET("/health", s.Health)
}

// envelope is the uniform response body for every endpoint.
type envelope struct {
	OK    bool   `json:"ok"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

func respondData(ctx echo.Context, code int, data any) error {
	return ctx.JSON(code, envelope{OK: true, Data: data})
}

func respondError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, envelope{OK: false, Error: message})
}

// respondFailure maps application errors onto the envelope with the
// appropriate status code: 404 for missing aggregates, 400 for validation
// failures, 500 for everything else.
func respondFailure(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return respondError(ctx, http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return respondError(ctx, http.StatusBadRequest, err.Error())
	default:
		return respondError(ctx, http.StatusInternalServerError, err.Error())
	}
}

// deliveryResource is the JSON shape of a delivery.
type deliveryResource struct {
	DeliveryID string  `json:"deliveryId"`
	CarrierID  *string `json:"carrierId,omitempty"`
	RouteID    *string `json:"routeId,omitempty"`
	Status     string  `json:"status"`
	Location   any     `json:"location"`
	UpdatedAt  string  `json:"updatedAt"`
	Version    int     `json:"version"`
}

// coordinatesResource renders the coordinate variant of a location.
type coordinatesResource struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func locationToWire(location kernel.Location) any {
	switch location.Kind() {
	case kernel.LocationText:
		return location.Text()
	case kernel.LocationCoordinates:
		return coordinatesResource{Lat: location.Lat(), Lng: location.Lng()}
	default:
		return nil
	}
}

func resourceFromAggregate(d *delivery.Delivery) deliveryResource {
	return deliveryResource{
		DeliveryID: d.ID().String(),
		CarrierID:  d.CarrierID(),
		RouteID:    d.RouteID(),
		Status:     d.Status().String(),
		Location:   locationToWire(d.Location()),
		UpdatedAt:  d.UpdatedAt().UTC().Format(wireTimeFormat),
		Version:    d.Version(),
	}
}

func resourceFromReadModel(r queries.DeliveryResponse) deliveryResource {
	return deliveryResource{
		DeliveryID: r.ID.String(),
		CarrierID:  r.CarrierID,
		RouteID:    r.RouteID,
		Status:     r.Status.String(),
		Location:   locationToWire(r.Location),
		UpdatedAt:  r.UpdatedAt.UTC().Format(wireTimeFormat),
		Version:    r.Version,
	}
}

// wireTimeFormat is ISO-8601 with millisecond precision.
const wireTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// parseLocation decodes the duck-typed location field: absent or null means
// unknown, a JSON string is a text location, and {lat,lng} is a coordinate
// pair.
func parseLocation(raw json.RawMessage) (kernel.Location, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return kernel.UnknownLocation(), nil
	}

	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return kernel.NewTextLocation(text), nil
	}

	var coords coordinatesResource
	if err := json.Unmarshal(raw, &coords); err == nil {
		return kernel.NewCoordinates(coords.Lat, coords.Lng), nil
	}

	return kernel.UnknownLocation(), errs.NewValueIsInvalidError("location")
}

type startDeliveryRequest struct {
	DeliveryID *string         `json:"deliveryId"`
	CarrierID  *string         `json:"carrierId"`
	RouteID    *string         `json:"routeId"`
	Location   json.RawMessage `json:"location"`
}

// StartDelivery handles POST /api/v1/deliveries - starts a new delivery.
// The delivery always starts in the in_progress status; any status supplied
// by the client is ignored.
func (s *Server) StartDelivery(ctx echo.Context) error {
	var req startDeliveryRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	location, err := parseLocation(req.Location)
	if err != nil {
		return respondFailure(ctx, err)
	}

	var deliveryID *kernel.DeliveryID
	if req.DeliveryID != nil {
		id, idErr := kernel.DeliveryIDFromString(*req.DeliveryID)
		if idErr != nil {
			return respondFailure(ctx, idErr)
		}
		deliveryID = &id
	}

	cmd, err := commands.NewStartDeliveryCommand(deliveryID, req.CarrierID, req.RouteID, location)
	if err != nil {
		return respondFailure(ctx, err)
	}

	created, err := s.startDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondFailure(ctx, err)
	}

	return respondData(ctx, http.StatusCreated, resourceFromAggregate(created))
}

// GetDeliveries handles GET /api/v1/deliveries - retrieves all deliveries.
func (s *Server) GetDeliveries(ctx echo.Context) error {
	query := queries.NewGetAllDeliveriesQuery()

	deliveries, err := s.getAllDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondFailure(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resourcesFromReadModels(deliveries))
}

// GetActiveDeliveries handles GET /api/v1/deliveries/active - retrieves
// deliveries that have not reached a terminal status.
func (s *Server) GetActiveDeliveries(ctx echo.Context) error {
	query := queries.NewGetActiveDeliveriesQuery()

	deliveries, err := s.getActiveDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondFailure(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resourcesFromReadModels(deliveries))
}

func resourcesFromReadModels(models []queries.DeliveryResponse) []deliveryResource {
	resources := make([]deliveryResource, len(models))
	for i, model := range models {
		resources[i] = resourceFromReadModel(model)
	}
	return resources
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateDeliveryStatus handles PATCH /api/v1/deliveries/:id/status.
// Terminal deliveries are returned unchanged with 200; the write is skipped.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	id, err := kernel.DeliveryIDFromString(ctx.Param("id"))
	if err != nil {
		return respondFailure(ctx, err)
	}

	var req updateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return respondFailure(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(id, status)
	if err != nil {
		return respondFailure(ctx, err)
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondFailure(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resourceFromAggregate(updated))
}

type updateLocationRequest struct {
	Location json.RawMessage `json:"location"`
}

// UpdateDeliveryLocation handles PATCH /api/v1/deliveries/:id/location.
// The update succeeds even when the location fails verification; monitoring
// raises an advisory warning alert downstream in that case.
func (s *Server) UpdateDeliveryLocation(ctx echo.Context) error {
	id, err := kernel.DeliveryIDFromString(ctx.Param("id"))
	if err != nil {
		return respondFailure(ctx, err)
	}

	var req updateLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return respondError(ctx, http.StatusBadRequest, "invalid request body")
	}

	location, err := parseLocation(req.Location)
	if err != nil {
		return respondFailure(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryLocationCommand(id, location)
	if err != nil {
		return respondFailure(ctx, err)
	}

	updated, err := s.updateLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondFailure(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resourceFromAggregate(updated))
}

// CompleteDelivery handles POST /api/v1/deliveries/:id/complete.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	id, err := kernel.DeliveryIDFromString(ctx.Param("id"))
	if err != nil {
		return respondFailure(ctx, err)
	}

	cmd, err := commands.NewCompleteDeliveryCommand(id)
	if err != nil {
		return respondFailure(ctx, err)
	}

	completed, err := s.completeHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondFailure(ctx, err)
	}

	return respondData(ctx, http.StatusOK, resourceFromAggregate(completed))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return respondData(ctx, http.StatusOK, map[string]string{"status": "ok"})
}
