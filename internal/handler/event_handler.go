package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/dto"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/models"
	"github.com/natthaphon/eventpass/internal/service"
)

// Events default to an RSVP cutoff two hours before the occurrence when
// the host does not pick one.
const defaultDeadlineHours = 2

type EventHandler struct {
	svc service.EventService
}

func NewEventHandler(svc service.EventService) *EventHandler {
	return &EventHandler{svc: svc}
}

func (h *EventHandler) RegisterRoutes(e *echo.Echo) {
	events := e.Group("/api/v1/events")
	events.POST("", h.CreateEvent)
	events.GET("", h.ListEvents)
	events.GET("/:id", h.GetEvent)
	events.PATCH("/:id", h.UpdateEvent)
	events.GET("/:id/status", h.GetEventStatus)
}

func (h *EventHandler) CreateEvent(c echo.Context) error {
	hostID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	var req dto.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	deadline := req.Date.Add(-defaultDeadlineHours * time.Hour)
	if req.RSVPDeadline != nil {
		deadline = *req.RSVPDeadline
	} else if req.DeadlineHours > 0 {
		deadline = req.Date.Add(-time.Duration(req.DeadlineHours) * time.Hour)
	}

	visibility := models.VisibilityPublic
	if req.Visibility != "" {
		visibility = models.EventVisibility(req.Visibility)
	}
	audience := models.AudienceAll
	if req.Audience != "" {
		audience = models.EventAudience(req.Audience)
	}

	location := req.Location
	if req.LocationTBD || location == "" {
		location = "TBD"
	}

	event := &models.Event{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Date:            req.Date,
		RSVPDeadline:    deadline,
		Location:        location,
		LocationTBD:     req.LocationTBD,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		Visibility:      visibility,
		Audience:        audience,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		Published:       true,
	}

	if err := h.svc.CreateEvent(c.Request().Context(), hostID, event); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *EventHandler) UpdateEvent(c echo.Context) error {
	hostID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	var req dto.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	upd := service.EventUpdate{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Category,
		Date:            req.Date,
		RSVPDeadline:    req.RSVPDeadline,
		Location:        req.Location,
		LocationTBD:     req.LocationTBD,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		MaxParticipants: req.MaxParticipants,
		Price:           req.Price,
		Published:       req.Published,
	}
	if req.Visibility != nil {
		v := models.EventVisibility(*req.Visibility)
		upd.Visibility = &v
	}
	if req.Audience != nil {
		a := models.EventAudience(*req.Audience)
		upd.Audience = &a
	}

	event, err := h.svc.UpdateEvent(c.Request().Context(), c.Param("id"), hostID, upd)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) GetEvent(c echo.Context) error {
	event, err := h.svc.GetEvent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.svc.ListEvents(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.EventResponse, len(events))
	for i, e := range events {
		resp[i] = dto.ToEventResponse(&e)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *EventHandler) GetEventStatus(c echo.Context) error {
	status, err := h.svc.EventStatus(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.EventStatusResponse{
		ID:              status.Event.ID,
		Title:           status.Event.Title,
		MaxParticipants: status.Event.MaxParticipants,
		ConfirmedCount:  status.ConfirmedCount,
		PendingCount:    status.PendingCount,
		SeatsAvailable:  status.SeatsAvailable,
	})
}
