package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/dto"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/service"
)

type ModerationHandler struct {
	svc service.ModerationService
}

func NewModerationHandler(svc service.ModerationService) *ModerationHandler {
	return &ModerationHandler{svc: svc}
}

func (h *ModerationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/v1/events/:id/requests", h.ListPendingRequests)
	e.POST("/api/v1/requests/:id/decision", h.DecideRequest)
}

func (h *ModerationHandler) ListPendingRequests(c echo.Context) error {
	requesterID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	rsvps, err := h.svc.ListPendingRequests(c.Request().Context(), c.Param("id"), requesterID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.RSVPResponse, len(rsvps))
	for i, r := range rsvps {
		resp[i] = dto.ToRSVPResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ModerationHandler) DecideRequest(c echo.Context) error {
	requesterID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	var req dto.DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	rsvp, err := h.svc.DecideRequest(c.Request().Context(), c.Param("id"), requesterID, service.Decision(req.Decision))
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRSVPResponse(rsvp))
}
