package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/dto"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/service"
)

type AdmissionHandler struct {
	svc service.AdmissionService
}

func NewAdmissionHandler(svc service.AdmissionService) *AdmissionHandler {
	return &AdmissionHandler{svc: svc}
}

func (h *AdmissionHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/events/:id/join", h.Join)
	e.DELETE("/api/v1/events/:id/join", h.Withdraw)
}

func (h *AdmissionHandler) Join(c echo.Context) error {
	participantID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	rsvp, err := h.svc.RequestAdmission(c.Request().Context(), c.Param("id"), participantID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToRSVPResponse(rsvp))
}

func (h *AdmissionHandler) Withdraw(c echo.Context) error {
	participantID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	rsvp, err := h.svc.Withdraw(c.Request().Context(), c.Param("id"), participantID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToRSVPResponse(rsvp))
}
