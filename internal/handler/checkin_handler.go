package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/dto"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/service"
)

type CheckinHandler struct {
	svc service.CheckinService
}

func NewCheckinHandler(svc service.CheckinService) *CheckinHandler {
	return &CheckinHandler{svc: svc}
}

func (h *CheckinHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/checkin", h.CheckIn)
}

// CheckIn always answers 200 with a result payload; the scanner UI
// renders the outcome, it does not branch on status codes.
func (h *CheckinHandler) CheckIn(c echo.Context) error {
	hostID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	var req dto.CheckInRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.svc.CheckIn(c.Request().Context(), req.Code, hostID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToCheckInResponse(result))
}
