package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/dto"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/service"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	e.PUT("/api/v1/me", h.SyncProfile)
	e.GET("/api/v1/me/tickets", h.MyTickets)
}

func (h *UserHandler) SyncProfile(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	var req dto.SyncProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.svc.SyncProfile(c.Request().Context(), userID, service.ProfileUpdate{
		Email:  req.Email,
		Name:   req.Name,
		Image:  req.Image,
		Gender: req.Gender,
	})
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) MyTickets(c echo.Context) error {
	userID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	tickets, err := h.svc.MyTickets(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.TicketResponse, len(tickets))
	for i, t := range tickets {
		resp[i] = dto.ToTicketResponse(&t)
	}
	return c.JSON(http.StatusOK, resp)
}
