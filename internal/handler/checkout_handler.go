package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/dto"
	"github.com/natthaphon/eventpass/internal/middleware"
	"github.com/natthaphon/eventpass/internal/service"
)

type CheckoutHandler struct {
	svc service.CheckoutService
}

func NewCheckoutHandler(svc service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{svc: svc}
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/v1/events/:id/checkout", h.BeginCheckout)
	e.POST("/api/v1/payments/confirm", h.ConfirmPayment)
}

func (h *CheckoutHandler) BeginCheckout(c echo.Context) error {
	payerID, err := middleware.CallerID(c)
	if err != nil {
		return err
	}

	result, err := h.svc.BeginCheckout(c.Request().Context(), c.Param("id"), payerID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, dto.CheckoutResponse{
		OrderID:     result.Order.ID,
		TicketID:    result.Ticket.ID,
		SessionID:   result.Order.PaymentSessionID,
		RedirectURL: result.RedirectURL,
		TotalAmount: result.Order.TotalAmount,
	})
}

func (h *CheckoutHandler) ConfirmPayment(c echo.Context) error {
	var req dto.ConfirmPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	confirmed, err := h.svc.ConfirmPayment(c.Request().Context(), req.SessionID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, dto.ConfirmPaymentResponse{Confirmed: confirmed})
}
