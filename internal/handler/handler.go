package handler

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/natthaphon/eventpass/internal/service"
)

// Validator plugs go-playground/validator into echo's c.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// toHTTPError maps the service error taxonomy onto HTTP status codes.
// Anything unrecognized is a 500 fatal to this request only.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, service.ErrEventNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrRSVPNotFound),
		errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrTicketNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotHost),
		errors.Is(err, service.ErrAudienceMismatch):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrSelfJoin),
		errors.Is(err, service.ErrDeadlinePassed),
		errors.Is(err, service.ErrInvalidSchedule):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrAlreadyRequested),
		errors.Is(err, service.ErrEventFull),
		errors.Is(err, service.ErrInvalidState):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrGatewayUnavailable):
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
