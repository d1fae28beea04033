package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HeaderUserID carries the authenticated subject, set at the edge by
// the external identity provider. This service never validates
// credentials itself.
const HeaderUserID = "X-User-ID"

const callerKey = "caller_id"

func CallerIdentity() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id := c.Request().Header.Get(HeaderUserID); id != "" {
				c.Set(callerKey, id)
			}
			return next(c)
		}
	}
}

// CallerID returns the authenticated caller or a 401 when the request
// arrived without an identity.
func CallerID(c echo.Context) (string, error) {
	id, _ := c.Get(callerKey).(string)
	if id == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}
	return id, nil
}
