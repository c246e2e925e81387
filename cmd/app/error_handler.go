package main

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"GameCatalogAPI/internal/apperr"

	"github.com/labstack/echo/v4"
)

// newHTTPErrorHandler normalizes every error escaping a handler to the
// uniform {"error": ...} / {"errors": {...}} shape. Unrecognized errors are
// logged with full detail and surface as a generic 500; panics arrive here
// through the Recover middleware.
func newHTTPErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		var body interface{} = echo.Map{"error": "internal server error"}

		var ve *apperr.ValidationError
		var he *echo.HTTPError
		switch {
		case errors.As(err, &ve):
			status = http.StatusBadRequest
			body = echo.Map{"errors": ve.Fields}
		case errors.Is(err, apperr.ErrInvalidParameter):
			status = http.StatusBadRequest
			body = echo.Map{"error": err.Error()}
		case errors.Is(err, apperr.ErrInvalidCredentials):
			status = http.StatusUnauthorized
			body = echo.Map{"error": apperr.ErrInvalidCredentials.Error()}
		case errors.Is(err, apperr.ErrInvalidToken):
			status = http.StatusUnauthorized
			body = echo.Map{"error": apperr.ErrInvalidToken.Error()}
		case errors.Is(err, apperr.ErrNotFound):
			status = http.StatusNotFound
			body = echo.Map{"error": "game not found"}
		case errors.As(err, &he):
			// route-level 404/405, 413 from the body limit, handler-built
			// HTTP errors
			status = he.Code
			body = echo.Map{"error": fmt.Sprintf("%v", he.Message)}
		default:
			logger.Error("unhandled error",
				"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"error", err,
			)
		}

		var werr error
		if c.Request().Method == http.MethodHead {
			werr = c.NoContent(status)
		} else {
			werr = c.JSON(status, body)
		}
		if werr != nil {
			logger.Error("writing error response failed", "error", werr)
		}
	}
}
