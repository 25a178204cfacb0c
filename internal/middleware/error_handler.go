package middleware

import (
	"net/http"
	"shopReco/pkg/logger"
	jsonres "shopReco/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the central echo error handler for errors that escape
// the per-route handlers (bad routes, panics surfaced by Recover).
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if msg, ok := he.Message.(string); ok {
			message = msg
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Error("unhandled request error", "error", err, "path", c.Request().URL.Path)
	}

	if err := c.JSON(code, jsonres.Error(http.StatusText(code), message, nil)); err != nil {
		logger.Error("failed to write error response", "error", err)
	}
}
