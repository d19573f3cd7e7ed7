package middleware

import (
	"errors"
	"net/http"

	"sparetime/pkg/logger"
	jsonres "sparetime/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo-level catch-all for errors no handler
// translated itself.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok {
			msg = http.StatusText(httpErr.Code)
		}
		_ = c.JSON(httpErr.Code, jsonres.Error(http.StatusText(httpErr.Code), msg, nil))
		return
	}

	logger.Error("Unhandled error", err)
	_ = c.JSON(http.StatusInternalServerError, jsonres.Error(
		"INTERNAL_SERVER_ERROR", "Internal server error", nil,
	))
}
