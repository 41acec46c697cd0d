package middleware

import (
	"net/http"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ErrorHandler is the echo HTTPErrorHandler; anything that escapes a
// handler is logged and turned into a JSON error body.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "internal server error"

	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}

	logger.Error("Unhandled request error",
		"request_id", c.Get("request_id"),
		"path", c.Request().URL.Path,
		"status", code,
		"error", err,
	)

	_ = c.JSON(code, map[string]interface{}{
		"message": message,
	})
}
