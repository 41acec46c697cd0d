package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Neha-Agarwal-coder/shopingRecommendation/pkg/utils"

	"github.com/labstack/echo/v4"
)

type authError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// AuthMiddleware guards the admin surface (catalog reload) with a bearer JWT.
func AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, authError{
					Code: "UNAUTHORIZED", Message: "Missing authorization header",
				})
			}

			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, authError{
					Code: "UNAUTHORIZED", Message: "Invalid authorization format",
				})
			}

			claims, err := utils.ParseJWT(tokenParts[1])
			if err != nil {
				return c.JSON(http.StatusUnauthorized, authError{
					Code: "UNAUTHORIZED", Message: "Invalid token",
				})
			}

			expAt, err := claims.GetExpirationTime()
			if err != nil || expAt == nil || expAt.Before(time.Now()) {
				return c.JSON(http.StatusUnauthorized, authError{
					Code: "UNAUTHORIZED", Message: "Token expired",
				})
			}

			c.Set("subject", claims.Subject)

			return next(c)
		}
	}
}
