package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/Jayem09/coduxa-sub002/internal/pkg/jwt"
	"github.com/Jayem09/coduxa-sub002/internal/pkg/models"
	"github.com/Jayem09/coduxa-sub002/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication. Tokens are
// issued by the hosted auth provider; we only verify the HMAC signature and
// extract the subject.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			// The auth provider puts the user id in the sub claim
			userID, ok := (*claims)["sub"]
			if !ok {
				userID, ok = (*claims)["user_id"]
			}
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing subject claim")
			}

			c.Set("user_id", fmt.Sprintf("%v", userID))

			return next(c)
		}
	}
}
