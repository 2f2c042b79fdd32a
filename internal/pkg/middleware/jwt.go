package middleware

import (
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/strikelab/punchkiosk/internal/pkg/jwt"
	"github.com/strikelab/punchkiosk/internal/pkg/models"
	"github.com/strikelab/punchkiosk/internal/utils"
)

// JWTAuthMiddleware creates a middleware for admin JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			// Get the Authorization header
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := parts[1]

			claims, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			username, ok := (*claims)["username"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing username claim")
			}

			role, ok := (*claims)["role"]
			if !ok || fmt.Sprintf("%v", role) != "admin" {
				return utils.ForbiddenResponse(c, "Admin role required")
			}

			c.Set("admin_user", fmt.Sprintf("%v", username))

			return next(c)
		}
	}
}
