package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

const adminKey = "admin"

// Auth validates the bearer token through authService and injects the
// authenticated admin into the context.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization header")
			}

			admin, err := authService.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			switch {
			case err == nil:
			case errors.Is(err, domain.ErrAdminNotFound):
				return echo.NewHTTPError(http.StatusUnauthorized, "Admin not found").SetInternal(err)
			case errors.Is(err, domain.ErrUnauthorized):
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token").SetInternal(err)
			default:
				return err
			}

			c.Set(adminKey, admin)
			return next(c)
		}
	}
}

// CurrentAdmin returns the admin injected by Auth, or nil outside protected routes.
func CurrentAdmin(c echo.Context) *domain.Admin {
	admin, _ := c.Get(adminKey).(*domain.Admin)
	return admin
}
