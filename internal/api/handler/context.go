package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/api/middleware"
	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// ctxAdmin returns the admin injected by the Auth middleware. A missing admin
// means the route was mounted without the middleware.
func ctxAdmin(c echo.Context) (*domain.Admin, error) {
	admin := middleware.CurrentAdmin(c)
	if admin == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return admin, nil
}

// bindAndValidate decodes the JSON body into req and runs the validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload").SetInternal(err)
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
