package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Detail string `json:"detail"`
}

// detailMessages holds the client-facing text of known domain errors.
var detailMessages = []struct {
	err error
	msg string
}{
	{domain.ErrAdminNotFound, "Admin not found"},
	{domain.ErrJamaahNotFound, "Jamaah not found"},
	{domain.ErrKajianNotFound, "Kajian not found"},
	{domain.ErrUsernameTaken, "Username already exists"},
	{domain.ErrPhoneTaken, "Phone number already exists"},
	{domain.ErrAlreadyRecorded, "Attendance already recorded"},
	{domain.ErrInvalidCredentials, "Invalid credentials"},
	{domain.ErrInvalidToken, "Invalid token"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps domain error kinds to their HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"detail": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if code == http.StatusUnauthorized {
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Detail: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Internal != nil {
			log.Debug().Err(he.Internal).Str("path", c.Path()).Msg("request rejected")
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, detailFor(err)
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, detailFor(err)
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, detailFor(err)
	case errors.Is(err, domain.ErrWindowClosed), errors.Is(err, domain.ErrInvalid):
		return http.StatusUnprocessableEntity, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

func detailFor(err error) string {
	for _, d := range detailMessages {
		if errors.Is(err, d.err) {
			return d.msg
		}
	}
	return err.Error()
}
