package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

// JamaahHandler handles HTTP requests for attendee management.
type JamaahHandler struct {
	service ports.JamaahService
}

func NewJamaahHandler(service ports.JamaahService) *JamaahHandler {
	return &JamaahHandler{service: service}
}

// List handles GET /api/jamaah.
//
// @Summary      List jamaah
// @Tags         jamaah
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Jamaah
// @Failure      401  {object}  errorResponse
// @Router       /jamaah [get]
func (h *JamaahHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Jamaah{}
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /api/jamaah.
//
// @Summary      Register a jamaah
// @Tags         jamaah
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      jamaahRequest  true  "Jamaah details"
// @Success      200   {object}  domain.Jamaah
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /jamaah [post]
func (h *JamaahHandler) Create(c echo.Context) error {
	var req jamaahRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	j, err := h.service.Create(c.Request().Context(), toJamaahInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, j)
}

// Update handles PUT /api/jamaah/:id.
//
// @Summary      Update a jamaah
// @Tags         jamaah
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Jamaah id"
// @Param        body  body      jamaahRequest  true  "Jamaah details"
// @Success      200   {object}  domain.Jamaah
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /jamaah/{id} [put]
func (h *JamaahHandler) Update(c echo.Context) error {
	var req jamaahRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	j, err := h.service.Update(c.Request().Context(), c.Param("id"), toJamaahInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, j)
}

// Delete handles DELETE /api/jamaah/:id. Attendance records of the jamaah
// are kept.
//
// @Summary      Delete a jamaah
// @Tags         jamaah
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Jamaah id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /jamaah/{id} [delete]
func (h *JamaahHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Jamaah deleted successfully"})
}
