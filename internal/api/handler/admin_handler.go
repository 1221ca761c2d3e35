package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/core/ports"
)

// AdminHandler handles HTTP requests for admin account management.
type AdminHandler struct {
	service ports.AdminService
}

func NewAdminHandler(service ports.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

// List handles GET /api/admin.
//
// @Summary      List admins
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   adminResponse
// @Failure      401  {object}  errorResponse
// @Router       /admin [get]
func (h *AdminHandler) List(c echo.Context) error {
	admins, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminResponses(admins))
}

// Create handles POST /api/admin.
//
// @Summary      Create an admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      adminRequest  true  "Admin credentials"
// @Success      200   {object}  adminResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /admin [post]
func (h *AdminHandler) Create(c echo.Context) error {
	var req adminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin, err := h.service.Create(c.Request().Context(), toAdminCredentials(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminResponse(admin))
}

// Update handles PUT /api/admin/:id.
//
// @Summary      Update an admin
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Admin id"
// @Param        body  body      adminRequest  true  "New credentials"
// @Success      200   {object}  adminResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/{id} [put]
func (h *AdminHandler) Update(c echo.Context) error {
	var req adminRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	admin, err := h.service.Update(c.Request().Context(), c.Param("id"), toAdminCredentials(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAdminResponse(admin))
}

// Delete handles DELETE /api/admin/:id.
//
// @Summary      Delete an admin
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Admin id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Admin deleted successfully"})
}
