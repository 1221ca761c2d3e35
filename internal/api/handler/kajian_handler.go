package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

const headerQRPayload = "X-QR-Payload"

// KajianHandler handles HTTP requests for session management and QR codes.
type KajianHandler struct {
	service ports.KajianService
	qr      ports.QRService
}

func NewKajianHandler(service ports.KajianService, qr ports.QRService) *KajianHandler {
	return &KajianHandler{service: service, qr: qr}
}

// List handles GET /api/kajian.
//
// @Summary      List kajian
// @Tags         kajian
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Kajian
// @Failure      401  {object}  errorResponse
// @Router       /kajian [get]
func (h *KajianHandler) List(c echo.Context) error {
	list, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	if list == nil {
		list = []*domain.Kajian{}
	}
	return c.JSON(http.StatusOK, list)
}

// Create handles POST /api/kajian.
//
// @Summary      Schedule a kajian
// @Tags         kajian
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      kajianRequest  true  "Kajian details"
// @Success      200   {object}  domain.Kajian
// @Failure      422   {object}  errorResponse
// @Router       /kajian [post]
func (h *KajianHandler) Create(c echo.Context) error {
	var req kajianRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	k, err := h.service.Create(c.Request().Context(), toKajianInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, k)
}

// Update handles PUT /api/kajian/:id.
//
// @Summary      Update a kajian
// @Tags         kajian
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Kajian id"
// @Param        body  body      kajianRequest  true  "Kajian details"
// @Success      200   {object}  domain.Kajian
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /kajian/{id} [put]
func (h *KajianHandler) Update(c echo.Context) error {
	var req kajianRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	k, err := h.service.Update(c.Request().Context(), c.Param("id"), toKajianInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, k)
}

// Delete handles DELETE /api/kajian/:id.
//
// @Summary      Delete a kajian
// @Tags         kajian
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Kajian id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /kajian/{id} [delete]
func (h *KajianHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "Kajian deleted successfully"})
}

// Public handles GET /api/kajian/:id/public, the unauthenticated view used by
// the check-in page.
//
// @Summary      Kajian detail for the check-in page
// @Tags         public
// @Produce      json
// @Param        id   path      string  true  "Kajian id"
// @Success      200  {object}  domain.Kajian
// @Failure      404  {object}  errorResponse
// @Router       /kajian/{id}/public [get]
func (h *KajianHandler) Public(c echo.Context) error {
	k, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, k)
}

// QR handles GET /api/kajian/:id/qr. The kajian is not looked up; the encoded
// URL is echoed in the X-QR-Payload header.
//
// @Summary      QR code of the check-in URL
// @Tags         kajian
// @Produce      png
// @Security     BearerAuth
// @Param        id   path  string  true  "Kajian id"
// @Success      200  {file}  binary
// @Failure      401  {object}  errorResponse
// @Router       /kajian/{id}/qr [get]
func (h *KajianHandler) QR(c echo.Context) error {
	id := c.Param("id")
	png, err := h.qr.Render(id)
	if err != nil {
		return err
	}
	c.Response().Header().Set(headerQRPayload, h.qr.Payload(id))
	return c.Blob(http.StatusOK, "image/png", png)
}
