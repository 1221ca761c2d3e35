package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/api/metrics"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

// PresensiHandler handles the public check-in endpoint.
type PresensiHandler struct {
	service ports.PresensiService
}

func NewPresensiHandler(service ports.PresensiService) *PresensiHandler {
	return &PresensiHandler{service: service}
}

// Submit handles POST /api/presensi. Business rejections answer 200 with
// success=false; only malformed bodies and faults fail at the HTTP level.
//
// @Summary      Check in to a kajian
// @Tags         public
// @Accept       json
// @Produce      json
// @Param        body  body      presensiRequest  true  "Jamaah and kajian ids"
// @Success      200   {object}  presensiResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /presensi [post]
func (h *PresensiHandler) Submit(c echo.Context) error {
	var req presensiRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	start := time.Now()
	res, err := h.service.Submit(c.Request().Context(), ports.SubmitPresensiInput{
		JamaahID: req.IDJamaah,
		KajianID: req.IDKajian,
	})

	result := "error"
	switch {
	case err != nil:
	case res.Accepted:
		result = "accepted"
	default:
		result = string(res.Reason)
	}
	metrics.SubmissionsTotal.WithLabelValues(result).Inc()
	metrics.AdmissionDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())

	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPresensiResponse(res))
}
