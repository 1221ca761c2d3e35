package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

func TestReportHandler_Report(t *testing.T) {
	k := &domain.Kajian{ID: "k1", Judul: "Tafsir", Tanggal: "2025-03-01", JamMulai: "19:30", JamSelesai: "21:00"}
	svc := &stubReportService{report: &ports.AttendanceReport{
		Kajian: k,
		Total:  2,
		Rows: []ports.AttendanceRow{
			{Nama: "Ahmad", Phone: "0812", RecordedAt: time.Date(2025, 3, 1, 12, 35, 0, 0, time.UTC)},
			{Nama: "Budi", Phone: "", RecordedAt: time.Date(2025, 3, 1, 12, 40, 0, 0, time.UTC)},
		},
	}}
	handler := NewReportHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/laporan/k1", "")
	c.SetParamNames("id")
	c.SetParamValues("k1")
	require.NoError(t, handler.Report(c))

	assert.JSONEq(t, `{
		"kajian": {"id":"k1","judul":"Tafsir","tanggal":"2025-03-01","jam_mulai":"19:30","jam_selesai":"21:00"},
		"total_hadir": 2,
		"detail_kehadiran": [
			{"nama":"Ahmad","hp":"0812","waktu_presensi":"2025-03-01T12:35:00Z"},
			{"nama":"Budi","hp":"","waktu_presensi":"2025-03-01T12:40:00Z"}
		]
	}`, rec.Body.String())
}

func TestReportHandler_Report_EmptyDetailIsArray(t *testing.T) {
	svc := &stubReportService{report: &ports.AttendanceReport{Kajian: &domain.Kajian{ID: "k1"}}}
	handler := NewReportHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/laporan/k1", "")
	require.NoError(t, handler.Report(c))

	assert.Contains(t, rec.Body.String(), `"detail_kehadiran":[]`)
	assert.Contains(t, rec.Body.String(), `"total_hadir":0`)
}

func TestReportHandler_Report_UnknownKajian(t *testing.T) {
	handler := NewReportHandler(&stubReportService{err: domain.ErrKajianNotFound})

	c, _ := newContext(http.MethodGet, "/api/laporan/nope", "")
	assert.ErrorIs(t, handler.Report(c), domain.ErrKajianNotFound)
}

func TestReportHandler_Export(t *testing.T) {
	content := []byte("\ufeff" + `"No","Nama Jamaah","No HP","Waktu Presensi"`)
	svc := &stubReportService{export: &ports.CSVExport{
		Filename: "presensi_Tafsir_2025-03-01.csv",
		Content:  content,
	}}
	handler := NewReportHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/laporan/k1/export", "")
	require.NoError(t, handler.Export(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `attachment; filename=presensi_Tafsir_2025-03-01.csv`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, content, rec.Body.Bytes())
}

func TestReportHandler_Export_QuotesFilenameWithSpaces(t *testing.T) {
	svc := &stubReportService{export: &ports.CSVExport{Filename: "presensi_Kajian Ahad_2025-03-02.csv"}}
	handler := NewReportHandler(svc)

	c, rec := newContext(http.MethodGet, "/api/laporan/k1/export", "")
	require.NoError(t, handler.Export(c))

	assert.Equal(t, `attachment; filename="presensi_Kajian Ahad_2025-03-02.csv"`, rec.Header().Get(echo.HeaderContentDisposition))
}
