package handler

import (
	"time"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Detail string `json:"detail"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// --- Auth ---

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	Admin       adminResponse `json:"admin"`
}

// --- Admin ---

type adminRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required,min=1"`
}

type adminResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// --- Jamaah ---

type jamaahRequest struct {
	Nama string  `json:"nama" validate:"required"`
	HP   *string `json:"hp"`
}

// --- Kajian ---

type kajianRequest struct {
	Judul      string `json:"judul"       validate:"required"`
	Tanggal    string `json:"tanggal"     validate:"required,datetime=2006-01-02"`
	JamMulai   string `json:"jam_mulai"   validate:"required,datetime=15:04"`
	JamSelesai string `json:"jam_selesai" validate:"required,datetime=15:04"`
}

// --- Presensi ---

type presensiRequest struct {
	IDJamaah string `json:"id_jamaah" validate:"required"`
	IDKajian string `json:"id_kajian" validate:"required"`
}

type presensiData struct {
	Jamaah string `json:"jamaah"`
	Kajian string `json:"kajian"`
}

type presensiResponse struct {
	Success bool          `json:"success"`
	Reason  string        `json:"reason,omitempty"`
	Message string        `json:"message"`
	Data    *presensiData `json:"data,omitempty"`
}

// --- Laporan ---

type attendanceRowResponse struct {
	Nama          string    `json:"nama"`
	HP            string    `json:"hp"`
	WaktuPresensi time.Time `json:"waktu_presensi"`
}

type reportResponse struct {
	Kajian          *domain.Kajian          `json:"kajian"`
	TotalHadir      int                     `json:"total_hadir"`
	DetailKehadiran []attendanceRowResponse `json:"detail_kehadiran"`
}
