package handler

import (
	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

// --- Request → Service input ---

func toAdminCredentials(req adminRequest) ports.AdminCredentials {
	return ports.AdminCredentials{Username: req.Username, Password: req.Password}
}

func toJamaahInput(req jamaahRequest) ports.JamaahInput {
	return ports.JamaahInput{Nama: req.Nama, Phone: req.HP}
}

func toKajianInput(req kajianRequest) ports.KajianInput {
	return ports.KajianInput{
		Judul:      req.Judul,
		Tanggal:    req.Tanggal,
		JamMulai:   req.JamMulai,
		JamSelesai: req.JamSelesai,
	}
}

// --- Service output → Response ---

func toAdminResponse(a *domain.Admin) adminResponse {
	return adminResponse{ID: a.ID, Username: a.Username}
}

func toAdminResponses(admins []*domain.Admin) []adminResponse {
	out := make([]adminResponse, 0, len(admins))
	for _, a := range admins {
		out = append(out, toAdminResponse(a))
	}
	return out
}

func toPresensiResponse(res *ports.PresensiResult) presensiResponse {
	resp := presensiResponse{
		Success: res.Accepted,
		Reason:  string(res.Reason),
		Message: res.Message,
	}
	if res.Accepted {
		resp.Data = &presensiData{Jamaah: res.JamaahName, Kajian: res.KajianTitle}
	}
	return resp
}

func toReportResponse(r *ports.AttendanceReport) reportResponse {
	rows := make([]attendanceRowResponse, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, attendanceRowResponse{
			Nama:          row.Nama,
			HP:            row.Phone,
			WaktuPresensi: row.RecordedAt,
		})
	}
	return reportResponse{
		Kajian:          r.Kajian,
		TotalHadir:      r.Total,
		DetailKehadiran: rows,
	}
}
