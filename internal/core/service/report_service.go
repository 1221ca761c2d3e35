package service

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

const utf8BOM = "\ufeff"

var csvHeader = []string{"No", "Nama Jamaah", "No HP", "Waktu Presensi"}

// ReportService projects attendance records of a kajian onto jamaah details.
type ReportService struct {
	kajianRepo   ports.KajianRepository
	jamaahRepo   ports.JamaahRepository
	presensiRepo ports.PresensiRepository
	logger       zerolog.Logger
}

func NewReportService(
	kajianRepo ports.KajianRepository,
	jamaahRepo ports.JamaahRepository,
	presensiRepo ports.PresensiRepository,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		kajianRepo:   kajianRepo,
		jamaahRepo:   jamaahRepo,
		presensiRepo: presensiRepo,
		logger:       logger,
	}
}

// Report returns the attendance of a kajian. Records whose jamaah has been
// deleted are left out.
func (s *ReportService) Report(ctx context.Context, kajianID string) (*ports.AttendanceReport, error) {
	kajian, err := s.kajianRepo.FindByID(ctx, kajianID)
	if err != nil {
		return nil, err
	}

	records, err := s.presensiRepo.ListByKajian(ctx, kajianID)
	if err != nil {
		return nil, fmt.Errorf("list presensi: %w", err)
	}

	ids := make([]string, 0, len(records))
	seen := make(map[string]struct{}, len(records))
	for _, p := range records {
		if _, ok := seen[p.JamaahID]; ok {
			continue
		}
		seen[p.JamaahID] = struct{}{}
		ids = append(ids, p.JamaahID)
	}

	jamaah, err := s.jamaahRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load jamaah: %w", err)
	}

	rows := make([]ports.AttendanceRow, 0, len(records))
	for _, p := range records {
		j, ok := jamaah[p.JamaahID]
		if !ok {
			continue
		}
		rows = append(rows, ports.AttendanceRow{
			Nama:       j.Nama,
			Phone:      j.PhoneOrEmpty(),
			RecordedAt: p.RecordedAt,
		})
	}

	if skipped := len(records) - len(rows); skipped > 0 {
		s.logger.Debug().Str("kajian_id", kajianID).Int("skipped", skipped).Msg("presensi without jamaah skipped")
	}

	return &ports.AttendanceReport{Kajian: kajian, Total: len(rows), Rows: rows}, nil
}

// ExportCSV renders Report as a BOM-prefixed CSV document with every field
// quoted.
func (s *ReportService) ExportCSV(ctx context.Context, kajianID string) (*ports.CSVExport, error) {
	report, err := s.Report(ctx, kajianID)
	if err != nil {
		return nil, err
	}

	return &ports.CSVExport{
		Filename: exportFilename(report.Kajian),
		Content:  renderCSV(report.Rows),
	}, nil
}

func exportFilename(k *domain.Kajian) string {
	return fmt.Sprintf("presensi_%s_%s.csv", k.Judul, k.Tanggal)
}

func renderCSV(rows []ports.AttendanceRow) []byte {
	var b bytes.Buffer
	b.WriteString(utf8BOM)
	writeCSVLine(&b, csvHeader)
	for i, r := range rows {
		b.WriteByte('\n')
		writeCSVLine(&b, []string{
			strconv.Itoa(i + 1),
			r.Nama,
			r.Phone,
			r.RecordedAt.UTC().Format(time.RFC3339Nano),
		})
	}
	return b.Bytes()
}

func writeCSVLine(b *bytes.Buffer, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(f, `"`, `""`))
		b.WriteByte('"')
	}
}
