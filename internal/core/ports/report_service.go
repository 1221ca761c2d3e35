package ports

import (
	"context"
	"time"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// AttendanceRow is one line of an attendance report.
type AttendanceRow struct {
	Nama       string
	Phone      string
	RecordedAt time.Time
}

// AttendanceReport is the denormalized attendance view of one kajian.
type AttendanceReport struct {
	Kajian *domain.Kajian
	Total  int
	Rows   []AttendanceRow
}

// CSVExport is a rendered report ready to be streamed to the client.
type CSVExport struct {
	Filename string
	Content  []byte
}

type ReportService interface {
	Report(ctx context.Context, kajianID string) (*AttendanceReport, error)
	ExportCSV(ctx context.Context, kajianID string) (*CSVExport, error)
}
