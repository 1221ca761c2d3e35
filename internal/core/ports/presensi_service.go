package ports

import (
	"context"
	"time"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// SubmitPresensiInput is the DTO passed from the public check-in endpoint.
type SubmitPresensiInput struct {
	JamaahID string
	KajianID string
}

// PresensiResult is the outcome of a check-in attempt. Business rejections are
// reported here with Accepted=false; they are never returned as errors.
type PresensiResult struct {
	Accepted    bool
	Reason      domain.RejectReason
	Message     string
	JamaahName  string
	KajianTitle string
}

// Clock supplies the server's local wall time.
type Clock interface {
	Now() time.Time
}

// PresensiService is the admission gate for check-ins.
type PresensiService interface {
	Submit(ctx context.Context, in SubmitPresensiInput) (*PresensiResult, error)
}
