package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// PresensiRepository persists attendance records.
type PresensiRepository interface {
	// Insert stores a new record. It returns domain.ErrAlreadyRecorded when the
	// store already holds a record for the same (jamaah, kajian) pair.
	Insert(ctx context.Context, p *domain.Presensi) error
	FindByPair(ctx context.Context, jamaahID, kajianID string) (*domain.Presensi, error)
	// ListByKajian returns the records of a kajian ordered by recording time.
	ListByKajian(ctx context.Context, kajianID string) ([]*domain.Presensi, error)
}
