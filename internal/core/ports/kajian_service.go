package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// KajianInput is the writable part of a kajian.
type KajianInput struct {
	Judul      string
	Tanggal    string
	JamMulai   string
	JamSelesai string
}

type KajianService interface {
	List(ctx context.Context) ([]*domain.Kajian, error)
	Get(ctx context.Context, id string) (*domain.Kajian, error)
	Create(ctx context.Context, in KajianInput) (*domain.Kajian, error)
	Update(ctx context.Context, id string, in KajianInput) (*domain.Kajian, error)
	Delete(ctx context.Context, id string) error
}
