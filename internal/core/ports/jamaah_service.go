package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// JamaahInput is the writable part of a jamaah. A nil or blank Phone means
// the jamaah has no phone number.
type JamaahInput struct {
	Nama  string
	Phone *string
}

type JamaahService interface {
	List(ctx context.Context) ([]*domain.Jamaah, error)
	Create(ctx context.Context, in JamaahInput) (*domain.Jamaah, error)
	Update(ctx context.Context, id string, in JamaahInput) (*domain.Jamaah, error)
	Delete(ctx context.Context, id string) error
}
