package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

type KajianRepository interface {
	Create(ctx context.Context, k *domain.Kajian) error
	FindByID(ctx context.Context, id string) (*domain.Kajian, error)
	List(ctx context.Context) ([]*domain.Kajian, error)
	Update(ctx context.Context, k *domain.Kajian) error
	Delete(ctx context.Context, id string) error
}
