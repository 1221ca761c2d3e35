package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

type JamaahRepository interface {
	Create(ctx context.Context, j *domain.Jamaah) error
	FindByID(ctx context.Context, id string) (*domain.Jamaah, error)
	FindByPhone(ctx context.Context, phone string) (*domain.Jamaah, error)
	// FindByIDs returns the jamaah that still exist, keyed by id.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Jamaah, error)
	List(ctx context.Context) ([]*domain.Jamaah, error)
	Update(ctx context.Context, j *domain.Jamaah) error
	Delete(ctx context.Context, id string) error
}
