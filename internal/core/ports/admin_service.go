package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// AdminCredentials carries a username/password pair in clear text.
type AdminCredentials struct {
	Username string
	Password string
}

type AdminService interface {
	List(ctx context.Context) ([]*domain.Admin, error)
	Create(ctx context.Context, in AdminCredentials) (*domain.Admin, error)
	Update(ctx context.Context, id string, in AdminCredentials) (*domain.Admin, error)
	Delete(ctx context.Context, id string) error
}
