package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

// AdminRepository defines persistence for administrator accounts.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	FindByID(ctx context.Context, id string) (*domain.Admin, error)
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
	List(ctx context.Context) ([]*domain.Admin, error)
	// Update overwrites username and password hash of the admin with admin.ID.
	Update(ctx context.Context, admin *domain.Admin) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}
