package ports

import (
	"context"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.Admin, error)
	// Authenticate validates a bearer token and resolves the admin it names.
	Authenticate(ctx context.Context, token string) (*domain.Admin, error)
}
