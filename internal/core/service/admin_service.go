package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

type AdminService struct {
	repo   ports.AdminRepository
	logger zerolog.Logger
}

func NewAdminService(repo ports.AdminRepository, logger zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, logger: logger}
}

func (s *AdminService) List(ctx context.Context) ([]*domain.Admin, error) {
	return s.repo.List(ctx)
}

func (s *AdminService) Create(ctx context.Context, in ports.AdminCredentials) (*domain.Admin, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", domain.ErrInvalid)
	}

	if err := s.ensureUsernameFree(ctx, username, ""); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := &domain.Admin{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Str("admin_id", admin.ID).Str("username", admin.Username).Msg("admin created")
	return admin, nil
}

// Update overwrites the username and password of an existing admin.
func (s *AdminService) Update(ctx context.Context, id string, in ports.AdminCredentials) (*domain.Admin, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("username and password are required: %w", domain.ErrInvalid)
	}

	admin, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.ensureUsernameFree(ctx, username, id); err != nil {
		return nil, err
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin.Username = username
	admin.PasswordHash = hash
	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}

	s.logger.Info().Str("admin_id", admin.ID).Str("username", admin.Username).Msg("admin updated")
	return admin, nil
}

func (s *AdminService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("admin_id", id).Msg("admin deleted")
	return nil
}

// SeedDefaults creates the given admins when no admin exists yet. It is run
// once at startup, before the server accepts traffic.
func (s *AdminService) SeedDefaults(ctx context.Context, defaults map[string]string) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if n > 0 {
		s.logger.Debug().Int64("admins", n).Msg("admin collection not empty, skipping seed")
		return nil
	}

	usernames := make([]string, 0, len(defaults))
	for u := range defaults {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	for _, u := range usernames {
		if _, err := s.Create(ctx, ports.AdminCredentials{Username: u, Password: defaults[u]}); err != nil {
			return fmt.Errorf("seed admin %s: %w", u, err)
		}
	}

	s.logger.Info().Int("admins", len(usernames)).Msg("default admins created")
	return nil
}

// ensureUsernameFree fails with ErrUsernameTaken when username belongs to an
// admin other than selfID.
func (s *AdminService) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	existing, err := s.repo.FindByUsername(ctx, username)
	switch {
	case errors.Is(err, domain.ErrAdminNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find admin by username: %w", err)
	case existing.ID != selfID:
		return domain.ErrUsernameTaken
	}
	return nil
}
