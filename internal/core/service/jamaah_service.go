package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

type JamaahService struct {
	repo   ports.JamaahRepository
	logger zerolog.Logger
}

func NewJamaahService(repo ports.JamaahRepository, logger zerolog.Logger) *JamaahService {
	return &JamaahService{repo: repo, logger: logger}
}

func (s *JamaahService) List(ctx context.Context) ([]*domain.Jamaah, error) {
	return s.repo.List(ctx)
}

func (s *JamaahService) Create(ctx context.Context, in ports.JamaahInput) (*domain.Jamaah, error) {
	nama := strings.TrimSpace(in.Nama)
	if nama == "" {
		return nil, fmt.Errorf("nama is required: %w", domain.ErrInvalid)
	}

	phone := domain.NormalizePhone(in.Phone)
	if err := s.ensurePhoneFree(ctx, phone, ""); err != nil {
		return nil, err
	}

	j := &domain.Jamaah{ID: uuid.NewString(), Nama: nama, Phone: phone}
	if err := s.repo.Create(ctx, j); err != nil {
		return nil, err
	}

	s.logger.Info().Str("jamaah_id", j.ID).Msg("jamaah created")
	return j, nil
}

func (s *JamaahService) Update(ctx context.Context, id string, in ports.JamaahInput) (*domain.Jamaah, error) {
	nama := strings.TrimSpace(in.Nama)
	if nama == "" {
		return nil, fmt.Errorf("nama is required: %w", domain.ErrInvalid)
	}

	j, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	phone := domain.NormalizePhone(in.Phone)
	if err := s.ensurePhoneFree(ctx, phone, id); err != nil {
		return nil, err
	}

	j.Nama = nama
	j.Phone = phone
	if err := s.repo.Update(ctx, j); err != nil {
		return nil, err
	}

	s.logger.Info().Str("jamaah_id", j.ID).Msg("jamaah updated")
	return j, nil
}

// Delete removes the jamaah. Attendance records referencing it are kept and
// are skipped by reports.
func (s *JamaahService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("jamaah_id", id).Msg("jamaah deleted")
	return nil
}

func (s *JamaahService) ensurePhoneFree(ctx context.Context, phone *string, selfID string) error {
	if phone == nil {
		return nil
	}
	existing, err := s.repo.FindByPhone(ctx, *phone)
	switch {
	case errors.Is(err, domain.ErrJamaahNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("find jamaah by phone: %w", err)
	case existing.ID != selfID:
		return domain.ErrPhoneTaken
	}
	return nil
}
