package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

type KajianService struct {
	repo   ports.KajianRepository
	logger zerolog.Logger
}

func NewKajianService(repo ports.KajianRepository, logger zerolog.Logger) *KajianService {
	return &KajianService{repo: repo, logger: logger}
}

func (s *KajianService) List(ctx context.Context) ([]*domain.Kajian, error) {
	return s.repo.List(ctx)
}

func (s *KajianService) Get(ctx context.Context, id string) (*domain.Kajian, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *KajianService) Create(ctx context.Context, in ports.KajianInput) (*domain.Kajian, error) {
	k := &domain.Kajian{ID: uuid.NewString()}
	if err := applyKajianInput(k, in); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, k); err != nil {
		return nil, err
	}

	s.logger.Info().Str("kajian_id", k.ID).Str("tanggal", k.Tanggal).Msg("kajian created")
	return k, nil
}

func (s *KajianService) Update(ctx context.Context, id string, in ports.KajianInput) (*domain.Kajian, error) {
	k, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := applyKajianInput(k, in); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, k); err != nil {
		return nil, err
	}

	s.logger.Info().Str("kajian_id", k.ID).Msg("kajian updated")
	return k, nil
}

func (s *KajianService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("kajian_id", id).Msg("kajian deleted")
	return nil
}

// applyKajianInput copies in onto k. Only the shape of the values is checked;
// the end time may precede the start time.
func applyKajianInput(k *domain.Kajian, in ports.KajianInput) error {
	judul := strings.TrimSpace(in.Judul)
	if judul == "" {
		return fmt.Errorf("judul is required: %w", domain.ErrInvalid)
	}

	next := domain.Kajian{
		ID:         k.ID,
		Judul:      judul,
		Tanggal:    strings.TrimSpace(in.Tanggal),
		JamMulai:   strings.TrimSpace(in.JamMulai),
		JamSelesai: strings.TrimSpace(in.JamSelesai),
	}
	if !validDate(next.Tanggal) {
		return fmt.Errorf("tanggal must be YYYY-MM-DD: %w", domain.ErrInvalid)
	}
	if !validClock(next.JamMulai) || !validClock(next.JamSelesai) {
		return fmt.Errorf("jam_mulai and jam_selesai must be HH:MM: %w", domain.ErrInvalid)
	}

	*k = next
	return nil
}

// validDate accepts exactly a calendar date. Kajian.Date stays lenient for
// documents stored before this check existed.
func validDate(s string) bool {
	if len(s) != len(domain.DateLayout) {
		return false
	}
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

func validClock(s string) bool {
	if len(s) != len(domain.ClockLayout) {
		return false
	}
	_, err := time.Parse(domain.ClockLayout, s)
	return err == nil
}
