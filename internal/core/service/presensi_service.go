package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

const (
	msgAccepted        = "✅ Presensi berhasil, semoga bermanfaat ilmunya."
	msgKajianNotFound  = "Kajian tidak ditemukan"
	msgJamaahNotFound  = "Jamaah tidak ditemukan"
	msgAlreadyRecorded = "⚠️ Anda sudah presensi untuk kajian ini."
	msgWrongDay        = "⏰ Presensi hanya dapat dilakukan pada hari kajian."
	msgOutsideHours    = "⏰ Waktu presensi sudah berakhir."
)

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

type presensiService struct {
	kajianRepo   ports.KajianRepository
	jamaahRepo   ports.JamaahRepository
	presensiRepo ports.PresensiRepository
	guard        ports.AdmissionGuard
	clock        ports.Clock
	log          zerolog.Logger
}

// NewPresensiService returns the admission gate. A nil clock uses the server's
// local time.
func NewPresensiService(
	kajianRepo ports.KajianRepository,
	jamaahRepo ports.JamaahRepository,
	presensiRepo ports.PresensiRepository,
	guard ports.AdmissionGuard,
	clock ports.Clock,
	log zerolog.Logger,
) ports.PresensiService {
	if clock == nil {
		clock = systemClock{}
	}
	return &presensiService{
		kajianRepo:   kajianRepo,
		jamaahRepo:   jamaahRepo,
		presensiRepo: presensiRepo,
		guard:        guard,
		clock:        clock,
		log:          log,
	}
}

// Submit decides whether a check-in may be recorded and records it.
func (s *presensiService) Submit(ctx context.Context, in ports.SubmitPresensiInput) (*ports.PresensiResult, error) {
	// 1. Kajian must exist.
	kajian, err := s.kajianRepo.FindByID(ctx, in.KajianID)
	if err != nil {
		return s.rejection(in, err)
	}

	// 2. Jamaah must exist.
	jamaah, err := s.jamaahRepo.FindByID(ctx, in.JamaahID)
	if err != nil {
		return s.rejection(in, err)
	}

	// 3-6. Duplicate check, window check and insert run in the pair's
	// critical section.
	admit := func(ctx context.Context) error { return s.admit(ctx, jamaah, kajian) }
	err = s.guard.Do(ctx, domain.PairKey(jamaah.ID, kajian.ID), admit)
	if errors.Is(err, ports.ErrGuardUnavailable) {
		s.log.Warn().Err(err).
			Str("jamaah_id", jamaah.ID).
			Str("kajian_id", kajian.ID).
			Msg("admission guard failed, relying on unique index")
		err = admit(ctx)
	}
	if err != nil {
		return s.rejection(in, err)
	}

	s.log.Info().
		Str("jamaah_id", jamaah.ID).
		Str("kajian_id", kajian.ID).
		Msg("presensi recorded")

	return &ports.PresensiResult{
		Accepted:    true,
		Message:     msgAccepted,
		JamaahName:  jamaah.Nama,
		KajianTitle: kajian.Judul,
	}, nil
}

func (s *presensiService) admit(ctx context.Context, jamaah *domain.Jamaah, kajian *domain.Kajian) error {
	_, err := s.presensiRepo.FindByPair(ctx, jamaah.ID, kajian.ID)
	switch {
	case err == nil:
		return domain.ErrAlreadyRecorded
	case !errors.Is(err, domain.ErrPresensiNotFound):
		return fmt.Errorf("find presensi: %w", err)
	}

	now := s.clock.Now()
	if err := kajian.AdmitsAt(now); err != nil {
		return err
	}

	p := &domain.Presensi{
		ID:         uuid.NewString(),
		JamaahID:   jamaah.ID,
		KajianID:   kajian.ID,
		RecordedAt: now.UTC(),
	}
	if err := s.presensiRepo.Insert(ctx, p); err != nil {
		if errors.Is(err, domain.ErrAlreadyRecorded) {
			return err
		}
		return fmt.Errorf("insert presensi: %w", err)
	}
	return nil
}

// rejection turns an expected business error into a negative result and
// passes anything else through as an error.
func (s *presensiService) rejection(in ports.SubmitPresensiInput, err error) (*ports.PresensiResult, error) {
	var reason domain.RejectReason
	var msg string
	switch {
	case errors.Is(err, domain.ErrKajianNotFound):
		reason, msg = domain.ReasonKajianNotFound, msgKajianNotFound
	case errors.Is(err, domain.ErrJamaahNotFound):
		reason, msg = domain.ReasonJamaahNotFound, msgJamaahNotFound
	case errors.Is(err, domain.ErrAlreadyRecorded):
		reason, msg = domain.ReasonAlreadyRecorded, msgAlreadyRecorded
	case errors.Is(err, domain.ErrWrongDay):
		reason, msg = domain.ReasonWindowClosed, msgWrongDay
	case errors.Is(err, domain.ErrOutsideHours):
		reason, msg = domain.ReasonWindowClosed, msgOutsideHours
	default:
		return nil, fmt.Errorf("submit presensi: %w", err)
	}

	s.log.Debug().
		Str("jamaah_id", in.JamaahID).
		Str("kajian_id", in.KajianID).
		Str("reason", string(reason)).
		Msg("presensi rejected")

	return &ports.PresensiResult{Reason: reason, Message: msg}, nil
}
