package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
	"github.com/kajianrh/presensi-api/internal/infrastructure/queue"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

// keyedGuard serializes calls per key with one mutex per key.
type keyedGuard struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
	calls int
}

func newKeyedGuard() *keyedGuard { return &keyedGuard{locks: make(map[string]*sync.Mutex)} }

func (g *keyedGuard) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	g.mu.Lock()
	l, ok := g.locks[key]
	if !ok {
		l = &sync.Mutex{}
		g.locks[key] = l
	}
	g.calls++
	g.mu.Unlock()

	l.Lock()
	defer l.Unlock()
	return fn(ctx)
}

type brokenGuard struct{}

func (brokenGuard) Do(context.Context, string, func(context.Context) error) error {
	return fmt.Errorf("redis: connection refused: %w", ports.ErrGuardUnavailable)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

const testDay = "2025-03-14"

func localTime(date string, hour, minute int) time.Time {
	d, _ := time.ParseInLocation(domain.DateLayout, date, time.Local)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, time.Local)
}

type gateFixture struct {
	svc      ports.PresensiService
	presensi *stubPresensiRepo
	guard    *keyedGuard
}

func newGate(now time.Time) gateFixture {
	kajian := newStubKajianRepo(&domain.Kajian{
		ID: "k1", Judul: "Kajian Subuh", Tanggal: testDay, JamMulai: "05:00", JamSelesai: "06:00",
	})
	jamaah := newStubJamaahRepo(&domain.Jamaah{ID: "j1", Nama: "Budi", Phone: strPtr("0812000111")})
	presensi := newStubPresensiRepo()
	guard := newKeyedGuard()
	return gateFixture{
		svc:      NewPresensiService(kajian, jamaah, presensi, guard, fixedClock{now}, discardLogger),
		presensi: presensi,
		guard:    guard,
	}
}

func submit(t *testing.T, svc ports.PresensiService, jamaahID, kajianID string) *ports.PresensiResult {
	t.Helper()
	res, err := svc.Submit(context.Background(), ports.SubmitPresensiInput{JamaahID: jamaahID, KajianID: kajianID})
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	return res
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestPresensiService_Submit_Success(t *testing.T) {
	f := newGate(localTime(testDay, 7, 15))

	res := submit(t, f.svc, "j1", "k1")
	if !res.Accepted {
		t.Fatalf("expected accepted, got %+v", res)
	}
	if res.JamaahName != "Budi" || res.KajianTitle != "Kajian Subuh" {
		t.Fatalf("unexpected confirmation payload: %+v", res)
	}
	if res.Reason != domain.ReasonNone || res.Message == "" {
		t.Fatalf("unexpected reason/message: %+v", res)
	}
	if f.presensi.count() != 1 {
		t.Fatalf("expected 1 record, got %d", f.presensi.count())
	}

	rec := f.presensi.records[0]
	if rec.JamaahID != "j1" || rec.KajianID != "k1" || rec.ID == "" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.RecordedAt.Location() != time.UTC {
		t.Fatalf("expected UTC recorded-at, got %v", rec.RecordedAt.Location())
	}
	if f.guard.calls != 1 {
		t.Fatalf("expected admission to run through the guard once, got %d", f.guard.calls)
	}
}

func TestPresensiService_Submit_SecondAttemptAlreadyRecorded(t *testing.T) {
	f := newGate(localTime(testDay, 7, 15))

	submit(t, f.svc, "j1", "k1")
	res := submit(t, f.svc, "j1", "k1")
	if res.Accepted || res.Reason != domain.ReasonAlreadyRecorded {
		t.Fatalf("expected already_recorded, got %+v", res)
	}
	if f.presensi.count() != 1 {
		t.Fatalf("expected no additional record, got %d", f.presensi.count())
	}
}

func TestPresensiService_Submit_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		now      time.Time
		jamaahID string
		kajianID string
		reason   domain.RejectReason
		message  string
	}{
		{"unknown kajian", localTime(testDay, 8, 0), "j1", "nope", domain.ReasonKajianNotFound, msgKajianNotFound},
		{"unknown jamaah", localTime(testDay, 8, 0), "nope", "k1", domain.ReasonJamaahNotFound, msgJamaahNotFound},
		{"kajian checked before jamaah", localTime(testDay, 8, 0), "nope", "nope", domain.ReasonKajianNotFound, msgKajianNotFound},
		{"day before", localTime("2025-03-13", 8, 0), "j1", "k1", domain.ReasonWindowClosed, msgWrongDay},
		{"day after", localTime("2025-03-15", 8, 0), "j1", "k1", domain.ReasonWindowClosed, msgWrongDay},
		{"before six", localTime(testDay, 5, 59), "j1", "k1", domain.ReasonWindowClosed, msgOutsideHours},
		{"midnight", localTime(testDay, 0, 1), "j1", "k1", domain.ReasonWindowClosed, msgOutsideHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newGate(tt.now)
			res := submit(t, f.svc, tt.jamaahID, tt.kajianID)
			if res.Accepted {
				t.Fatalf("expected rejection, got %+v", res)
			}
			if res.Reason != tt.reason || res.Message != tt.message {
				t.Fatalf("expected %s/%q, got %s/%q", tt.reason, tt.message, res.Reason, res.Message)
			}
			if res.JamaahName != "" || res.KajianTitle != "" {
				t.Fatalf("rejection must not carry confirmation data: %+v", res)
			}
			if f.presensi.count() != 0 {
				t.Fatalf("rejection must not write, got %d records", f.presensi.count())
			}
		})
	}
}

func TestPresensiService_Submit_LateEveningAccepted(t *testing.T) {
	f := newGate(localTime(testDay, 23, 45))
	if res := submit(t, f.svc, "j1", "k1"); !res.Accepted {
		t.Fatalf("expected accepted at 23:45, got %+v", res)
	}
}

func TestPresensiService_Submit_DuplicateCheckBeforeWindow(t *testing.T) {
	f := newGate(localTime(testDay, 9, 0))
	submit(t, f.svc, "j1", "k1")

	// Same pair on another day still reports the duplicate first.
	late := NewPresensiService(
		newStubKajianRepo(&domain.Kajian{ID: "k1", Judul: "Kajian Subuh", Tanggal: testDay}),
		newStubJamaahRepo(&domain.Jamaah{ID: "j1", Nama: "Budi"}),
		f.presensi, newKeyedGuard(), fixedClock{localTime("2025-03-20", 9, 0)}, discardLogger,
	)
	if res := submit(t, late, "j1", "k1"); res.Reason != domain.ReasonAlreadyRecorded {
		t.Fatalf("expected already_recorded, got %+v", res)
	}
}

func TestPresensiService_Submit_ConcurrentSamePair(t *testing.T) {
	f := newGate(localTime(testDay, 10, 0))
	// Disable the store-level constraint so only the guard protects the pair.
	f.presensi.unique = false

	const attempts = 32
	var wg sync.WaitGroup
	results := make(chan *ports.PresensiResult, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := f.svc.Submit(context.Background(), ports.SubmitPresensiInput{JamaahID: "j1", KajianID: "k1"})
			if err != nil {
				t.Errorf("submit: %v", err)
				return
			}
			results <- res
		}()
	}
	wg.Wait()
	close(results)

	accepted := 0
	for res := range results {
		if res.Accepted {
			accepted++
		} else if res.Reason != domain.ReasonAlreadyRecorded {
			t.Fatalf("unexpected rejection: %+v", res)
		}
	}
	if accepted != 1 || f.presensi.count() != 1 {
		t.Fatalf("expected exactly one accepted check-in, got accepted=%d records=%d", accepted, f.presensi.count())
	}
}

func TestPresensiService_Submit_GuardUnavailableFallsBack(t *testing.T) {
	kajian := newStubKajianRepo(&domain.Kajian{ID: "k1", Judul: "Kajian Subuh", Tanggal: testDay})
	jamaah := newStubJamaahRepo(&domain.Jamaah{ID: "j1", Nama: "Budi"})
	presensi := newStubPresensiRepo()
	svc := NewPresensiService(kajian, jamaah, presensi, brokenGuard{}, fixedClock{localTime(testDay, 9, 0)}, discardLogger)

	if res := submit(t, svc, "j1", "k1"); !res.Accepted {
		t.Fatalf("expected accepted without guard, got %+v", res)
	}
	if res := submit(t, svc, "j1", "k1"); res.Reason != domain.ReasonAlreadyRecorded {
		t.Fatalf("expected already_recorded, got %+v", res)
	}
}

func TestPresensiService_Submit_UniqueIndexViolationIsAlreadyRecorded(t *testing.T) {
	f := newGate(localTime(testDay, 9, 0))
	f.presensi.insertErr = domain.ErrAlreadyRecorded

	res := submit(t, f.svc, "j1", "k1")
	if res.Accepted || res.Reason != domain.ReasonAlreadyRecorded {
		t.Fatalf("expected already_recorded, got %+v", res)
	}
}

func TestPresensiService_Submit_StoreFailureIsError(t *testing.T) {
	f := newGate(localTime(testDay, 9, 0))
	f.presensi.findErr = errors.New("mongo: timeout")

	_, err := f.svc.Submit(context.Background(), ports.SubmitPresensiInput{JamaahID: "j1", KajianID: "k1"})
	if err == nil {
		t.Fatalf("expected error for store failure")
	}
	if f.presensi.count() != 0 {
		t.Fatalf("expected no write")
	}
}

func TestPresensiService_Submit_DefaultClock(t *testing.T) {
	svc := NewPresensiService(newStubKajianRepo(), newStubJamaahRepo(), newStubPresensiRepo(), newKeyedGuard(), nil, discardLogger)
	if _, ok := svc.(*presensiService).clock.(systemClock); !ok {
		t.Fatalf("expected system clock by default")
	}
}

// stoppingPresensiRepo stops the serializer right after the record is written.
type stoppingPresensiRepo struct {
	*stubPresensiRepo
	stop func()
}

func (r *stoppingPresensiRepo) Insert(ctx context.Context, p *domain.Presensi) error {
	if err := r.stubPresensiRepo.Insert(ctx, p); err != nil {
		return err
	}
	r.stop()
	time.Sleep(10 * time.Millisecond)
	return nil
}

func TestPresensiService_Submit_ShutdownAfterInsertStillAccepted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	serializer := queue.NewSerializer(1, discardLogger)
	serializer.Start(ctx)

	kajian := newStubKajianRepo(&domain.Kajian{
		ID: "k1", Judul: "Kajian Subuh", Tanggal: testDay, JamMulai: "05:00", JamSelesai: "06:00",
	})
	jamaah := newStubJamaahRepo(&domain.Jamaah{ID: "j1", Nama: "Budi"})
	presensi := &stoppingPresensiRepo{stubPresensiRepo: newStubPresensiRepo(), stop: cancel}
	svc := NewPresensiService(kajian, jamaah, presensi, serializer, fixedClock{localTime(testDay, 7, 15)}, discardLogger)

	res := submit(t, svc, "j1", "k1")
	if !res.Accepted {
		t.Fatalf("expected the saved check-in to be accepted, got %+v", res)
	}
	if presensi.count() != 1 {
		t.Fatalf("expected 1 record, got %d", presensi.count())
	}
}
