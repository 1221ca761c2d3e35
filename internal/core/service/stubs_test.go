package service

import (
	"context"
	"sort"
	"sync"

	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubAdminRepo struct {
	mu     sync.Mutex
	byID   map[string]*domain.Admin
	order  []string
	errAll error
}

func newStubAdminRepo() *stubAdminRepo {
	return &stubAdminRepo{byID: make(map[string]*domain.Admin)}
}

func (r *stubAdminRepo) Create(_ context.Context, a *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errAll != nil {
		return r.errAll
	}
	for _, existing := range r.byID {
		if existing.Username == a.Username {
			return domain.ErrUsernameTaken
		}
	}
	clone := *a
	r.byID[a.ID] = &clone
	r.order = append(r.order, a.ID)
	return nil
}

func (r *stubAdminRepo) FindByID(_ context.Context, id string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errAll != nil {
		return nil, r.errAll
	}
	for _, a := range r.byID {
		if a.Username == username {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAdminNotFound
}

func (r *stubAdminRepo) List(_ context.Context) ([]*domain.Admin, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Admin, 0, len(r.order))
	for _, id := range r.order {
		if a, ok := r.byID[id]; ok {
			clone := *a
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubAdminRepo) Update(_ context.Context, a *domain.Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[a.ID]; !ok {
		return domain.ErrAdminNotFound
	}
	clone := *a
	r.byID[a.ID] = &clone
	return nil
}

func (r *stubAdminRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrAdminNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubAdminRepo) Count(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errAll != nil {
		return 0, r.errAll
	}
	return int64(len(r.byID)), nil
}

type stubJamaahRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Jamaah
}

func newStubJamaahRepo(seed ...*domain.Jamaah) *stubJamaahRepo {
	r := &stubJamaahRepo{byID: make(map[string]*domain.Jamaah)}
	for _, j := range seed {
		clone := *j
		r.byID[j.ID] = &clone
	}
	return r
}

func (r *stubJamaahRepo) Create(_ context.Context, j *domain.Jamaah) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJamaahRepo) FindByID(_ context.Context, id string) (*domain.Jamaah, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrJamaahNotFound
	}
	clone := *j
	return &clone, nil
}

func (r *stubJamaahRepo) FindByPhone(_ context.Context, phone string) (*domain.Jamaah, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.byID {
		if j.Phone != nil && *j.Phone == phone {
			clone := *j
			return &clone, nil
		}
	}
	return nil, domain.ErrJamaahNotFound
}

func (r *stubJamaahRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Jamaah, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*domain.Jamaah, len(ids))
	for _, id := range ids {
		if j, ok := r.byID[id]; ok {
			clone := *j
			out[id] = &clone
		}
	}
	return out, nil
}

func (r *stubJamaahRepo) List(_ context.Context) ([]*domain.Jamaah, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Jamaah, 0, len(r.byID))
	for _, j := range r.byID {
		clone := *j
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].ID < out[k].ID })
	return out, nil
}

func (r *stubJamaahRepo) Update(_ context.Context, j *domain.Jamaah) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[j.ID]; !ok {
		return domain.ErrJamaahNotFound
	}
	clone := *j
	r.byID[j.ID] = &clone
	return nil
}

func (r *stubJamaahRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrJamaahNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubKajianRepo struct {
	mu   sync.Mutex
	byID map[string]*domain.Kajian
}

func newStubKajianRepo(seed ...*domain.Kajian) *stubKajianRepo {
	r := &stubKajianRepo{byID: make(map[string]*domain.Kajian)}
	for _, k := range seed {
		clone := *k
		r.byID[k.ID] = &clone
	}
	return r
}

func (r *stubKajianRepo) Create(_ context.Context, k *domain.Kajian) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *k
	r.byID[k.ID] = &clone
	return nil
}

func (r *stubKajianRepo) FindByID(_ context.Context, id string) (*domain.Kajian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	k, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrKajianNotFound
	}
	clone := *k
	return &clone, nil
}

func (r *stubKajianRepo) List(_ context.Context) ([]*domain.Kajian, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*domain.Kajian, 0, len(r.byID))
	for _, k := range r.byID {
		clone := *k
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubKajianRepo) Update(_ context.Context, k *domain.Kajian) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[k.ID]; !ok {
		return domain.ErrKajianNotFound
	}
	clone := *k
	r.byID[k.ID] = &clone
	return nil
}

func (r *stubKajianRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrKajianNotFound
	}
	delete(r.byID, id)
	return nil
}

// stubPresensiRepo mirrors the unique (id_jamaah, id_kajian) index of the real
// collection when unique is true.
type stubPresensiRepo struct {
	mu        sync.Mutex
	records   []*domain.Presensi
	unique    bool
	insertErr error
	findErr   error
}

func newStubPresensiRepo() *stubPresensiRepo {
	return &stubPresensiRepo{unique: true}
}

func (r *stubPresensiRepo) Insert(_ context.Context, p *domain.Presensi) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.insertErr != nil {
		return r.insertErr
	}
	if r.unique {
		for _, existing := range r.records {
			if existing.JamaahID == p.JamaahID && existing.KajianID == p.KajianID {
				return domain.ErrAlreadyRecorded
			}
		}
	}
	clone := *p
	r.records = append(r.records, &clone)
	return nil
}

func (r *stubPresensiRepo) FindByPair(_ context.Context, jamaahID, kajianID string) (*domain.Presensi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, p := range r.records {
		if p.JamaahID == jamaahID && p.KajianID == kajianID {
			clone := *p
			return &clone, nil
		}
	}
	return nil, domain.ErrPresensiNotFound
}

func (r *stubPresensiRepo) ListByKajian(_ context.Context, kajianID string) ([]*domain.Presensi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Presensi
	for _, p := range r.records {
		if p.KajianID == kajianID {
			clone := *p
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubPresensiRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func strPtr(s string) *string { return &s }
