package handler

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/kajianrh/presensi-api/internal/core/domain"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

var errStub = errors.New("stub: not configured")

// newContext builds an echo context for a JSON request with the validator installed.
func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, *domain.Admin, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, *domain.Admin, error) {
	if s.loginFn == nil {
		return "", nil, errStub
	}
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Admin, error) {
	return nil, errStub
}

type stubAdminService struct {
	admins  []*domain.Admin
	created ports.AdminCredentials
	err     error
}

func (s *stubAdminService) List(ctx context.Context) ([]*domain.Admin, error) {
	return s.admins, s.err
}

func (s *stubAdminService) Create(ctx context.Context, in ports.AdminCredentials) (*domain.Admin, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Admin{ID: "a-new", Username: in.Username, PasswordHash: "hash"}, nil
}

func (s *stubAdminService) Update(ctx context.Context, id string, in ports.AdminCredentials) (*domain.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Admin{ID: id, Username: in.Username, PasswordHash: "hash"}, nil
}

func (s *stubAdminService) Delete(ctx context.Context, id string) error {
	return s.err
}

type stubJamaahService struct {
	list    []*domain.Jamaah
	created ports.JamaahInput
	err     error
}

func (s *stubJamaahService) List(ctx context.Context) ([]*domain.Jamaah, error) {
	return s.list, s.err
}

func (s *stubJamaahService) Create(ctx context.Context, in ports.JamaahInput) (*domain.Jamaah, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Jamaah{ID: "j-new", Nama: in.Nama, Phone: domain.NormalizePhone(in.Phone)}, nil
}

func (s *stubJamaahService) Update(ctx context.Context, id string, in ports.JamaahInput) (*domain.Jamaah, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Jamaah{ID: id, Nama: in.Nama, Phone: domain.NormalizePhone(in.Phone)}, nil
}

func (s *stubJamaahService) Delete(ctx context.Context, id string) error {
	return s.err
}

type stubKajianService struct {
	kajian  map[string]*domain.Kajian
	created ports.KajianInput
	err     error
}

func (s *stubKajianService) List(ctx context.Context) ([]*domain.Kajian, error) {
	out := make([]*domain.Kajian, 0, len(s.kajian))
	for _, k := range s.kajian {
		out = append(out, k)
	}
	return out, s.err
}

func (s *stubKajianService) Get(ctx context.Context, id string) (*domain.Kajian, error) {
	if s.err != nil {
		return nil, s.err
	}
	k, ok := s.kajian[id]
	if !ok {
		return nil, domain.ErrKajianNotFound
	}
	return k, nil
}

func (s *stubKajianService) Create(ctx context.Context, in ports.KajianInput) (*domain.Kajian, error) {
	s.created = in
	if s.err != nil {
		return nil, s.err
	}
	return &domain.Kajian{ID: "k-new", Judul: in.Judul, Tanggal: in.Tanggal, JamMulai: in.JamMulai, JamSelesai: in.JamSelesai}, nil
}

func (s *stubKajianService) Update(ctx context.Context, id string, in ports.KajianInput) (*domain.Kajian, error) {
	if s.err != nil {
		return nil, s.err
	}
	if _, ok := s.kajian[id]; !ok {
		return nil, domain.ErrKajianNotFound
	}
	return &domain.Kajian{ID: id, Judul: in.Judul, Tanggal: in.Tanggal, JamMulai: in.JamMulai, JamSelesai: in.JamSelesai}, nil
}

func (s *stubKajianService) Delete(ctx context.Context, id string) error {
	if s.err != nil {
		return s.err
	}
	if _, ok := s.kajian[id]; !ok {
		return domain.ErrKajianNotFound
	}
	return nil
}

type stubQRService struct {
	png []byte
	err error
}

func (s *stubQRService) Payload(kajianID string) string {
	return "http://localhost:3000/presensi/" + kajianID
}

func (s *stubQRService) Render(kajianID string) ([]byte, error) {
	return s.png, s.err
}

type stubPresensiService struct {
	submitFn func(ctx context.Context, in ports.SubmitPresensiInput) (*ports.PresensiResult, error)
	calls    int
}

func (s *stubPresensiService) Submit(ctx context.Context, in ports.SubmitPresensiInput) (*ports.PresensiResult, error) {
	s.calls++
	if s.submitFn == nil {
		return nil, errStub
	}
	return s.submitFn(ctx, in)
}

type stubReportService struct {
	report *ports.AttendanceReport
	export *ports.CSVExport
	err    error
}

func (s *stubReportService) Report(ctx context.Context, kajianID string) (*ports.AttendanceReport, error) {
	return s.report, s.err
}

func (s *stubReportService) ExportCSV(ctx context.Context, kajianID string) (*ports.CSVExport, error) {
	return s.export, s.err
}
