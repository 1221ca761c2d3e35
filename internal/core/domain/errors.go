package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Specific errors below wrap exactly one of these so callers can
// branch on the kind with errors.Is.
var (
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrWindowClosed = errors.New("attendance window closed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalid      = errors.New("invalid input")
)

var (
	ErrAdminNotFound  = fmt.Errorf("admin %w", ErrNotFound)
	ErrJamaahNotFound = fmt.Errorf("jamaah %w", ErrNotFound)
	ErrKajianNotFound = fmt.Errorf("kajian %w", ErrNotFound)
	// ErrPresensiNotFound is returned by lookups of a pair without a record.
	ErrPresensiNotFound = fmt.Errorf("presensi %w", ErrNotFound)

	ErrUsernameTaken   = fmt.Errorf("username already exists: %w", ErrConflict)
	ErrPhoneTaken      = fmt.Errorf("phone number already exists: %w", ErrConflict)
	ErrAlreadyRecorded = fmt.Errorf("attendance already recorded: %w", ErrConflict)

	ErrWrongDay     = fmt.Errorf("kajian is not scheduled today: %w", ErrWindowClosed)
	ErrOutsideHours = fmt.Errorf("outside admission hours: %w", ErrWindowClosed)

	ErrInvalidCredentials = fmt.Errorf("invalid credentials: %w", ErrUnauthorized)
	ErrInvalidToken       = fmt.Errorf("invalid token: %w", ErrUnauthorized)
)
