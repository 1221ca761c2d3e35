package ports

import (
	"context"
	"errors"
)

// ErrGuardUnavailable is wrapped by AdmissionGuard implementations when the
// guard itself (not the guarded function) failed.
var ErrGuardUnavailable = errors.New("admission guard unavailable")

// AdmissionGuard runs fn while holding an exclusive section for key. Two calls
// with the same key never run fn concurrently. The error returned by fn is
// passed through unchanged.
type AdmissionGuard interface {
	Do(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
