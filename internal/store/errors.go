package store

import "errors"

// Error kinds returned by every store operation. Callers match them with
// errors.Is; the wrapped message always names the offending identifier.
// ErrStorage is the only kind worth retrying — the other three are
// caller-input problems.
var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateEntity = errors.New("entity already exists")
	ErrValidation      = errors.New("validation failed")
	ErrStorage         = errors.New("storage failure")
)
