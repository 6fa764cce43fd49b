package credits

import "errors"

var (
	// ErrInvalidRequest marks client errors: missing required fields or a
	// webhook payload that cannot be resolved to a positive credit amount
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAtomicUnavailable signals that the atomic increment statement
	// cannot run against the current schema and the CAS fallback applies
	ErrAtomicUnavailable = errors.New("atomic increment unavailable")
)
