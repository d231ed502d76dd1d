package recommendations

import "errors"

var (
	// ErrInvalidInput is returned when the organization ID is missing.
	ErrInvalidInput = errors.New("organization id is required")
	// ErrSnapshotUnavailable is returned when any record fetch fails; the
	// engine never evaluates a partial snapshot.
	ErrSnapshotUnavailable = errors.New("record snapshot unavailable")
)
