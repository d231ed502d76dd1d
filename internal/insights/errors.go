package insights

import "errors"

// ErrUnavailable is returned when no narrative provider is configured.
var ErrUnavailable = errors.New("narrative provider unavailable")
