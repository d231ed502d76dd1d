package workforce

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a member does not exist.
var ErrNotFound = errors.New("member not found")

// Repo defines persistence operations for workforce members.
type Repo interface {
	Create(ctx context.Context, member Member) error
	ListByOrganization(ctx context.Context, organizationID string) ([]Member, error)
}
