package certificates

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a certificate does not exist.
var ErrNotFound = errors.New("certificate not found")

// Repo defines persistence operations for certificates.
type Repo interface {
	Create(ctx context.Context, cert Certificate) error
	ListByOrganization(ctx context.Context, organizationID string) ([]Certificate, error)
}
