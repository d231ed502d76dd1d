package certificates

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Certificate // organizationID -> certificates
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Certificate),
	}
}

// Create stores a certificate record.
func (r *MemoryRepo) Create(ctx context.Context, cert Certificate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if cert.Status == "" {
		cert.Status = StatusActive
	}
	r.data[cert.OrganizationID] = append(r.data[cert.OrganizationID], cert)
	return nil
}

// ListByOrganization returns all certificates belonging to an organization, newest first.
func (r *MemoryRepo) ListByOrganization(ctx context.Context, organizationID string) ([]Certificate, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	certs := r.data[organizationID]
	r.mu.RUnlock()

	out := make([]Certificate, len(certs))
	copy(out, certs)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
