package workforce

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string][]Member // organizationID -> members
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string][]Member),
	}
}

// Create stores a member record.
func (r *MemoryRepo) Create(ctx context.Context, member Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if member.Status == "" {
		member.Status = StatusActive
	}
	r.data[member.OrganizationID] = append(r.data[member.OrganizationID], member)
	return nil
}

// ListByOrganization returns all members belonging to an organization.
func (r *MemoryRepo) ListByOrganization(ctx context.Context, organizationID string) ([]Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	members := r.data[organizationID]
	r.mu.RUnlock()

	out := make([]Member, len(members))
	copy(out, members)
	sort.Slice(out, func(i, j int) bool {
		if out[i].FullName != out[j].FullName {
			return out[i].FullName < out[j].FullName
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
