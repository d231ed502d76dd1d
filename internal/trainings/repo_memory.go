package trainings

import (
	"context"
	"sort"
	"sync"
)

// MemorySessionsRepo is an in-memory implementation of SessionsRepo.
type MemorySessionsRepo struct {
	mu   sync.RWMutex
	data map[string][]Session
}

// NewMemorySessionsRepo constructs a MemorySessionsRepo.
func NewMemorySessionsRepo() *MemorySessionsRepo {
	return &MemorySessionsRepo{
		data: make(map[string][]Session),
	}
}

// Create stores a training session record.
func (r *MemorySessionsRepo) Create(ctx context.Context, session Session) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[session.OrganizationID] = append(r.data[session.OrganizationID], session)
	return nil
}

// ListByOrganization returns all training sessions for an organization, newest first.
func (r *MemorySessionsRepo) ListByOrganization(ctx context.Context, organizationID string) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	sessions := r.data[organizationID]
	r.mu.RUnlock()

	out := make([]Session, len(sessions))
	copy(out, sessions)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// MemoryProcessedDocsRepo is an in-memory implementation of ProcessedDocsRepo.
type MemoryProcessedDocsRepo struct {
	mu   sync.RWMutex
	data map[string][]ProcessedDocument
}

// NewMemoryProcessedDocsRepo constructs a MemoryProcessedDocsRepo.
func NewMemoryProcessedDocsRepo() *MemoryProcessedDocsRepo {
	return &MemoryProcessedDocsRepo{
		data: make(map[string][]ProcessedDocument),
	}
}

// Create stores a processed document record.
func (r *MemoryProcessedDocsRepo) Create(ctx context.Context, doc ProcessedDocument) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[doc.OrganizationID] = append(r.data[doc.OrganizationID], doc)
	return nil
}

// ListByOrganization returns all processed documents for an organization, newest first.
func (r *MemoryProcessedDocsRepo) ListByOrganization(ctx context.Context, organizationID string) ([]ProcessedDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	docs := r.data[organizationID]
	r.mu.RUnlock()

	out := make([]ProcessedDocument, len(docs))
	copy(out, docs)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

var (
	_ SessionsRepo      = (*MemorySessionsRepo)(nil)
	_ ProcessedDocsRepo = (*MemoryProcessedDocsRepo)(nil)
)
