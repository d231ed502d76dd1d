package trainings

import "context"

// SessionsRepo defines persistence operations for training sessions.
type SessionsRepo interface {
	Create(ctx context.Context, session Session) error
	ListByOrganization(ctx context.Context, organizationID string) ([]Session, error)
}

// ProcessedDocsRepo defines persistence operations for processed training documents.
type ProcessedDocsRepo interface {
	Create(ctx context.Context, doc ProcessedDocument) error
	ListByOrganization(ctx context.Context, organizationID string) ([]ProcessedDocument, error)
}
