package trainings

import (
	"context"
	"database/sql"
)

// PGSessionsRepo implements SessionsRepo using Postgres.
type PGSessionsRepo struct {
	DB *sql.DB
}

// Create inserts a new training session.
func (r *PGSessionsRepo) Create(ctx context.Context, session Session) error {
	const query = `
INSERT INTO training_sessions (id, organization_id, training_type, session_date, created_at)
VALUES ($1, $2, $3, $4, $5)`

	var sessionDate sql.NullTime
	if session.SessionDate != nil {
		sessionDate = sql.NullTime{Time: *session.SessionDate, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		session.ID,
		session.OrganizationID,
		session.TrainingType,
		sessionDate,
		session.CreatedAt,
	)
	return err
}

// ListByOrganization returns all training sessions for an organization, newest first.
func (r *PGSessionsRepo) ListByOrganization(ctx context.Context, organizationID string) ([]Session, error) {
	const query = `
SELECT id, organization_id, training_type, session_date, created_at
FROM training_sessions
WHERE organization_id = $1
ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Session
	for rows.Next() {
		var s Session
		var trainingType sql.NullString
		var sessionDate sql.NullTime
		if err := rows.Scan(&s.ID, &s.OrganizationID, &trainingType, &sessionDate, &s.CreatedAt); err != nil {
			return nil, err
		}
		if trainingType.Valid {
			s.TrainingType = trainingType.String
		}
		if sessionDate.Valid {
			s.SessionDate = &sessionDate.Time
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// PGProcessedDocsRepo implements ProcessedDocsRepo using Postgres.
type PGProcessedDocsRepo struct {
	DB *sql.DB
}

// Create inserts a new processed document record.
func (r *PGProcessedDocsRepo) Create(ctx context.Context, doc ProcessedDocument) error {
	const query = `
INSERT INTO processed_documents (id, organization_id, training_type, processed_at, created_at)
VALUES ($1, $2, $3, $4, $5)`

	var processedAt sql.NullTime
	if doc.ProcessedAt != nil {
		processedAt = sql.NullTime{Time: *doc.ProcessedAt, Valid: true}
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		doc.ID,
		doc.OrganizationID,
		doc.TrainingType,
		processedAt,
		doc.CreatedAt,
	)
	return err
}

// ListByOrganization returns all processed documents for an organization, newest first.
func (r *PGProcessedDocsRepo) ListByOrganization(ctx context.Context, organizationID string) ([]ProcessedDocument, error) {
	const query = `
SELECT id, organization_id, training_type, processed_at, created_at
FROM processed_documents
WHERE organization_id = $1
ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ProcessedDocument
	for rows.Next() {
		var d ProcessedDocument
		var trainingType sql.NullString
		var processedAt sql.NullTime
		if err := rows.Scan(&d.ID, &d.OrganizationID, &trainingType, &processedAt, &d.CreatedAt); err != nil {
			return nil, err
		}
		if trainingType.Valid {
			d.TrainingType = trainingType.String
		}
		if processedAt.Valid {
			d.ProcessedAt = &processedAt.Time
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

var (
	_ SessionsRepo      = (*PGSessionsRepo)(nil)
	_ ProcessedDocsRepo = (*PGProcessedDocsRepo)(nil)
)
