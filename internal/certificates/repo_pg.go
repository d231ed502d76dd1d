package certificates

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new certificate.
func (r *PGRepo) Create(ctx context.Context, cert Certificate) error {
	const query = `
INSERT INTO certificates (
    id,
    organization_id,
    holder_name,
    certification_type,
    issue_date,
    expiration_date,
    status,
    standards,
    created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	status := cert.Status
	if status == "" {
		status = StatusActive
	}

	standards := cert.Standards
	if standards == nil {
		standards = []string{}
	}
	standardsJSON, err := json.Marshal(standards)
	if err != nil {
		return fmt.Errorf("marshal standards: %w", err)
	}

	var issueDate sql.NullTime
	if cert.IssueDate != nil {
		issueDate = sql.NullTime{Time: *cert.IssueDate, Valid: true}
	}
	var expirationDate sql.NullTime
	if cert.ExpirationDate != nil {
		expirationDate = sql.NullTime{Time: *cert.ExpirationDate, Valid: true}
	}

	_, err = r.DB.ExecContext(
		ctx,
		query,
		cert.ID,
		cert.OrganizationID,
		cert.HolderName,
		cert.CertificationType,
		issueDate,
		expirationDate,
		status,
		standardsJSON,
		cert.CreatedAt,
	)
	return err
}

// ListByOrganization returns all certificates belonging to an organization.
func (r *PGRepo) ListByOrganization(ctx context.Context, organizationID string) ([]Certificate, error) {
	const query = `
SELECT id, organization_id, holder_name, certification_type, issue_date, expiration_date, status, standards, created_at
FROM certificates
WHERE organization_id = $1
ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Certificate
	for rows.Next() {
		var cert Certificate
		var issueDate sql.NullTime
		var expirationDate sql.NullTime
		var standardsJSON []byte
		if err := rows.Scan(
			&cert.ID,
			&cert.OrganizationID,
			&cert.HolderName,
			&cert.CertificationType,
			&issueDate,
			&expirationDate,
			&cert.Status,
			&standardsJSON,
			&cert.CreatedAt,
		); err != nil {
			return nil, err
		}
		if issueDate.Valid {
			cert.IssueDate = &issueDate.Time
		}
		if expirationDate.Valid {
			cert.ExpirationDate = &expirationDate.Time
		}
		if len(standardsJSON) > 0 {
			if err := json.Unmarshal(standardsJSON, &cert.Standards); err != nil {
				return nil, fmt.Errorf("unmarshal standards for certificate %s: %w", cert.ID, err)
			}
		}
		out = append(out, cert)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
