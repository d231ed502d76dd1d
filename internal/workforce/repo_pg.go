package workforce

import (
	"context"
	"database/sql"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new workforce member.
func (r *PGRepo) Create(ctx context.Context, member Member) error {
	const query = `
INSERT INTO workforce_members (id, organization_id, full_name, department, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	status := member.Status
	if status == "" {
		status = StatusActive
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		member.ID,
		member.OrganizationID,
		member.FullName,
		member.Department,
		status,
		member.CreatedAt,
	)
	return err
}

// ListByOrganization returns all members belonging to an organization.
func (r *PGRepo) ListByOrganization(ctx context.Context, organizationID string) ([]Member, error) {
	const query = `
SELECT id, organization_id, full_name, department, status, created_at
FROM workforce_members
WHERE organization_id = $1
ORDER BY full_name, id`

	rows, err := r.DB.QueryContext(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Member
	for rows.Next() {
		var m Member
		var department sql.NullString
		if err := rows.Scan(&m.ID, &m.OrganizationID, &m.FullName, &department, &m.Status, &m.CreatedAt); err != nil {
			return nil, err
		}
		if department.Valid {
			m.Department = department.String
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
