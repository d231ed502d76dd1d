package workforce

import "time"

// Employment status values stored on a member record.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// Member represents a workforce member belonging to an organization.
type Member struct {
	ID             string
	OrganizationID string
	FullName       string
	Department     string
	Status         string
	CreatedAt      time.Time
}

// IsActive reports whether the member is currently employed.
func (m Member) IsActive() bool {
	return m.Status == StatusActive
}
