package certificates

import "time"

// Certificate status values as recorded by the issuance collaborator.
const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusRevoked = "revoked"
)

// Certificate represents an issued certification consumed read-only by the engine.
type Certificate struct {
	ID                string
	OrganizationID    string
	HolderName        string
	CertificationType string
	IssueDate         *time.Time
	ExpirationDate    *time.Time
	Status            string
	Standards         []string
	CreatedAt         time.Time
}
