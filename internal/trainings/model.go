package trainings

import "time"

// Session is a recorded training session for an organization.
type Session struct {
	ID             string
	OrganizationID string
	TrainingType   string
	SessionDate    *time.Time
	CreatedAt      time.Time
}

// ProcessedDocument is the structured output of the document ingestion
// pipeline: a sign-in sheet or roster that has already been extracted into a
// training-type label and timestamps.
type ProcessedDocument struct {
	ID             string
	OrganizationID string
	TrainingType   string
	ProcessedAt    *time.Time
	CreatedAt      time.Time
}
