package recommendations

import (
	"strings"
	"time"
	"unicode"

	"compliance-backend/internal/certificates"
	"compliance-backend/internal/trainings"
	"compliance-backend/internal/workforce"
)

// Priority of a recommendation, highest first in output ordering.
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// Type identifies the compliance signal a recommendation came from.
type Type string

const (
	TypeTrainingRequired      Type = "training_required"
	TypeCertificationExpiring Type = "certification_expiring"
	TypeComplianceGap         Type = "compliance_gap"
	TypeProactiveTraining     Type = "proactive_training"
	TypeRiskMitigation        Type = "risk_mitigation"
)

// Recommendation is a single prioritized compliance action. IDs are
// deterministic: the same snapshot always yields the same identifier set.
type Recommendation struct {
	ID                  string     `json:"id"`
	Type                Type       `json:"type"`
	Priority            Priority   `json:"priority"`
	EmployeeName        string     `json:"employeeName,omitempty"`
	Department          string     `json:"department,omitempty"`
	Title               string     `json:"title"`
	Description         string     `json:"description"`
	Action              string     `json:"action"`
	DueDate             *time.Time `json:"dueDate,omitempty"`
	EstimatedTime       string     `json:"estimatedTime,omitempty"`
	Standards           []string   `json:"standards,omitempty"`
	ImpactTags          []string   `json:"impactTags,omitempty"`
	RecommendedTraining []string   `json:"recommendedTraining,omitempty"`
	Insight             string     `json:"insight,omitempty"`
	CreatedAt           time.Time  `json:"createdAt"`
}

// Snapshot is the complete record set for one organization, fetched once per
// invocation. Every generator operates over the same snapshot; partial data
// is never evaluated.
type Snapshot struct {
	OrganizationID string
	Members        []workforce.Member
	Certificates   []certificates.Certificate
	Sessions       []trainings.Session
	Documents      []trainings.ProcessedDocument
}

func priorityRank(p Priority) int {
	switch p {
	case PriorityCritical:
		return 4
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// priorityFromCriticality maps a catalog criticality onto a recommendation
// priority. Unknown values default to medium.
func priorityFromCriticality(criticality string) Priority {
	switch strings.ToLower(strings.TrimSpace(criticality)) {
	case "critical":
		return PriorityCritical
	case "high":
		return PriorityHigh
	case "low":
		return PriorityLow
	default:
		return PriorityMedium
	}
}

func slugify(input string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	out := strings.Trim(b.String(), "-")
	if out == "" {
		return "item"
	}
	return out
}
