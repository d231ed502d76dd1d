package insights

import "context"

// FallbackNarrative is returned whenever the external narrative call fails.
// The narrative is advisory decoration; it never blocks recommendations.
const FallbackNarrative = "Compliance analysis completed. Review the prioritized recommendations below to address certification gaps and upcoming expirations."

// Summary is the compact statistical input handed to the narrative provider.
// It carries counts only, never raw records.
type Summary struct {
	OrganizationID       string   `json:"organizationId"`
	TotalMembers         int      `json:"totalMembers"`
	TotalCertificates    int      `json:"totalCertificates"`
	ExpiredCertificates  int      `json:"expiredCertificates"`
	ExpiringCertificates int      `json:"expiringCertificates"`
	RecommendationCount  int      `json:"recommendationCount"`
	CriticalCount        int      `json:"criticalCount"`
	OverallScore         int      `json:"overallScore"`
	AtRiskDepartments    []string `json:"atRiskDepartments"`
}

// Provider abstracts the external text-generation collaborator.
type Provider interface {
	GenerateNarrative(ctx context.Context, summary Summary) (string, error)
}

// NoopProvider always reports the provider as unavailable. It is the default
// when no LLM is configured and the zero-dependency choice for tests.
type NoopProvider struct{}

// GenerateNarrative returns ErrUnavailable.
func (NoopProvider) GenerateNarrative(ctx context.Context, summary Summary) (string, error) {
	_ = ctx
	_ = summary
	return "", ErrUnavailable
}
