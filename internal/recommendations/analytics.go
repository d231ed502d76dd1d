package recommendations

import (
	"math"
	"sort"
	"time"

	"compliance-backend/internal/certificates"
	"compliance-backend/internal/workforce"
)

// Analytics score boundaries.
const (
	atRiskScoreCeiling    = 80
	improvingScoreFloor   = 90
	decliningScoreCeiling = 70

	dueSoonWindow = 30 * 24 * time.Hour
)

// Analytics is the organization-wide compliance summary computed from the
// same snapshot as the recommendation list.
type Analytics struct {
	OverallScore         int            `json:"overallScore"`
	DepartmentScores     map[string]int `json:"departmentScores"`
	RiskAreas            []string       `json:"riskAreas"`
	DueSoonCount         int            `json:"dueSoonCount"`
	CriticalCount        int            `json:"criticalCount"`
	TotalRecommendations int            `json:"totalRecommendations"`
	ImprovingDepartments []string       `json:"improvingDepartments"`
	DecliningDepartments []string       `json:"decliningDepartments"`
}

// ComputeAnalytics derives compliance scores and trend buckets. Zero members
// yields a perfect score and an empty department map rather than an error.
func ComputeAnalytics(members []workforce.Member, certs []certificates.Certificate, recs []Recommendation, now time.Time) Analytics {
	held := activeTypesByHolder(certs, now)

	analytics := Analytics{
		OverallScore:         100,
		DepartmentScores:     map[string]int{},
		RiskAreas:            []string{},
		ImprovingDepartments: []string{},
		DecliningDepartments: []string{},
		TotalRecommendations: len(recs),
	}

	if len(members) > 0 {
		certified := 0
		for _, m := range members {
			if len(held[m.FullName]) > 0 {
				certified++
			}
		}
		analytics.OverallScore = roundScore(certified, len(members))

		for dept, deptMembers := range membersByDepartment(members) {
			deptCertified := 0
			for _, m := range deptMembers {
				if len(held[m.FullName]) > 0 {
					deptCertified++
				}
			}
			analytics.DepartmentScores[dept] = roundScore(deptCertified, len(deptMembers))
		}
	}

	for dept, score := range analytics.DepartmentScores {
		if score < atRiskScoreCeiling {
			analytics.RiskAreas = append(analytics.RiskAreas, dept)
		}
		if score >= improvingScoreFloor {
			analytics.ImprovingDepartments = append(analytics.ImprovingDepartments, dept)
		}
		if score < decliningScoreCeiling {
			analytics.DecliningDepartments = append(analytics.DecliningDepartments, dept)
		}
	}
	sort.Strings(analytics.RiskAreas)
	sort.Strings(analytics.ImprovingDepartments)
	sort.Strings(analytics.DecliningDepartments)

	dueSoonCutoff := now.Add(dueSoonWindow)
	for _, rec := range recs {
		if rec.Priority == PriorityCritical {
			analytics.CriticalCount++
		}
		if rec.DueDate != nil && rec.DueDate.After(now) && rec.DueDate.Before(dueSoonCutoff) {
			analytics.DueSoonCount++
		}
	}

	return analytics
}

func roundScore(numerator, denominator int) int {
	if denominator == 0 {
		return 100
	}
	return int(math.Round(100 * float64(numerator) / float64(denominator)))
}
