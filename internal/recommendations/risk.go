package recommendations

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"compliance-backend/internal/certificates"
	"compliance-backend/internal/workforce"
)

// Risk scoring heuristics. The weights and thresholds are calibration
// constants, not derived quantities; adjust here, nowhere else.
const (
	coverageWeight  = 0.3
	expiringWeight  = 0.3
	stalenessWeight = 0.4

	coverageThreshold      = 0.8
	expiringRatioThreshold = 0.2

	expiringRiskWindow = 60 * 24 * time.Hour
	stalenessWindow    = 90 * 24 * time.Hour

	riskRecommendThreshold = 0.7
	riskCriticalThreshold  = 0.9
)

// Triggered-issue labels, reported in fixed order: coverage, expiring, staleness.
const (
	issueLowCoverage      = "low certification coverage"
	issueExpiringCluster  = "multiple expiring certificates"
	issueNoRecentActivity = "no recent training activity"
)

type departmentRisk struct {
	department string
	score      float64
	issues     []string
}

// fromDepartmentRisk scores each department on coverage, expiring-certificate
// ratio, and training recency, and emits one risk_mitigation recommendation
// per department whose additive score exceeds the threshold.
func fromDepartmentRisk(members []workforce.Member, certs []certificates.Certificate, now time.Time) []Recommendation {
	var out []Recommendation
	for _, risk := range scoreDepartments(members, certs, now) {
		if risk.score <= riskRecommendThreshold {
			continue
		}
		priority := PriorityHigh
		if risk.score > riskCriticalThreshold {
			priority = PriorityCritical
		}
		due := now.AddDate(0, 0, 30)
		out = append(out, Recommendation{
			ID:         "risk-" + slugify(risk.department),
			Type:       TypeRiskMitigation,
			Priority:   priority,
			Department: risk.department,
			Title:      fmt.Sprintf("Mitigate compliance risk in %s", risk.department),
			Description: fmt.Sprintf("The %s department has a compliance risk score of %.1f: %s.",
				risk.department, risk.score, strings.Join(risk.issues, ", ")),
			Action:        fmt.Sprintf("Review certification coverage and schedule training for the %s department", risk.department),
			DueDate:       &due,
			EstimatedTime: "1-2 weeks",
			ImpactTags:    []string{"regulatory_risk", "incident_risk"},
			CreatedAt:     now,
		})
	}
	return out
}

// scoreDepartments computes the additive risk score per department, capped at
// 1.0, with triggered issues in fixed order. Departments are returned in name
// order for deterministic output.
func scoreDepartments(members []workforce.Member, certs []certificates.Certificate, now time.Time) []departmentRisk {
	byDept := membersByDepartment(members)
	certsByHolder := certificatesByHolder(certs)

	departments := make([]string, 0, len(byDept))
	for dept := range byDept {
		departments = append(departments, dept)
	}
	sort.Strings(departments)

	out := make([]departmentRisk, 0, len(departments))
	for _, dept := range departments {
		deptMembers := byDept[dept]

		var deptCerts []certificates.Certificate
		certified := 0
		for _, m := range deptMembers {
			held := certsByHolder[m.FullName]
			deptCerts = append(deptCerts, held...)
			for _, cert := range held {
				if certificates.IsActive(cert, now) {
					certified++
					break
				}
			}
		}

		risk := departmentRisk{department: dept}

		coverage := float64(certified) / float64(len(deptMembers))
		if coverage < coverageThreshold {
			risk.score += coverageWeight
			risk.issues = append(risk.issues, issueLowCoverage)
		}

		if len(deptCerts) > 0 {
			expiring := 0
			for _, cert := range deptCerts {
				if isExpiringWithin(cert, now, expiringRiskWindow) {
					expiring++
				}
			}
			if float64(expiring)/float64(len(deptCerts)) > expiringRatioThreshold {
				risk.score += expiringWeight
				risk.issues = append(risk.issues, issueExpiringCluster)
			}

			recent := false
			for _, cert := range deptCerts {
				if cert.CreatedAt.After(now.Add(-stalenessWindow)) {
					recent = true
					break
				}
			}
			if !recent {
				risk.score += stalenessWeight
				risk.issues = append(risk.issues, issueNoRecentActivity)
			}
		}

		if risk.score > 1.0 {
			risk.score = 1.0
		}
		out = append(out, risk)
	}
	return out
}

func isExpiringWithin(cert certificates.Certificate, now time.Time, window time.Duration) bool {
	if cert.ExpirationDate == nil {
		return false
	}
	exp := *cert.ExpirationDate
	return exp.After(now) && !exp.After(now.Add(window))
}

func membersByDepartment(members []workforce.Member) map[string][]workforce.Member {
	byDept := make(map[string][]workforce.Member)
	for _, m := range members {
		dept := strings.TrimSpace(m.Department)
		if dept == "" {
			continue
		}
		byDept[dept] = append(byDept[dept], m)
	}
	return byDept
}

func certificatesByHolder(certs []certificates.Certificate) map[string][]certificates.Certificate {
	byHolder := make(map[string][]certificates.Certificate)
	for _, cert := range certs {
		byHolder[cert.HolderName] = append(byHolder[cert.HolderName], cert)
	}
	return byHolder
}
