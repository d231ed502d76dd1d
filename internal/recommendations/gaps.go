package recommendations

import (
	"fmt"
	"strings"
	"time"

	"compliance-backend/internal/catalog"
	"compliance-backend/internal/certificates"
	"compliance-backend/internal/workforce"
)

// fromMissingRequirements cross-references each active member's active
// certifications against the department requirement catalog and emits one
// training_required recommendation per (member, missing requirement) pair.
// Departments absent from the catalog are skipped.
func fromMissingRequirements(members []workforce.Member, certs []certificates.Certificate, cat catalog.Catalog, now time.Time) []Recommendation {
	held := activeTypesByHolder(certs, now)

	var out []Recommendation
	for _, member := range members {
		if !member.IsActive() {
			continue
		}
		reqs, ok := cat.RequirementsFor(member.Department)
		if !ok {
			continue
		}
		memberHeld := held[member.FullName]
		for _, req := range reqs {
			if _, has := memberHeld[normalizeCertType(req.CertificationName)]; has {
				continue
			}
			due := now.AddDate(0, 0, req.GracePeriodDays)
			out = append(out, Recommendation{
				ID:           "gap-" + slugify(member.FullName) + "-" + slugify(req.CertificationName),
				Type:         TypeTrainingRequired,
				Priority:     priorityFromCriticality(req.Criticality),
				EmployeeName: member.FullName,
				Department:   member.Department,
				Title:        fmt.Sprintf("%s training required for %s", req.CertificationName, member.FullName),
				Description: fmt.Sprintf("%s (%s) has no active %s certification, which the department requires.",
					member.FullName, member.Department, req.CertificationName),
				Action:              fmt.Sprintf("Enroll %s in %s training", member.FullName, req.CertificationName),
				DueDate:             &due,
				EstimatedTime:       req.Duration,
				Standards:           append([]string(nil), req.Standards...),
				ImpactTags:          []string{"regulatory_risk", "training_cost"},
				RecommendedTraining: []string{req.CertificationName},
				CreatedAt:           now,
			})
		}
	}
	return out
}

// activeTypesByHolder indexes active (status active, not expired) certification
// types by holder name. Certificates join to members by full-name equality;
// two members sharing a name are conflated (see DESIGN.md).
func activeTypesByHolder(certs []certificates.Certificate, now time.Time) map[string]map[string]struct{} {
	held := make(map[string]map[string]struct{})
	for _, cert := range certs {
		if !certificates.IsActive(cert, now) {
			continue
		}
		types, ok := held[cert.HolderName]
		if !ok {
			types = make(map[string]struct{})
			held[cert.HolderName] = types
		}
		types[normalizeCertType(cert.CertificationType)] = struct{}{}
	}
	return held
}

func normalizeCertType(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
