package recommendations

import (
	"fmt"
	"time"

	"compliance-backend/internal/certificates"
)

const dueDateFormat = "Jan 2, 2006"

// fromCertificateExpiry emits one recommendation per certificate that is
// already expired or expires within the 30-day lookahead window. Expired
// certificates are hard compliance gaps; expiring ones are renewal prompts.
func fromCertificateExpiry(certs []certificates.Certificate, now time.Time) []Recommendation {
	var out []Recommendation
	for _, cert := range certs {
		if cert.Status == certificates.StatusRevoked {
			continue
		}
		switch certificates.Classify(cert, now) {
		case certificates.LifecycleExpired:
			due := now
			out = append(out, Recommendation{
				ID:           "expired-" + slugify(cert.HolderName) + "-" + slugify(cert.CertificationType),
				Type:         TypeComplianceGap,
				Priority:     PriorityCritical,
				EmployeeName: cert.HolderName,
				Title:        fmt.Sprintf("Expired: %s for %s", cert.CertificationType, cert.HolderName),
				Description: fmt.Sprintf("%s's %s certification expired on %s and no longer satisfies compliance requirements.",
					cert.HolderName, cert.CertificationType, cert.ExpirationDate.Format(dueDateFormat)),
				Action:        fmt.Sprintf("Schedule %s recertification for %s immediately", cert.CertificationType, cert.HolderName),
				DueDate:       &due,
				EstimatedTime: "4-8 hours",
				Standards:     append([]string(nil), cert.Standards...),
				ImpactTags:    []string{"regulatory_risk", "work_stoppage_risk"},
				CreatedAt:     now,
			})
		case certificates.LifecycleExpiringSoon:
			due := *cert.ExpirationDate
			out = append(out, Recommendation{
				ID:           "expiring-" + slugify(cert.HolderName) + "-" + slugify(cert.CertificationType),
				Type:         TypeCertificationExpiring,
				Priority:     PriorityHigh,
				EmployeeName: cert.HolderName,
				Title:        fmt.Sprintf("Renew %s for %s", cert.CertificationType, cert.HolderName),
				Description: fmt.Sprintf("%s's %s certification expires on %s.",
					cert.HolderName, cert.CertificationType, cert.ExpirationDate.Format(dueDateFormat)),
				Action:        fmt.Sprintf("Book a %s renewal session for %s before the expiration date", cert.CertificationType, cert.HolderName),
				DueDate:       &due,
				EstimatedTime: "2-4 hours",
				Standards:     append([]string(nil), cert.Standards...),
				ImpactTags:    []string{"regulatory_risk", "renewal_cost"},
				CreatedAt:     now,
			})
		}
	}
	return out
}
