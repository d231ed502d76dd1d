package recommendations

import (
	"strings"
	"testing"

	"compliance-backend/internal/certificates"
	"compliance-backend/internal/workforce"
)

func TestScoreDepartmentsLowCoverageOnly(t *testing.T) {
	members := []workforce.Member{
		testMember("Ana Lopez", "Warehouse"),
		testMember("Ben Ortiz", "Warehouse"),
	}
	cert := testCert("Ana Lopez", "Forklift Operation", timePtr(testNow.AddDate(1, 0, 0)))

	risks := scoreDepartments(members, []certificates.Certificate{cert}, testNow)
	if len(risks) != 1 {
		t.Fatalf("expected 1 department, got %d", len(risks))
	}
	risk := risks[0]
	// 1/2 coverage triggers the coverage factor only; the cert is recent and far from expiry.
	if risk.score != coverageWeight {
		t.Fatalf("expected score %.1f, got %.1f", coverageWeight, risk.score)
	}
	if len(risk.issues) != 1 || risk.issues[0] != issueLowCoverage {
		t.Fatalf("unexpected issues: %v", risk.issues)
	}
}

func TestScoreDepartmentsAllFactorsCapped(t *testing.T) {
	members := []workforce.Member{
		testMember("Ana Lopez", "Warehouse"),
		testMember("Ben Ortiz", "Warehouse"),
	}
	// Single stale certificate expiring inside the 60-day window: every factor triggers.
	cert := testCert("Ana Lopez", "Forklift Operation", timePtr(testNow.AddDate(0, 0, 45)))
	cert.CreatedAt = testNow.AddDate(0, 0, -120)

	risks := scoreDepartments(members, []certificates.Certificate{cert}, testNow)
	if len(risks) != 1 {
		t.Fatalf("expected 1 department, got %d", len(risks))
	}
	risk := risks[0]
	if risk.score != 1.0 {
		t.Fatalf("expected capped score 1.0, got %.2f", risk.score)
	}
	want := []string{issueLowCoverage, issueExpiringCluster, issueNoRecentActivity}
	if len(risk.issues) != len(want) {
		t.Fatalf("expected %d issues, got %v", len(want), risk.issues)
	}
	for i := range want {
		if risk.issues[i] != want[i] {
			t.Fatalf("expected issue order %v, got %v", want, risk.issues)
		}
	}
}

func TestFromDepartmentRiskEmitsCriticalAboveNinety(t *testing.T) {
	members := []workforce.Member{
		testMember("Ana Lopez", "Warehouse"),
		testMember("Ben Ortiz", "Warehouse"),
	}
	cert := testCert("Ana Lopez", "Forklift Operation", timePtr(testNow.AddDate(0, 0, 45)))
	cert.CreatedAt = testNow.AddDate(0, 0, -120)

	recs := fromDepartmentRisk(members, []certificates.Certificate{cert}, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected 1 risk recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Type != TypeRiskMitigation {
		t.Fatalf("expected type %q, got %q", TypeRiskMitigation, rec.Type)
	}
	if rec.Priority != PriorityCritical {
		t.Fatalf("expected priority %q, got %q", PriorityCritical, rec.Priority)
	}
	if !strings.Contains(rec.Description, issueLowCoverage) ||
		!strings.Contains(rec.Description, issueExpiringCluster) ||
		!strings.Contains(rec.Description, issueNoRecentActivity) {
		t.Fatalf("expected all triggered issues in description, got %q", rec.Description)
	}
}

func TestFromDepartmentRiskBelowThresholdEmitsNothing(t *testing.T) {
	// Zero certificates: only the coverage factor can trigger, leaving 0.3 <= 0.7.
	members := []workforce.Member{
		testMember("Ana Lopez", "Warehouse"),
	}

	recs := fromDepartmentRisk(members, nil, testNow)
	if len(recs) != 0 {
		t.Fatalf("expected no risk recommendations below threshold, got %d", len(recs))
	}
}

func TestScoreDepartmentsHighCoverageRecentCerts(t *testing.T) {
	members := []workforce.Member{
		testMember("Ana Lopez", "Warehouse"),
	}
	cert := testCert("Ana Lopez", "Forklift Operation", timePtr(testNow.AddDate(1, 0, 0)))

	risks := scoreDepartments(members, []certificates.Certificate{cert}, testNow)
	if len(risks) != 1 {
		t.Fatalf("expected 1 department, got %d", len(risks))
	}
	if risks[0].score != 0 {
		t.Fatalf("expected zero risk score, got %.2f", risks[0].score)
	}
}
