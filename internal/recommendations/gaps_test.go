package recommendations

import (
	"testing"

	"compliance-backend/internal/certificates"
	"compliance-backend/internal/workforce"
)

func TestGapDetectionCompleteness(t *testing.T) {
	members := []workforce.Member{
		testMember("Ana Lopez", "Department A"),
		testMember("Ben Ortiz", "Department B"),
	}
	certs := []certificates.Certificate{
		testCert("Ana Lopez", "Fall Protection", timePtr(testNow.AddDate(1, 0, 0))),
	}

	recs := fromMissingRequirements(members, certs, testCatalog(), testNow)
	if len(recs) != 1 {
		t.Fatalf("expected exactly 1 gap recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Type != TypeTrainingRequired {
		t.Fatalf("expected type %q, got %q", TypeTrainingRequired, rec.Type)
	}
	if rec.EmployeeName != "Ben Ortiz" {
		t.Fatalf("expected recommendation for Ben Ortiz, got %q", rec.EmployeeName)
	}
	if rec.Priority != PriorityCritical {
		t.Fatalf("expected catalog criticality as priority, got %q", rec.Priority)
	}
	wantDue := testNow.AddDate(0, 0, 14)
	if rec.DueDate == nil || !rec.DueDate.Equal(wantDue) {
		t.Fatalf("expected due date %v, got %v", wantDue, rec.DueDate)
	}
	if rec.EstimatedTime != "8 hours" {
		t.Fatalf("expected estimated time from catalog, got %q", rec.EstimatedTime)
	}
	if len(rec.Standards) != 1 || rec.Standards[0] != "OSHA 1926.501" {
		t.Fatalf("expected standards from catalog, got %v", rec.Standards)
	}
}

func TestGapDetectionExpiredCertificateDoesNotCount(t *testing.T) {
	members := []workforce.Member{testMember("Ana Lopez", "Department A")}
	certs := []certificates.Certificate{
		testCert("Ana Lopez", "Fall Protection", timePtr(testNow.AddDate(0, 0, -1))),
	}

	recs := fromMissingRequirements(members, certs, testCatalog(), testNow)
	if len(recs) != 1 {
		t.Fatalf("expected gap recommendation when only certificate is expired, got %d", len(recs))
	}
}

func TestGapDetectionSkipsUnknownDepartment(t *testing.T) {
	members := []workforce.Member{testMember("Ana Lopez", "Mystery Department")}

	recs := fromMissingRequirements(members, nil, testCatalog(), testNow)
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations for unknown department, got %d", len(recs))
	}
}

func TestGapDetectionSkipsInactiveMembers(t *testing.T) {
	member := testMember("Ana Lopez", "Department A")
	member.Status = workforce.StatusInactive

	recs := fromMissingRequirements([]workforce.Member{member}, nil, testCatalog(), testNow)
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations for inactive member, got %d", len(recs))
	}
}

func TestGapDetectionCertTypeMatchIsCaseInsensitive(t *testing.T) {
	members := []workforce.Member{testMember("Ana Lopez", "Department A")}
	cert := testCert("Ana Lopez", "FALL PROTECTION", timePtr(testNow.AddDate(1, 0, 0)))

	recs := fromMissingRequirements(members, []certificates.Certificate{cert}, testCatalog(), testNow)
	if len(recs) != 0 {
		t.Fatalf("expected case-insensitive certification match, got %d recommendations", len(recs))
	}
}

func TestGapDetectionRevokedCertificateDoesNotCount(t *testing.T) {
	members := []workforce.Member{testMember("Ana Lopez", "Department A")}
	cert := testCert("Ana Lopez", "Fall Protection", timePtr(testNow.AddDate(1, 0, 0)))
	cert.Status = certificates.StatusRevoked

	recs := fromMissingRequirements(members, []certificates.Certificate{cert}, testCatalog(), testNow)
	if len(recs) != 1 {
		t.Fatalf("expected revoked certificate to leave the gap open, got %d", len(recs))
	}
}
