package catalog

import "testing"

func TestRequirementsForUnknownDepartment(t *testing.T) {
	cat := Default()
	if _, ok := cat.RequirementsFor("astral projection"); ok {
		t.Fatalf("expected unknown department to report ok=false")
	}
}

func TestRequirementsForIsCaseInsensitive(t *testing.T) {
	cat := New("test", map[string][]Requirement{
		"Construction": {
			{CertificationName: "Fall Protection", Criticality: CriticalityCritical, GracePeriodDays: 14},
		},
	})

	for _, dept := range []string{"construction", "Construction", "  CONSTRUCTION  "} {
		reqs, ok := cat.RequirementsFor(dept)
		if !ok {
			t.Fatalf("expected requirements for %q", dept)
		}
		if len(reqs) != 1 || reqs[0].CertificationName != "Fall Protection" {
			t.Fatalf("unexpected requirements for %q: %+v", dept, reqs)
		}
	}
}

func TestRequirementsForReturnsCopy(t *testing.T) {
	cat := New("test", map[string][]Requirement{
		"warehouse": {
			{CertificationName: "Forklift Operation", Criticality: CriticalityCritical},
		},
	})

	reqs, _ := cat.RequirementsFor("warehouse")
	reqs[0].CertificationName = "mutated"

	again, _ := cat.RequirementsFor("warehouse")
	if again[0].CertificationName != "Forklift Operation" {
		t.Fatalf("catalog state was mutated through returned slice")
	}
}

func TestDefaultCatalogVersioned(t *testing.T) {
	cat := Default()
	if cat.Version() != DefaultVersion {
		t.Fatalf("expected version %q, got %q", DefaultVersion, cat.Version())
	}
	reqs, ok := cat.RequirementsFor("construction")
	if !ok || len(reqs) == 0 {
		t.Fatalf("expected construction requirements in default catalog")
	}
}
