package catalog

import "strings"

// Criticality levels for a required certification. These map directly onto
// recommendation priorities.
const (
	CriticalityLow      = "low"
	CriticalityMedium   = "medium"
	CriticalityHigh     = "high"
	CriticalityCritical = "critical"
)

// Requirement is a single required certification for a department.
type Requirement struct {
	CertificationName string
	Criticality       string
	Duration          string
	Standards         []string
	GracePeriodDays   int
}

// Catalog maps departments to their required certifications. It is an
// immutable, versioned value injected at construction time so tests can
// substitute alternate catalogs without touching shared state.
type Catalog struct {
	version      string
	requirements map[string][]Requirement
}

// New constructs a Catalog from a department->requirements table.
func New(version string, requirements map[string][]Requirement) Catalog {
	table := make(map[string][]Requirement, len(requirements))
	for dept, reqs := range requirements {
		key := normalizeDepartment(dept)
		if key == "" || len(reqs) == 0 {
			continue
		}
		table[key] = append([]Requirement(nil), reqs...)
	}
	return Catalog{version: version, requirements: table}
}

// Version returns the catalog version string.
func (c Catalog) Version() string {
	return c.version
}

// RequirementsFor returns the requirements for a department. Unknown
// departments return ok=false and are excluded from gap analysis.
func (c Catalog) RequirementsFor(department string) ([]Requirement, bool) {
	reqs, ok := c.requirements[normalizeDepartment(department)]
	if !ok {
		return nil, false
	}
	return append([]Requirement(nil), reqs...), true
}

func normalizeDepartment(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}
