package catalog

// DefaultVersion identifies the built-in requirement table.
const DefaultVersion = "2025.2"

// Default returns the built-in workplace-safety requirement catalog.
func Default() Catalog {
	return New(DefaultVersion, map[string][]Requirement{
		"construction": {
			{
				CertificationName: "Fall Protection",
				Criticality:       CriticalityCritical,
				Duration:          "8 hours",
				Standards:         []string{"OSHA 1926.501", "OSHA 1926.503"},
				GracePeriodDays:   14,
			},
			{
				CertificationName: "Scaffold Safety",
				Criticality:       CriticalityHigh,
				Duration:          "4 hours",
				Standards:         []string{"OSHA 1926.451"},
				GracePeriodDays:   30,
			},
			{
				CertificationName: "First Aid/CPR",
				Criticality:       CriticalityMedium,
				Duration:          "6 hours",
				Standards:         []string{"OSHA 1926.50"},
				GracePeriodDays:   45,
			},
		},
		"warehouse": {
			{
				CertificationName: "Forklift Operation",
				Criticality:       CriticalityCritical,
				Duration:          "8 hours",
				Standards:         []string{"OSHA 1910.178"},
				GracePeriodDays:   14,
			},
			{
				CertificationName: "Hazard Communication",
				Criticality:       CriticalityHigh,
				Duration:          "2 hours",
				Standards:         []string{"OSHA 1910.1200"},
				GracePeriodDays:   30,
			},
		},
		"manufacturing": {
			{
				CertificationName: "Lockout/Tagout",
				Criticality:       CriticalityCritical,
				Duration:          "4 hours",
				Standards:         []string{"OSHA 1910.147"},
				GracePeriodDays:   14,
			},
			{
				CertificationName: "Machine Guarding",
				Criticality:       CriticalityHigh,
				Duration:          "3 hours",
				Standards:         []string{"OSHA 1910.212"},
				GracePeriodDays:   30,
			},
			{
				CertificationName: "Hearing Conservation",
				Criticality:       CriticalityMedium,
				Duration:          "1 hour",
				Standards:         []string{"OSHA 1910.95"},
				GracePeriodDays:   60,
			},
		},
		"maintenance": {
			{
				CertificationName: "Confined Space Entry",
				Criticality:       CriticalityCritical,
				Duration:          "8 hours",
				Standards:         []string{"OSHA 1910.146"},
				GracePeriodDays:   14,
			},
			{
				CertificationName: "Electrical Safety",
				Criticality:       CriticalityHigh,
				Duration:          "4 hours",
				Standards:         []string{"NFPA 70E"},
				GracePeriodDays:   30,
			},
		},
	})
}
