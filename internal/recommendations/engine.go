package recommendations

import (
	"sort"
	"time"

	"compliance-backend/internal/catalog"
)

// Generate builds the full prioritized recommendation list from one snapshot.
// The output is deterministic: identical snapshots produce identical IDs in
// identical order.
func Generate(snap Snapshot, cat catalog.Catalog, now time.Time) []Recommendation {
	recs := make([]Recommendation, 0, 16)
	recs = append(recs, fromCertificateExpiry(snap.Certificates, now)...)
	recs = append(recs, fromMissingRequirements(snap.Members, snap.Certificates, cat, now)...)
	recs = append(recs, fromTrainingTrends(snap.Documents, now)...)
	recs = append(recs, fromDepartmentRisk(snap.Members, snap.Certificates, now)...)
	sortRecommendations(recs)
	return recs
}

// sortRecommendations orders by priority descending, then due date ascending.
// Within a priority tier, items without a due date sort after items with one.
// The sort is stable so concatenation order breaks remaining ties.
func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		a := items[i]
		b := items[j]
		if priorityRank(a.Priority) != priorityRank(b.Priority) {
			return priorityRank(a.Priority) > priorityRank(b.Priority)
		}
		switch {
		case a.DueDate == nil:
			return false
		case b.DueDate == nil:
			return true
		default:
			return a.DueDate.Before(*b.DueDate)
		}
	})
}
