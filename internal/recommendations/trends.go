package recommendations

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"compliance-backend/internal/trainings"
)

const (
	// trendWindow bounds how far back processed documents count toward a trend.
	trendWindow = 90 * 24 * time.Hour
	// trendMinOccurrences is deliberately low to surface signal from sparse data.
	trendMinOccurrences = 2
	// trendDueDays is how far out enrichment training is scheduled.
	trendDueDays = 60
)

// fromTrainingTrends counts training-type labels across recently processed
// documents and proposes an enhanced program for any type seen repeatedly.
func fromTrainingTrends(docs []trainings.ProcessedDocument, now time.Time) []Recommendation {
	counts := make(map[string]int)
	labels := make(map[string]string)
	cutoff := now.Add(-trendWindow)
	for _, doc := range docs {
		ts := doc.CreatedAt
		if doc.ProcessedAt != nil {
			ts = *doc.ProcessedAt
		}
		if ts.Before(cutoff) {
			continue
		}
		label := strings.TrimSpace(doc.TrainingType)
		if label == "" {
			continue
		}
		key := strings.ToLower(label)
		counts[key]++
		labels[key] = label
	}

	keys := make([]string, 0, len(counts))
	for key, count := range counts {
		if count >= trendMinOccurrences {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	var out []Recommendation
	for _, key := range keys {
		label := labels[key]
		due := now.AddDate(0, 0, trendDueDays)
		out = append(out, Recommendation{
			ID:       "trend-" + slugify(label),
			Type:     TypeProactiveTraining,
			Priority: PriorityMedium,
			Title:    fmt.Sprintf("Enhanced %s program", label),
			Description: fmt.Sprintf("%s training appeared %d times in recently processed documents; an advanced program would build on this momentum.",
				label, counts[key]),
			Action:              fmt.Sprintf("Plan an advanced %s training program", label),
			DueDate:             &due,
			EstimatedTime:       "4-8 hours",
			ImpactTags:          []string{"training_cost", "capability_uplift"},
			RecommendedTraining: []string{"Advanced " + label},
			CreatedAt:           now,
		})
	}
	return out
}
