package recommendations

import (
	"testing"

	"compliance-backend/internal/trainings"
)

func TestTrendsRequireTwoOccurrences(t *testing.T) {
	docs := []trainings.ProcessedDocument{
		{ID: "doc-1", TrainingType: "Ladder Safety", CreatedAt: testNow.AddDate(0, 0, -5)},
		{ID: "doc-2", TrainingType: "Ladder Safety", CreatedAt: testNow.AddDate(0, 0, -3)},
		{ID: "doc-3", TrainingType: "Crane Signals", CreatedAt: testNow.AddDate(0, 0, -3)},
	}

	recs := fromTrainingTrends(docs, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected 1 trend recommendation, got %d", len(recs))
	}
	rec := recs[0]
	if rec.Type != TypeProactiveTraining {
		t.Fatalf("expected type %q, got %q", TypeProactiveTraining, rec.Type)
	}
	if rec.Priority != PriorityMedium {
		t.Fatalf("expected priority %q, got %q", PriorityMedium, rec.Priority)
	}
	wantDue := testNow.AddDate(0, 0, 60)
	if rec.DueDate == nil || !rec.DueDate.Equal(wantDue) {
		t.Fatalf("expected due date %v, got %v", wantDue, rec.DueDate)
	}
	if len(rec.RecommendedTraining) != 1 || rec.RecommendedTraining[0] != "Advanced Ladder Safety" {
		t.Fatalf("unexpected recommended training: %v", rec.RecommendedTraining)
	}
}

func TestTrendsIgnoreOldDocuments(t *testing.T) {
	docs := []trainings.ProcessedDocument{
		{ID: "doc-1", TrainingType: "Ladder Safety", CreatedAt: testNow.AddDate(0, 0, -120)},
		{ID: "doc-2", TrainingType: "Ladder Safety", CreatedAt: testNow.AddDate(0, 0, -5)},
	}

	recs := fromTrainingTrends(docs, testNow)
	if len(recs) != 0 {
		t.Fatalf("expected documents outside the window to be ignored, got %d recommendations", len(recs))
	}
}

func TestTrendsIgnoreEmptyLabels(t *testing.T) {
	docs := []trainings.ProcessedDocument{
		{ID: "doc-1", TrainingType: "  ", CreatedAt: testNow.AddDate(0, 0, -5)},
		{ID: "doc-2", TrainingType: "", CreatedAt: testNow.AddDate(0, 0, -3)},
	}

	recs := fromTrainingTrends(docs, testNow)
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations for unlabeled documents, got %d", len(recs))
	}
}

func TestTrendsPreferProcessedAtOverCreatedAt(t *testing.T) {
	old := testNow.AddDate(0, 0, -120)
	recent := testNow.AddDate(0, 0, -5)
	docs := []trainings.ProcessedDocument{
		{ID: "doc-1", TrainingType: "Ladder Safety", ProcessedAt: timePtr(recent), CreatedAt: old},
		{ID: "doc-2", TrainingType: "Ladder Safety", ProcessedAt: timePtr(recent), CreatedAt: old},
	}

	recs := fromTrainingTrends(docs, testNow)
	if len(recs) != 1 {
		t.Fatalf("expected processing timestamp to govern the window, got %d recommendations", len(recs))
	}
}
