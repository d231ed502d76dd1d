package recommendations

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"compliance-backend/internal/catalog"
	"compliance-backend/internal/certificates"
	"compliance-backend/internal/insights"
	"compliance-backend/internal/shared/metrics"
	"compliance-backend/internal/shared/telemetry"
	"compliance-backend/internal/trainings"
	"compliance-backend/internal/workforce"
)

// Result is the full output of one engine invocation.
type Result struct {
	Recommendations []Recommendation `json:"recommendations"`
	Analytics       Analytics        `json:"analytics"`
	Narrative       string           `json:"narrative,omitempty"`
}

// GenerateOptions tunes one invocation.
type GenerateOptions struct {
	// SkipNarrative omits the external narrative call entirely.
	SkipNarrative bool
}

// Service orchestrates snapshot fetching, the deterministic engine, analytics,
// and the advisory narrative call.
type Service struct {
	Members      workforce.Repo
	Certificates certificates.Repo
	Sessions     trainings.SessionsRepo
	Documents    trainings.ProcessedDocsRepo
	Catalog      catalog.Catalog
	Narrative    insights.Provider

	// NarrativeTimeout bounds the single external narrative attempt.
	NarrativeTimeout time.Duration

	// Now is overridable for tests; defaults to time.Now UTC.
	Now func() time.Time
}

// Generate produces the prioritized recommendation list and analytics for one
// organization. The computation is read-only and side-effect-free except for
// the narrative call.
func (s *Service) Generate(ctx context.Context, organizationID string, opts GenerateOptions) (Result, error) {
	if organizationID == "" {
		return Result{}, ErrInvalidInput
	}

	runID := uuid.NewString()
	now := s.now()
	startedAt := time.Now()
	metrics.IncGenerationStarted()

	snap, err := s.fetchSnapshot(ctx, organizationID)
	if err != nil {
		metrics.IncGenerationFailed()
		telemetry.Error("recommendations.generate", map[string]any{
			"run_id":          runID,
			"organization_id": organizationID,
			"error":           err.Error(),
		})
		return Result{}, err
	}

	recs := Generate(snap, s.Catalog, now)
	analytics := ComputeAnalytics(snap.Members, snap.Certificates, recs, now)

	result := Result{
		Recommendations: recs,
		Analytics:       analytics,
	}
	if !opts.SkipNarrative {
		result.Narrative = s.narrative(ctx, runID, snap, recs, analytics, now)
	}

	durationMs := float64(time.Since(startedAt).Microseconds()) / 1000.0
	metrics.IncGenerationCompleted()
	metrics.ObserveGenerationDurationMs(durationMs)
	telemetry.Info("recommendations.generate", map[string]any{
		"run_id":          runID,
		"organization_id": organizationID,
		"catalog_version": s.Catalog.Version(),
		"members":         len(snap.Members),
		"certificates":    len(snap.Certificates),
		"recommendations": len(recs),
		"critical":        analytics.CriticalCount,
		"overall_score":   analytics.OverallScore,
		"duration_ms":     durationMs,
	})

	return result, nil
}

// fetchSnapshot loads the four record collections concurrently. All four must
// succeed; the first failure aborts the invocation.
func (s *Service) fetchSnapshot(ctx context.Context, organizationID string) (Snapshot, error) {
	snap := Snapshot{OrganizationID: organizationID}
	errs := make([]error, 4)

	var wg sync.WaitGroup
	wg.Add(4)
	go func() {
		defer wg.Done()
		var err error
		if snap.Members, err = s.Members.ListByOrganization(ctx, organizationID); err != nil {
			errs[0] = fmt.Errorf("fetch members: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if snap.Certificates, err = s.Certificates.ListByOrganization(ctx, organizationID); err != nil {
			errs[1] = fmt.Errorf("fetch certificates: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if snap.Sessions, err = s.Sessions.ListByOrganization(ctx, organizationID); err != nil {
			errs[2] = fmt.Errorf("fetch training sessions: %w", err)
		}
	}()
	go func() {
		defer wg.Done()
		var err error
		if snap.Documents, err = s.Documents.ListByOrganization(ctx, organizationID); err != nil {
			errs[3] = fmt.Errorf("fetch processed documents: %w", err)
		}
	}()
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return Snapshot{}, fmt.Errorf("%w: %v", ErrSnapshotUnavailable, err)
		}
	}
	return snap, nil
}

// narrative requests the advisory narrative under a timeout. Any failure falls
// back to the static text; errors never propagate.
func (s *Service) narrative(ctx context.Context, runID string, snap Snapshot, recs []Recommendation, analytics Analytics, now time.Time) string {
	if s.Narrative == nil {
		return insights.FallbackNarrative
	}

	expired := 0
	expiring := 0
	for _, cert := range snap.Certificates {
		switch certificates.Classify(cert, now) {
		case certificates.LifecycleExpired:
			expired++
		case certificates.LifecycleExpiringSoon:
			expiring++
		}
	}

	summary := insights.Summary{
		OrganizationID:       snap.OrganizationID,
		TotalMembers:         len(snap.Members),
		TotalCertificates:    len(snap.Certificates),
		ExpiredCertificates:  expired,
		ExpiringCertificates: expiring,
		RecommendationCount:  len(recs),
		CriticalCount:        analytics.CriticalCount,
		OverallScore:         analytics.OverallScore,
		AtRiskDepartments:    analytics.RiskAreas,
	}

	timeout := s.NarrativeTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	narrativeCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	narrative, err := s.Narrative.GenerateNarrative(narrativeCtx, summary)
	if err != nil || narrative == "" {
		metrics.IncNarrativeFallback()
		if err != nil {
			telemetry.Warn("insights.narrative", map[string]any{
				"run_id":          runID,
				"organization_id": snap.OrganizationID,
				"fallback":        true,
				"error":           err.Error(),
			})
		}
		return insights.FallbackNarrative
	}
	return narrative
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}
