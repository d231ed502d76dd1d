package recommendations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestRouter(svc *Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewHandler(svc).RegisterRoutes(api)
	return r
}

func TestHandlerGenerateOK(t *testing.T) {
	svc := setupService(t, staticNarrative{text: "steady improvement across departments"})
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/org-1/recommendations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body Result
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Recommendations) == 0 {
		t.Fatalf("expected recommendations in response body")
	}
	if body.Analytics.OverallScore != 50 {
		t.Fatalf("expected overall score 50, got %d", body.Analytics.OverallScore)
	}
	if body.Narrative != "steady improvement across departments" {
		t.Fatalf("unexpected narrative: %q", body.Narrative)
	}
}

func TestHandlerNarrativeOffQuery(t *testing.T) {
	svc := setupService(t, staticNarrative{text: "should not appear"})
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/org-1/recommendations?narrative=off", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body Result
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Narrative != "" {
		t.Fatalf("expected narrative omitted, got %q", body.Narrative)
	}
}

func TestHandlerSnapshotUnavailable(t *testing.T) {
	svc := setupService(t, staticNarrative{text: "unused"})
	svc.Certificates = failingCertRepo{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/organizations/org-1/recommendations", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error response: %v", err)
	}
	if body.Error.Code != "snapshot_unavailable" {
		t.Fatalf("expected error code snapshot_unavailable, got %q", body.Error.Code)
	}
}
