package controllers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cablepathapi/models"
	"cablepathapi/services/trace"

	"github.com/gin-gonic/gin"
)

type stubTraceService struct {
	runs []models.TraceRun
}

func (s *stubTraceService) TraceTermination(ctx context.Context, terminationID uint) (*trace.Result, error) {
	return &trace.Result{Status: trace.StatusComplete}, nil
}

func (s *stubTraceService) ListRecentRuns(ctx context.Context, limit int) ([]models.TraceRun, error) {
	return s.runs, nil
}

func (s *stubTraceService) ListRunsByTermination(ctx context.Context, terminationID uint, limit int) ([]models.TraceRun, error) {
	return s.runs, nil
}

func newTraceTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	SetTraceService(&stubTraceService{runs: []models.TraceRun{{TerminationID: 1, Status: "complete"}}})
	router := gin.New()
	RegisterTraceRoutes(router.Group("/api/queries"))
	return router
}

func getTraceRuns(t *testing.T, router *gin.Engine, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/queries/trace/runs"+query, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestListTraceRunsLimitValidation(t *testing.T) {
	router := newTraceTestRouter(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no limit", "", http.StatusOK},
		{"valid limit", "?limit=10", http.StatusOK},
		{"zero limit", "?limit=0", http.StatusBadRequest},
		{"negative limit", "?limit=-3", http.StatusBadRequest},
		{"non-numeric limit", "?limit=abc", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := getTraceRuns(t, router, tt.query)
			if w.Code != tt.want {
				t.Errorf("expected status %d, got %d (body: %s)", tt.want, w.Code, w.Body.String())
			}
		})
	}
}

func TestListTraceRunsRejectsNegativeTermination(t *testing.T) {
	router := newTraceTestRouter(t)

	w := getTraceRuns(t, router, "?termination_id=-5")
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d (body: %s)", w.Code, w.Body.String())
	}

	w = getTraceRuns(t, router, "?termination_id=1&limit=5")
	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d (body: %s)", w.Code, w.Body.String())
	}
}
