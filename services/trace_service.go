package services

import (
	"context"
	"fmt"

	"cablepathapi/config"
	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/repository"
	"cablepathapi/services/topology"
	"cablepathapi/services/trace"
)

// TraceService provides business logic for cable path tracing.
type TraceService interface {
	TraceTermination(ctx context.Context, terminationID uint) (*trace.Result, error)
	ListRecentRuns(ctx context.Context, limit int) ([]models.TraceRun, error)
	ListRunsByTermination(ctx context.Context, terminationID uint, limit int) ([]models.TraceRun, error)
}

type traceService struct {
	termRepo repository.TerminationRepository
	runRepo  repository.TraceRunRepository
}

// NewTraceService creates a new trace service instance.
func NewTraceService() TraceService {
	return &traceService{
		termRepo: repository.NewTerminationRepository(),
		runRepo:  repository.NewTraceRunRepository(),
	}
}

// NewTraceServiceWithDeps creates a trace service with injected repositories, used by tests.
func NewTraceServiceWithDeps(termRepo repository.TerminationRepository, runRepo repository.TraceRunRepository) TraceService {
	return &traceService{
		termRepo: termRepo,
		runRepo:  runRepo,
	}
}

// TraceTermination loads a topology snapshot, walks the path from the given
// termination and records an audit row. The traced path itself is never
// persisted.
func (s *traceService) TraceTermination(ctx context.Context, terminationID uint) (*trace.Result, error) {
	if terminationID == 0 {
		return nil, fmt.Errorf("invalid termination ID: must be greater than 0")
	}

	if _, err := s.termRepo.GetByID(nil, terminationID); err != nil {
		return nil, fmt.Errorf("termination with id=%d not found: %w", terminationID, err)
	}

	snapshot, err := topology.Load(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load topology snapshot: %w", err)
	}

	tracer := trace.NewTracer(snapshot, config.Cfg.TraceMaxHops)
	result := tracer.Trace(terminationID)

	run := models.TraceRun{
		TerminationID: terminationID,
		Status:        string(result.Status),
		Reason:        string(result.Reason),
		CableHops:     result.CableHops,
		TotalHops:     len(result.Hops),
		Branches:      len(result.Branches),
	}
	// The audit row is best effort: a failed insert must not fail the trace.
	if err := s.runRepo.Create(nil, &run); err != nil {
		logger.Warnf("Failed to record trace run for termination %d: %v", terminationID, err)
	}

	logger.Debugf("Traced termination %d: status=%s, cable_hops=%d, total_hops=%d",
		terminationID, result.Status, result.CableHops, len(result.Hops))
	return result, nil
}

// ListRecentRuns returns the most recent trace audit records.
func (s *traceService) ListRecentRuns(ctx context.Context, limit int) ([]models.TraceRun, error) {
	runs, err := s.runRepo.GetRecent(nil, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trace runs: %w", err)
	}
	return runs, nil
}

// ListRunsByTermination returns trace audit records for one termination.
func (s *traceService) ListRunsByTermination(ctx context.Context, terminationID uint, limit int) ([]models.TraceRun, error) {
	runs, err := s.runRepo.GetByTerminationID(nil, terminationID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list trace runs for termination %d: %w", terminationID, err)
	}
	return runs, nil
}
