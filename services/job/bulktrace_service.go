package job

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"cablepathapi/config"
	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/repository"
	"cablepathapi/services/topology"
	"cablepathapi/services/trace"
)

// TraceSummary is the per-termination outcome recorded by a bulk trace job.
type TraceSummary struct {
	TerminationID uint   `json:"termination_id"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Status        string `json:"status"`
	Reason        string `json:"reason,omitempty"`
	CableHops     int    `json:"cable_hops"`
	TotalHops     int    `json:"total_hops"`
	Branches      int    `json:"branches"`
	TerminusID    uint   `json:"terminus_id,omitempty"`
}

// JobInfo stores information about a bulk trace job
type JobInfo struct {
	JobID       string         `json:"job_id"`
	DeviceID    uint           `json:"device_id"`
	Status      string         `json:"status"`
	Progress    int            `json:"progress"`
	StartTime   time.Time      `json:"start_time"`
	EndTime     *time.Time     `json:"end_time,omitempty"`
	Message     string         `json:"message"`
	Completed   int            `json:"completed"`
	Failed      int            `json:"failed"`
	TotalTraces int            `json:"total_traces"`
	Error       string         `json:"error,omitempty"`
	Results     []TraceSummary `json:"results,omitempty"`
}

// BulkTraceService runs device-wide traces as background jobs. Every
// termination of the device is traced against one shared topology snapshot,
// so all results within a job describe the same moment in time.
type BulkTraceService struct {
	jobs    map[string]*JobInfo
	mu      sync.RWMutex
	stopCh  chan struct{}
	stopped bool
	seq     uint64

	termRepo repository.TerminationRepository
	loadSnap func() (*topology.Snapshot, error)
}

var (
	bulkTraceInstance *BulkTraceService
	bulkTraceOnce     sync.Once
)

// GetBulkTraceService returns singleton instance of BulkTraceService
func GetBulkTraceService() *BulkTraceService {
	bulkTraceOnce.Do(func() {
		bulkTraceInstance = NewBulkTraceService(repository.NewTerminationRepository(), func() (*topology.Snapshot, error) {
			return topology.Load(nil)
		})
	})
	return bulkTraceInstance
}

// NewBulkTraceService creates a standalone service instance, used by tests.
func NewBulkTraceService(termRepo repository.TerminationRepository, loadSnap func() (*topology.Snapshot, error)) *BulkTraceService {
	return &BulkTraceService{
		jobs:     make(map[string]*JobInfo),
		stopCh:   make(chan struct{}),
		termRepo: termRepo,
		loadSnap: loadSnap,
	}
}

// StartDeviceTrace launches a background job tracing every termination of the
// given device and returns the job ID immediately.
func (bts *BulkTraceService) StartDeviceTrace(deviceID uint) (string, error) {
	terms, err := bts.termRepo.GetByDeviceID(nil, deviceID)
	if err != nil {
		return "", fmt.Errorf("failed to list terminations of device %d: %w", deviceID, err)
	}
	if len(terms) == 0 {
		return "", fmt.Errorf("device %d has no terminations to trace", deviceID)
	}

	snapshot, err := bts.loadSnap()
	if err != nil {
		return "", fmt.Errorf("failed to load topology snapshot: %w", err)
	}

	bts.mu.Lock()
	if bts.stopped {
		bts.mu.Unlock()
		return "", fmt.Errorf("bulk trace service is stopped")
	}
	bts.seq++
	jobID := fmt.Sprintf("trace-%d-%d", deviceID, bts.seq)
	bts.jobs[jobID] = &JobInfo{
		JobID:       jobID,
		DeviceID:    deviceID,
		Status:      "running",
		StartTime:   time.Now(),
		Message:     "Job started",
		TotalTraces: len(terms),
	}
	bts.mu.Unlock()

	logger.Infof("Started bulk trace job %s for device %d (%d terminations)", jobID, deviceID, len(terms))
	go bts.run(jobID, terms, snapshot)
	return jobID, nil
}

// run fans the terminations out over a bounded worker pool and folds the
// per-termination results back into the job record.
func (bts *BulkTraceService) run(jobID string, terms []models.Termination, snapshot *topology.Snapshot) {
	tracer := trace.NewTracer(snapshot, config.Cfg.TraceMaxHops)
	workers := config.GetBulkTraceConcurrency()
	if workers > len(terms) {
		workers = len(terms)
	}

	type traced struct {
		term   models.Termination
		result *trace.Result
	}

	work := make(chan models.Termination)
	out := make(chan traced)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for term := range work {
				out <- traced{term: term, result: tracer.Trace(term.ID)}
			}
		}()
	}
	go func() {
		defer close(work)
		for _, term := range terms {
			select {
			case work <- term:
			case <-bts.stopCh:
				return
			}
		}
	}()
	go func() {
		wg.Wait()
		close(out)
	}()

	summaries := make([]TraceSummary, 0, len(terms))
	done := 0
	for item := range out {
		summary := TraceSummary{
			TerminationID: item.term.ID,
			Kind:          item.term.Kind,
			Name:          item.term.Name,
			Status:        string(item.result.Status),
			Reason:        string(item.result.Reason),
			CableHops:     item.result.CableHops,
			TotalHops:     len(item.result.Hops),
			Branches:      len(item.result.Branches),
			TerminusID:    item.result.TerminusID,
		}
		summaries = append(summaries, summary)
		done++
		bts.updateProgress(jobID, done, item.result.Status)
	}

	// Worker completion order is nondeterministic, report in termination order.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].TerminationID < summaries[j].TerminationID
	})
	bts.finish(jobID, summaries, done < len(terms))
}

func (bts *BulkTraceService) updateProgress(jobID string, done int, status trace.Status) {
	bts.mu.Lock()
	defer bts.mu.Unlock()

	job, exists := bts.jobs[jobID]
	if !exists {
		return
	}
	if status == trace.StatusDataError {
		job.Failed++
	} else {
		job.Completed++
	}
	if job.TotalTraces > 0 {
		job.Progress = done * 100 / job.TotalTraces
	}
	job.Message = fmt.Sprintf("Traced %d of %d terminations", done, job.TotalTraces)
}

func (bts *BulkTraceService) finish(jobID string, summaries []TraceSummary, interrupted bool) {
	bts.mu.Lock()
	defer bts.mu.Unlock()

	job, exists := bts.jobs[jobID]
	if !exists {
		return
	}
	now := time.Now()
	job.EndTime = &now
	job.Results = summaries
	if interrupted {
		job.Status = "stopped"
		job.Message = "Job stopped before all terminations were traced"
		logger.Warnf("Bulk trace job %s stopped early (%d of %d traced)", jobID, len(summaries), job.TotalTraces)
		return
	}
	job.Status = "completed"
	job.Progress = 100
	job.Message = fmt.Sprintf("Traced %d terminations (%d with data errors)", job.TotalTraces, job.Failed)
	logger.Infof("Bulk trace job %s completed: %d traced, %d data errors", jobID, job.Completed, job.Failed)
}

// GetJob returns job information
func (bts *BulkTraceService) GetJob(jobID string) (*JobInfo, bool) {
	bts.mu.RLock()
	defer bts.mu.RUnlock()

	job, exists := bts.jobs[jobID]
	if exists {
		// Return a copy to avoid race conditions
		jobCopy := *job
		return &jobCopy, true
	}

	return nil, false
}

// GetJobsByDevice returns jobs for a specific device ID
func (bts *BulkTraceService) GetJobsByDevice(deviceID uint) []JobInfo {
	bts.mu.RLock()
	defer bts.mu.RUnlock()

	var result []JobInfo
	for _, job := range bts.jobs {
		if job.DeviceID == deviceID {
			result = append(result, *job)
		}
	}
	return result
}

// PaginatedJobsResult contains paginated jobs data with metadata
type PaginatedJobsResult struct {
	Jobs       []JobInfo `json:"jobs"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	PageSize   int       `json:"page_size"`
	TotalPages int       `json:"total_pages"`
}

// GetAllJobsPaginated returns paginated jobs information.
// Converts internal map to sorted slice for consistent pagination ordering.
// Returns empty jobs array when page exceeds available data to prevent client errors.
func (bts *BulkTraceService) GetAllJobsPaginated(page, pageSize int) *PaginatedJobsResult {
	bts.mu.RLock()
	defer bts.mu.RUnlock()

	// API consumers expect 1-indexed pages, enforce minimum valid values before calculations
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}

	allJobs := make([]JobInfo, 0, len(bts.jobs))
	for _, job := range bts.jobs {
		allJobs = append(allJobs, *job)
	}
	// Map iteration order is undefined, sort for stable pages across requests.
	sort.Slice(allJobs, func(i, j int) bool {
		return allJobs[i].StartTime.After(allJobs[j].StartTime)
	})

	total := len(allJobs)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize

	// Return empty array instead of error when page exceeds data to simplify client handling
	if start >= total {
		return &PaginatedJobsResult{
			Jobs:       []JobInfo{},
			Total:      total,
			Page:       page,
			PageSize:   pageSize,
			TotalPages: totalPages,
		}
	}
	if end > total {
		end = total
	}

	return &PaginatedJobsResult{
		Jobs:       allJobs[start:end],
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}

// RemoveJob removes a finished job from the registry. Running jobs are kept
// so their goroutines always have a record to report into.
func (bts *BulkTraceService) RemoveJob(jobID string) error {
	bts.mu.Lock()
	defer bts.mu.Unlock()

	job, exists := bts.jobs[jobID]
	if !exists {
		return fmt.Errorf("job %s not found", jobID)
	}
	if job.Status == "running" {
		return fmt.Errorf("job %s is still running", jobID)
	}
	delete(bts.jobs, jobID)
	logger.Debugf("Removed job %s", jobID)
	return nil
}

// Stop stops the service. Running jobs finish their in-flight traces and are
// marked stopped.
func (bts *BulkTraceService) Stop() {
	bts.mu.Lock()
	defer bts.mu.Unlock()

	if !bts.stopped {
		close(bts.stopCh)
		bts.stopped = true
		logger.Infof("Bulk trace service stopped")
	}
}
