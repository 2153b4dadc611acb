package job

import (
	"fmt"
	"testing"
	"time"

	"cablepathapi/models"
	"cablepathapi/services/topology"

	"gorm.io/gorm"
)

// fakeTerminationRepo serves a fixed slice, no database involved.
type fakeTerminationRepo struct {
	terms []models.Termination
}

func (f *fakeTerminationRepo) GetByID(tx *gorm.DB, id uint) (*models.Termination, error) {
	for i := range f.terms {
		if f.terms[i].ID == id {
			return &f.terms[i], nil
		}
	}
	return nil, fmt.Errorf("termination %d not found", id)
}

func (f *fakeTerminationRepo) GetAll(tx *gorm.DB) ([]models.Termination, error) {
	return f.terms, nil
}

func (f *fakeTerminationRepo) GetByDeviceID(tx *gorm.DB, deviceID uint) ([]models.Termination, error) {
	var result []models.Termination
	for _, term := range f.terms {
		if term.DeviceID != nil && *term.DeviceID == deviceID {
			result = append(result, term)
		}
	}
	return result, nil
}

func (f *fakeTerminationRepo) GetByCircuitID(tx *gorm.DB, circuitID uint) ([]models.Termination, error) {
	return nil, nil
}

func (f *fakeTerminationRepo) CountByCircuitIDAndSide(tx *gorm.DB, circuitID uint, side string) (int64, error) {
	return 0, nil
}

func (f *fakeTerminationRepo) Create(tx *gorm.DB, value *models.Termination) error { return nil }
func (f *fakeTerminationRepo) Update(tx *gorm.DB, value *models.Termination) error { return nil }
func (f *fakeTerminationRepo) Delete(tx *gorm.DB, id uint) error                   { return nil }

// twoDeviceFixture wires device 1 interfaces 1 and 2 to device 2 interfaces
// 11 and 12.
func twoDeviceFixture() ([]models.Termination, []models.Cable) {
	devA, devB := uint(1), uint(2)
	terms := []models.Termination{
		{ID: 1, Kind: models.KindInterface, Name: "eth0", DeviceID: &devA},
		{ID: 2, Kind: models.KindInterface, Name: "eth1", DeviceID: &devA},
		{ID: 3, Kind: models.KindInterface, Name: "eth2", DeviceID: &devA},
		{ID: 11, Kind: models.KindInterface, Name: "eth0", DeviceID: &devB},
		{ID: 12, Kind: models.KindInterface, Name: "eth1", DeviceID: &devB},
	}
	cables := []models.Cable{
		{ID: 100, Status: models.CableStatusConnected, TerminationAID: 1, TerminationBID: 11},
		{ID: 101, Status: models.CableStatusConnected, TerminationAID: 2, TerminationBID: 12},
	}
	return terms, cables
}

func newFixtureService() *BulkTraceService {
	terms, cables := twoDeviceFixture()
	return NewBulkTraceService(&fakeTerminationRepo{terms: terms}, func() (*topology.Snapshot, error) {
		return topology.Build(terms, cables, nil), nil
	})
}

func waitForJob(t *testing.T, bts *BulkTraceService, jobID string) *JobInfo {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		job, ok := bts.GetJob(jobID)
		if !ok {
			t.Fatalf("job %s disappeared", jobID)
		}
		if job.Status != "running" {
			return job
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("job %s did not finish in time", jobID)
	return nil
}

func TestStartDeviceTraceRunsAllTerminations(t *testing.T) {
	bts := newFixtureService()
	defer bts.Stop()

	jobID, err := bts.StartDeviceTrace(1)
	if err != nil {
		t.Fatalf("StartDeviceTrace failed: %v", err)
	}

	job := waitForJob(t, bts, jobID)
	if job.Status != "completed" {
		t.Fatalf("expected completed job, got %s (%s)", job.Status, job.Message)
	}
	if job.TotalTraces != 3 {
		t.Errorf("expected 3 traces, got %d", job.TotalTraces)
	}
	if job.Progress != 100 {
		t.Errorf("expected progress 100, got %d", job.Progress)
	}
	if len(job.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(job.Results))
	}
	for i := 1; i < len(job.Results); i++ {
		if job.Results[i-1].TerminationID >= job.Results[i].TerminationID {
			t.Errorf("results not ordered by termination ID: %d before %d",
				job.Results[i-1].TerminationID, job.Results[i].TerminationID)
		}
	}

	byID := make(map[uint]TraceSummary)
	for _, summary := range job.Results {
		byID[summary.TerminationID] = summary
	}
	if got := byID[1]; got.Status != "complete" || got.TerminusID != 11 || got.CableHops != 1 {
		t.Errorf("unexpected summary for termination 1: %+v", got)
	}
	if got := byID[3]; got.Status != "incomplete" {
		t.Errorf("uncabled termination 3 should trace incomplete, got %+v", got)
	}
}

func TestStartDeviceTraceRejectsEmptyDevice(t *testing.T) {
	bts := newFixtureService()
	defer bts.Stop()

	if _, err := bts.StartDeviceTrace(99); err == nil {
		t.Errorf("expected error for device without terminations")
	}
}

func TestRemoveJobKeepsRunningJobs(t *testing.T) {
	bts := newFixtureService()
	defer bts.Stop()

	bts.jobs["stuck"] = &JobInfo{JobID: "stuck", Status: "running", StartTime: time.Now()}
	if err := bts.RemoveJob("stuck"); err == nil {
		t.Errorf("expected refusal to remove a running job")
	}

	bts.jobs["done"] = &JobInfo{JobID: "done", Status: "completed", StartTime: time.Now()}
	if err := bts.RemoveJob("done"); err != nil {
		t.Errorf("expected removal of finished job, got %v", err)
	}
	if _, ok := bts.GetJob("done"); ok {
		t.Errorf("job done should be gone")
	}
}

func TestStartDeviceTraceAfterStop(t *testing.T) {
	bts := newFixtureService()
	bts.Stop()

	if _, err := bts.StartDeviceTrace(1); err == nil {
		t.Errorf("expected error after Stop")
	}
}

func TestGetAllJobsPaginated_EmptyJobs(t *testing.T) {
	bts := &BulkTraceService{jobs: make(map[string]*JobInfo)}

	result := bts.GetAllJobsPaginated(1, 10)

	if result.Total != 0 {
		t.Errorf("Expected total 0, got %d", result.Total)
	}
	if len(result.Jobs) != 0 {
		t.Errorf("Expected empty jobs array, got %d jobs", len(result.Jobs))
	}
	if result.TotalPages != 0 {
		t.Errorf("Expected totalPages 0, got %d", result.TotalPages)
	}
}

func TestGetAllJobsPaginated_MultiplePages(t *testing.T) {
	bts := &BulkTraceService{jobs: make(map[string]*JobInfo)}

	base := time.Now()
	for i := 1; i <= 25; i++ {
		jobID := fmt.Sprintf("trace-1-%d", i)
		bts.jobs[jobID] = &JobInfo{
			JobID:     jobID,
			DeviceID:  1,
			Status:    "completed",
			StartTime: base.Add(time.Duration(i) * time.Second),
		}
	}

	result := bts.GetAllJobsPaginated(1, 10)
	if result.Total != 25 {
		t.Errorf("Expected total 25, got %d", result.Total)
	}
	if len(result.Jobs) != 10 {
		t.Errorf("Expected 10 jobs on page 1, got %d", len(result.Jobs))
	}
	if result.TotalPages != 3 {
		t.Errorf("Expected 3 total pages, got %d", result.TotalPages)
	}
	// Newest first
	if result.Jobs[0].JobID != "trace-1-25" {
		t.Errorf("Expected newest job first, got %s", result.Jobs[0].JobID)
	}

	result = bts.GetAllJobsPaginated(3, 10)
	if len(result.Jobs) != 5 {
		t.Errorf("Expected 5 jobs on page 3, got %d", len(result.Jobs))
	}
}

func TestGetAllJobsPaginated_PageBeyondRange(t *testing.T) {
	bts := &BulkTraceService{jobs: make(map[string]*JobInfo)}
	bts.jobs["only"] = &JobInfo{JobID: "only", Status: "completed", StartTime: time.Now()}

	result := bts.GetAllJobsPaginated(10, 10)

	if len(result.Jobs) != 0 {
		t.Errorf("Expected empty jobs array for page beyond range, got %d jobs", len(result.Jobs))
	}
	if result.Total != 1 {
		t.Errorf("Expected total 1, got %d", result.Total)
	}
	if result.Page != 10 {
		t.Errorf("Expected requested page 10, got %d", result.Page)
	}
}

func TestGetAllJobsPaginated_InvalidParameters(t *testing.T) {
	bts := &BulkTraceService{jobs: make(map[string]*JobInfo)}
	bts.jobs["test"] = &JobInfo{JobID: "test", Status: "completed", StartTime: time.Now()}

	tests := []struct {
		name             string
		page             int
		pageSize         int
		expectedPage     int
		expectedPageSize int
	}{
		{"Negative page", -1, 10, 1, 10},
		{"Zero page", 0, 10, 1, 10},
		{"Negative pageSize", 1, -1, 1, 10},
		{"Both invalid", -5, -5, 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := bts.GetAllJobsPaginated(tt.page, tt.pageSize)

			if result.Page != tt.expectedPage {
				t.Errorf("%s: Expected page %d, got %d", tt.name, tt.expectedPage, result.Page)
			}
			if result.PageSize != tt.expectedPageSize {
				t.Errorf("%s: Expected pageSize %d, got %d", tt.name, tt.expectedPageSize, result.PageSize)
			}
		})
	}
}
