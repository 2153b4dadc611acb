package repository

import (
	"path/filepath"
	"testing"

	"cablepathapi/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cablepath_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.Device{},
		&models.Circuit{},
		&models.Termination{},
		&models.Cable{},
		&models.PortMapping{},
		&models.TraceRun{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func mustCreateTermination(t *testing.T, repo TerminationRepository, term *models.Termination) {
	t.Helper()
	if err := repo.Create(nil, term); err != nil {
		t.Fatalf("create termination: %v", err)
	}
}

func TestTerminationRepositoryLookups(t *testing.T) {
	db := openTestDB(t)
	repo := NewTerminationRepositoryWithDB(db)

	deviceID := uint(1)
	circuitID := uint(7)
	mustCreateTermination(t, repo, &models.Termination{Kind: models.KindInterface, Name: "eth0", DeviceID: &deviceID})
	mustCreateTermination(t, repo, &models.Termination{Kind: models.KindRearPort, Name: "rear1", DeviceID: &deviceID, Positions: 4})
	mustCreateTermination(t, repo, &models.Termination{Kind: models.KindCircuitTermination, Name: "ct-a", CircuitID: &circuitID, CircuitSide: models.CircuitSideA})

	all, err := repo.GetAll(nil)
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 terminations, got %d", len(all))
	}

	byDevice, err := repo.GetByDeviceID(nil, deviceID)
	if err != nil {
		t.Fatalf("get by device: %v", err)
	}
	if len(byDevice) != 2 {
		t.Errorf("expected 2 device terminations, got %d", len(byDevice))
	}

	byCircuit, err := repo.GetByCircuitID(nil, circuitID)
	if err != nil {
		t.Fatalf("get by circuit: %v", err)
	}
	if len(byCircuit) != 1 || byCircuit[0].Name != "ct-a" {
		t.Errorf("expected circuit termination ct-a, got %+v", byCircuit)
	}

	count, err := repo.CountByCircuitIDAndSide(nil, circuitID, models.CircuitSideA)
	if err != nil {
		t.Fatalf("count by side: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 on side A, got %d", count)
	}
	count, err = repo.CountByCircuitIDAndSide(nil, circuitID, models.CircuitSideZ)
	if err != nil {
		t.Fatalf("count by side: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 on side Z, got %d", count)
	}
}

func TestCableRepositoryAttachmentQueries(t *testing.T) {
	db := openTestDB(t)
	termRepo := NewTerminationRepositoryWithDB(db)
	cableRepo := NewCableRepositoryWithDB(db)

	deviceID := uint(1)
	a := models.Termination{Kind: models.KindInterface, Name: "eth0", DeviceID: &deviceID}
	b := models.Termination{Kind: models.KindInterface, Name: "eth1", DeviceID: &deviceID}
	c := models.Termination{Kind: models.KindInterface, Name: "eth2", DeviceID: &deviceID}
	mustCreateTermination(t, termRepo, &a)
	mustCreateTermination(t, termRepo, &b)
	mustCreateTermination(t, termRepo, &c)

	cable := models.Cable{Status: models.CableStatusConnected, TerminationAID: a.ID, TerminationBID: b.ID}
	if err := cableRepo.Create(nil, &cable); err != nil {
		t.Fatalf("create cable: %v", err)
	}

	// The attachment lookup must match on either end.
	for _, end := range []uint{a.ID, b.ID} {
		got, err := cableRepo.GetByTerminationID(nil, end)
		if err != nil {
			t.Fatalf("get by termination %d: %v", end, err)
		}
		if len(got) != 1 || got[0].ID != cable.ID {
			t.Errorf("expected cable %d on termination %d, got %+v", cable.ID, end, got)
		}
		count, err := cableRepo.CountByTerminationID(nil, end)
		if err != nil {
			t.Fatalf("count by termination %d: %v", end, err)
		}
		if count != 1 {
			t.Errorf("expected count 1 on termination %d, got %d", end, count)
		}
	}

	count, err := cableRepo.CountByTerminationID(nil, c.ID)
	if err != nil {
		t.Fatalf("count by termination: %v", err)
	}
	if count != 0 {
		t.Errorf("expected unattached termination count 0, got %d", count)
	}

	if err := cableRepo.Delete(nil, cable.ID); err != nil {
		t.Fatalf("delete cable: %v", err)
	}
	if _, err := cableRepo.GetByID(nil, cable.ID); err == nil {
		t.Errorf("expected error fetching deleted cable")
	}
}

func TestPortMappingRepositoryOrdering(t *testing.T) {
	db := openTestDB(t)
	repo := NewPortMappingRepositoryWithDB(db)

	// Insert out of order, reads must come back sorted by position.
	for _, m := range []models.PortMapping{
		{FrontPortID: 5, RearPortID: 2, Position: 3},
		{FrontPortID: 3, RearPortID: 2, Position: 1},
		{FrontPortID: 4, RearPortID: 2, Position: 2},
	} {
		mapping := m
		if err := repo.Create(nil, &mapping); err != nil {
			t.Fatalf("create mapping: %v", err)
		}
	}

	mappings, err := repo.GetByRearPortID(nil, 2)
	if err != nil {
		t.Fatalf("get by rear port: %v", err)
	}
	if len(mappings) != 3 {
		t.Fatalf("expected 3 mappings, got %d", len(mappings))
	}
	for i, mapping := range mappings {
		if mapping.Position != i+1 {
			t.Errorf("expected position %d at index %d, got %d", i+1, i, mapping.Position)
		}
	}

	count, err := repo.CountByFrontPortID(nil, 3)
	if err != nil {
		t.Fatalf("count by front port: %v", err)
	}
	if count != 1 {
		t.Errorf("expected front port 3 paired once, got %d", count)
	}

	count, err = repo.CountByRearPortIDAndPosition(nil, 2, 2)
	if err != nil {
		t.Fatalf("count by position: %v", err)
	}
	if count != 1 {
		t.Errorf("expected position 2 claimed once, got %d", count)
	}
	count, err = repo.CountByRearPortIDAndPosition(nil, 2, 4)
	if err != nil {
		t.Fatalf("count by position: %v", err)
	}
	if count != 0 {
		t.Errorf("expected position 4 unclaimed, got %d", count)
	}
}

func TestTraceRunRepositoryRecency(t *testing.T) {
	db := openTestDB(t)
	repo := NewTraceRunRepositoryWithDB(db)

	for i := 1; i <= 5; i++ {
		run := models.TraceRun{TerminationID: uint(i%2 + 1), Status: "complete", CableHops: i}
		if err := repo.Create(nil, &run); err != nil {
			t.Fatalf("create run: %v", err)
		}
	}

	recent, err := repo.GetRecent(nil, 3)
	if err != nil {
		t.Fatalf("get recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(recent))
	}
	// Newest first
	if recent[0].CableHops != 5 {
		t.Errorf("expected newest run first, got cable_hops=%d", recent[0].CableHops)
	}

	byTerm, err := repo.GetByTerminationID(nil, 2, 0)
	if err != nil {
		t.Fatalf("get by termination: %v", err)
	}
	for _, run := range byTerm {
		if run.TerminationID != 2 {
			t.Errorf("expected only termination 2 runs, got %+v", run)
		}
	}
}
