package services

import (
	"context"
	"path/filepath"
	"testing"

	"cablepathapi/models"
	"cablepathapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "cablepath_service_test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Device{},
		&models.Circuit{},
		&models.Termination{},
		&models.Cable{},
		&models.PortMapping{},
		&models.TraceRun{},
	))
	return db
}

func newCableFixture(t *testing.T) (CableService, repository.TerminationRepository) {
	t.Helper()
	db := openServiceTestDB(t)
	termRepo := repository.NewTerminationRepositoryWithDB(db)
	svc := NewCableServiceWithDeps(
		repository.NewBaseRepositoryWithDB(db),
		repository.NewCableRepositoryWithDB(db),
		termRepo,
	)
	return svc, termRepo
}

func seedInterface(t *testing.T, repo repository.TerminationRepository, name string) uint {
	t.Helper()
	deviceID := uint(1)
	term := models.Termination{Kind: models.KindInterface, Name: name, DeviceID: &deviceID}
	require.NoError(t, repo.Create(nil, &term))
	return term.ID
}

func TestCableCreateConnectsTwoTerminations(t *testing.T) {
	svc, termRepo := newCableFixture(t)
	ctx := context.Background()

	a := seedInterface(t, termRepo, "eth0")
	b := seedInterface(t, termRepo, "eth1")

	cable, err := svc.Create(ctx, models.Cable{TerminationAID: a, TerminationBID: b})
	require.NoError(t, err)
	assert.NotZero(t, cable.ID)
	// Status defaults to connected when omitted.
	assert.Equal(t, models.CableStatusConnected, cable.Status)
}

func TestCableCreateRejectsSameEnd(t *testing.T) {
	svc, termRepo := newCableFixture(t)
	ctx := context.Background()

	a := seedInterface(t, termRepo, "eth0")

	_, err := svc.Create(ctx, models.Cable{TerminationAID: a, TerminationBID: a})
	assert.ErrorContains(t, err, "distinct")
}

func TestCableCreateRejectsMissingEnd(t *testing.T) {
	svc, termRepo := newCableFixture(t)
	ctx := context.Background()

	a := seedInterface(t, termRepo, "eth0")

	_, err := svc.Create(ctx, models.Cable{TerminationAID: a, TerminationBID: 9999})
	assert.ErrorContains(t, err, "not found")
}

func TestCableCreateEnforcesExclusivity(t *testing.T) {
	svc, termRepo := newCableFixture(t)
	ctx := context.Background()

	a := seedInterface(t, termRepo, "eth0")
	b := seedInterface(t, termRepo, "eth1")
	c := seedInterface(t, termRepo, "eth2")

	_, err := svc.Create(ctx, models.Cable{TerminationAID: a, TerminationBID: b})
	require.NoError(t, err)

	// Second cable on an already attached end must be rejected.
	_, err = svc.Create(ctx, models.Cable{TerminationAID: b, TerminationBID: c})
	assert.ErrorContains(t, err, "already attached")

	// The untouched pair still connects fine.
	_, err = svc.Create(ctx, models.Cable{TerminationAID: c, TerminationBID: seedInterface(t, termRepo, "eth3")})
	assert.NoError(t, err)
}

func TestCableCreateRejectsInvalidStatus(t *testing.T) {
	svc, termRepo := newCableFixture(t)
	ctx := context.Background()

	a := seedInterface(t, termRepo, "eth0")
	b := seedInterface(t, termRepo, "eth1")

	_, err := svc.Create(ctx, models.Cable{Status: "unplugged", TerminationAID: a, TerminationBID: b})
	assert.ErrorContains(t, err, "invalid cable status")
}

func TestCableUpdateStatusTransitions(t *testing.T) {
	svc, termRepo := newCableFixture(t)
	ctx := context.Background()

	a := seedInterface(t, termRepo, "eth0")
	b := seedInterface(t, termRepo, "eth1")
	cable, err := svc.Create(ctx, models.Cable{TerminationAID: a, TerminationBID: b})
	require.NoError(t, err)

	updated, err := svc.UpdateStatus(ctx, cable.ID, models.CableStatusPlanned)
	require.NoError(t, err)
	assert.Equal(t, models.CableStatusPlanned, updated.Status)

	_, err = svc.UpdateStatus(ctx, cable.ID, "severed")
	assert.Error(t, err)
}

func TestCableDeleteFreesBothEnds(t *testing.T) {
	svc, termRepo := newCableFixture(t)
	ctx := context.Background()

	a := seedInterface(t, termRepo, "eth0")
	b := seedInterface(t, termRepo, "eth1")
	c := seedInterface(t, termRepo, "eth2")

	cable, err := svc.Create(ctx, models.Cable{TerminationAID: a, TerminationBID: b})
	require.NoError(t, err)
	require.NoError(t, svc.Delete(ctx, cable.ID))

	// Former ends can be cabled again.
	_, err = svc.Create(ctx, models.Cable{TerminationAID: a, TerminationBID: c})
	assert.NoError(t, err)
}
