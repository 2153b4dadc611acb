package services

import (
	"context"
	"testing"

	"cablepathapi/models"
	"cablepathapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type terminationFixture struct {
	svc         TerminationService
	termRepo    repository.TerminationRepository
	deviceRepo  repository.DeviceRepository
	circuitRepo repository.CircuitRepository
	cableRepo   repository.CableRepository
	mappingRepo repository.PortMappingRepository
	db          *gorm.DB
}

func newTerminationFixture(t *testing.T) *terminationFixture {
	t.Helper()
	db := openServiceTestDB(t)
	f := &terminationFixture{
		termRepo:    repository.NewTerminationRepositoryWithDB(db),
		deviceRepo:  repository.NewDeviceRepositoryWithDB(db),
		circuitRepo: repository.NewCircuitRepositoryWithDB(db),
		cableRepo:   repository.NewCableRepositoryWithDB(db),
		mappingRepo: repository.NewPortMappingRepositoryWithDB(db),
		db:          db,
	}
	f.svc = NewTerminationServiceWithDeps(
		repository.NewBaseRepositoryWithDB(db),
		f.termRepo, f.deviceRepo, f.circuitRepo, f.cableRepo, f.mappingRepo,
	)
	return f
}

func (f *terminationFixture) seedDevice(t *testing.T, name string) uint {
	t.Helper()
	device := models.Device{Name: name, Status: "active"}
	require.NoError(t, f.deviceRepo.Create(nil, &device))
	return device.ID
}

func (f *terminationFixture) seedCircuit(t *testing.T, cid string) uint {
	t.Helper()
	circuit := models.Circuit{CID: cid, Status: "active"}
	require.NoError(t, f.circuitRepo.Create(nil, &circuit))
	return circuit.ID
}

func TestTerminationCreateOnDevice(t *testing.T) {
	f := newTerminationFixture(t)
	ctx := context.Background()
	deviceID := f.seedDevice(t, "sw1")

	term, err := f.svc.Create(ctx, models.Termination{
		Kind:     models.KindInterface,
		Name:     "eth0",
		DeviceID: &deviceID,
	})
	require.NoError(t, err)
	assert.NotZero(t, term.ID)
}

func TestTerminationCreateRejectsBadKindAndParent(t *testing.T) {
	f := newTerminationFixture(t)
	ctx := context.Background()
	deviceID := f.seedDevice(t, "sw1")
	circuitID := f.seedCircuit(t, "CID-1")

	_, err := f.svc.Create(ctx, models.Termination{Kind: "uplink", Name: "x", DeviceID: &deviceID})
	assert.ErrorContains(t, err, "invalid termination kind")

	// Device-attached kinds cannot carry a circuit parent.
	_, err = f.svc.Create(ctx, models.Termination{Kind: models.KindInterface, Name: "x", CircuitID: &circuitID})
	assert.Error(t, err)

	// Circuit terminations cannot carry a device parent.
	_, err = f.svc.Create(ctx, models.Termination{Kind: models.KindCircuitTermination, Name: "x", DeviceID: &deviceID})
	assert.Error(t, err)

	// Missing device.
	missing := uint(9999)
	_, err = f.svc.Create(ctx, models.Termination{Kind: models.KindInterface, Name: "x", DeviceID: &missing})
	assert.ErrorContains(t, err, "not found")
}

func TestTerminationCreateCircuitSides(t *testing.T) {
	f := newTerminationFixture(t)
	ctx := context.Background()
	circuitID := f.seedCircuit(t, "CID-1")

	_, err := f.svc.Create(ctx, models.Termination{
		Kind: models.KindCircuitTermination, Name: "a-side", CircuitID: &circuitID, CircuitSide: models.CircuitSideA,
	})
	require.NoError(t, err)

	// Side A is taken.
	_, err = f.svc.Create(ctx, models.Termination{
		Kind: models.KindCircuitTermination, Name: "a-dup", CircuitID: &circuitID, CircuitSide: models.CircuitSideA,
	})
	assert.ErrorContains(t, err, "already has a termination on side A")

	// Side Z is free.
	_, err = f.svc.Create(ctx, models.Termination{
		Kind: models.KindCircuitTermination, Name: "z-side", CircuitID: &circuitID, CircuitSide: models.CircuitSideZ,
	})
	assert.NoError(t, err)

	_, err = f.svc.Create(ctx, models.Termination{
		Kind: models.KindCircuitTermination, Name: "bad", CircuitID: &circuitID, CircuitSide: "B",
	})
	assert.ErrorContains(t, err, "invalid circuit side")
}

func TestTerminationCreateRearPortPositions(t *testing.T) {
	f := newTerminationFixture(t)
	ctx := context.Background()
	deviceID := f.seedDevice(t, "panel1")

	// Rear ports default to a single position.
	rear, err := f.svc.Create(ctx, models.Termination{Kind: models.KindRearPort, Name: "rear1", DeviceID: &deviceID})
	require.NoError(t, err)
	assert.Equal(t, 1, rear.Positions)

	// Non-rear kinds must not carry positions.
	_, err = f.svc.Create(ctx, models.Termination{Kind: models.KindInterface, Name: "eth0", DeviceID: &deviceID, Positions: 4})
	assert.ErrorContains(t, err, "only valid on rear ports")
}

func TestTerminationDeleteBlockedWhileWired(t *testing.T) {
	f := newTerminationFixture(t)
	ctx := context.Background()
	deviceID := f.seedDevice(t, "panel1")

	rear, err := f.svc.Create(ctx, models.Termination{Kind: models.KindRearPort, Name: "rear1", DeviceID: &deviceID, Positions: 2})
	require.NoError(t, err)
	front, err := f.svc.Create(ctx, models.Termination{Kind: models.KindFrontPort, Name: "front1", DeviceID: &deviceID})
	require.NoError(t, err)
	iface, err := f.svc.Create(ctx, models.Termination{Kind: models.KindInterface, Name: "eth0", DeviceID: &deviceID})
	require.NoError(t, err)

	mapping := models.PortMapping{FrontPortID: front.ID, RearPortID: rear.ID, Position: 1}
	require.NoError(t, f.mappingRepo.Create(nil, &mapping))
	cable := models.Cable{Status: models.CableStatusConnected, TerminationAID: iface.ID, TerminationBID: front.ID}
	require.NoError(t, f.cableRepo.Create(nil, &cable))

	// Cabled front port: blocked on the cable first.
	assert.ErrorContains(t, f.svc.Delete(ctx, front.ID), "attached to a cable")
	// Paired rear port: blocked on the pairing.
	assert.ErrorContains(t, f.svc.Delete(ctx, rear.ID), "paired front ports")

	require.NoError(t, f.cableRepo.Delete(nil, cable.ID))
	// Still paired.
	assert.ErrorContains(t, f.svc.Delete(ctx, front.ID), "paired")

	require.NoError(t, f.mappingRepo.Delete(nil, mapping.ID))
	assert.NoError(t, f.svc.Delete(ctx, front.ID))
	assert.NoError(t, f.svc.Delete(ctx, rear.ID))
	assert.NoError(t, f.svc.Delete(ctx, iface.ID))
}
