package services

import (
	"context"
	"testing"

	"cablepathapi/models"
	"cablepathapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPortMappingFixture(t *testing.T) (PortMappingService, repository.TerminationRepository) {
	t.Helper()
	db := openServiceTestDB(t)
	termRepo := repository.NewTerminationRepositoryWithDB(db)
	svc := NewPortMappingServiceWithDeps(
		repository.NewBaseRepositoryWithDB(db),
		repository.NewPortMappingRepositoryWithDB(db),
		termRepo,
	)
	return svc, termRepo
}

func seedPort(t *testing.T, repo repository.TerminationRepository, kind, name string, deviceID uint, positions int) uint {
	t.Helper()
	term := models.Termination{Kind: kind, Name: name, DeviceID: &deviceID, Positions: positions}
	require.NoError(t, repo.Create(nil, &term))
	return term.ID
}

func TestPortMappingCreatePairsFrontToRear(t *testing.T) {
	svc, termRepo := newPortMappingFixture(t)
	ctx := context.Background()

	rear := seedPort(t, termRepo, models.KindRearPort, "rear1", 1, 4)
	front := seedPort(t, termRepo, models.KindFrontPort, "front1", 1, 0)

	mapping, err := svc.Create(ctx, models.PortMapping{FrontPortID: front, RearPortID: rear, Position: 2})
	require.NoError(t, err)
	assert.NotZero(t, mapping.ID)

	mappings, err := svc.GetByRearPort(ctx, rear)
	require.NoError(t, err)
	require.Len(t, mappings, 1)
	assert.Equal(t, 2, mappings[0].Position)
}

func TestPortMappingCreateChecksKinds(t *testing.T) {
	svc, termRepo := newPortMappingFixture(t)
	ctx := context.Background()

	rear := seedPort(t, termRepo, models.KindRearPort, "rear1", 1, 4)
	iface := seedPort(t, termRepo, models.KindInterface, "eth0", 1, 0)

	_, err := svc.Create(ctx, models.PortMapping{FrontPortID: iface, RearPortID: rear, Position: 1})
	assert.ErrorContains(t, err, "not a front port")

	front := seedPort(t, termRepo, models.KindFrontPort, "front1", 1, 0)
	_, err = svc.Create(ctx, models.PortMapping{FrontPortID: front, RearPortID: iface, Position: 1})
	assert.ErrorContains(t, err, "not a rear port")
}

func TestPortMappingCreateRequiresSameDevice(t *testing.T) {
	svc, termRepo := newPortMappingFixture(t)
	ctx := context.Background()

	rear := seedPort(t, termRepo, models.KindRearPort, "rear1", 1, 4)
	front := seedPort(t, termRepo, models.KindFrontPort, "front1", 2, 0)

	_, err := svc.Create(ctx, models.PortMapping{FrontPortID: front, RearPortID: rear, Position: 1})
	assert.ErrorContains(t, err, "same device")
}

func TestPortMappingCreateEnforcesCapacity(t *testing.T) {
	svc, termRepo := newPortMappingFixture(t)
	ctx := context.Background()

	rear := seedPort(t, termRepo, models.KindRearPort, "rear1", 1, 2)
	front := seedPort(t, termRepo, models.KindFrontPort, "front1", 1, 0)

	_, err := svc.Create(ctx, models.PortMapping{FrontPortID: front, RearPortID: rear, Position: 3})
	assert.ErrorContains(t, err, "capacity")

	_, err = svc.Create(ctx, models.PortMapping{FrontPortID: front, RearPortID: rear, Position: 0})
	assert.Error(t, err)
}

func TestPortMappingCreateRejectsDuplicateClaims(t *testing.T) {
	svc, termRepo := newPortMappingFixture(t)
	ctx := context.Background()

	rear := seedPort(t, termRepo, models.KindRearPort, "rear1", 1, 4)
	front1 := seedPort(t, termRepo, models.KindFrontPort, "front1", 1, 0)
	front2 := seedPort(t, termRepo, models.KindFrontPort, "front2", 1, 0)

	_, err := svc.Create(ctx, models.PortMapping{FrontPortID: front1, RearPortID: rear, Position: 1})
	require.NoError(t, err)

	// A front port pairs at most once.
	_, err = svc.Create(ctx, models.PortMapping{FrontPortID: front1, RearPortID: rear, Position: 2})
	assert.ErrorContains(t, err, "already paired")

	// A position holds at most one front port.
	_, err = svc.Create(ctx, models.PortMapping{FrontPortID: front2, RearPortID: rear, Position: 1})
	assert.ErrorContains(t, err, "already claimed")

	// A free position on the same rear port still works.
	_, err = svc.Create(ctx, models.PortMapping{FrontPortID: front2, RearPortID: rear, Position: 2})
	assert.NoError(t, err)
}
