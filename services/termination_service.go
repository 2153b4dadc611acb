package services

import (
	"context"
	"fmt"

	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/repository"
	"cablepathapi/utils"
)

// TerminationService provides business logic for termination management operations.
type TerminationService interface {
	GetAll(ctx context.Context) ([]models.Termination, error)
	GetByID(ctx context.Context, id uint) (*models.Termination, error)
	Create(ctx context.Context, data models.Termination) (*models.Termination, error)
	Rename(ctx context.Context, id uint, name string) (*models.Termination, error)
	Delete(ctx context.Context, id uint) error
}

type terminationService struct {
	baseRepo    repository.BaseRepository
	termRepo    repository.TerminationRepository
	deviceRepo  repository.DeviceRepository
	circuitRepo repository.CircuitRepository
	cableRepo   repository.CableRepository
	mappingRepo repository.PortMappingRepository
}

// NewTerminationService creates a new termination service instance.
func NewTerminationService() TerminationService {
	return &terminationService{
		baseRepo:    repository.NewBaseRepository(),
		termRepo:    repository.NewTerminationRepository(),
		deviceRepo:  repository.NewDeviceRepository(),
		circuitRepo: repository.NewCircuitRepository(),
		cableRepo:   repository.NewCableRepository(),
		mappingRepo: repository.NewPortMappingRepository(),
	}
}

// NewTerminationServiceWithDeps creates a termination service with injected repositories, used by tests.
func NewTerminationServiceWithDeps(
	baseRepo repository.BaseRepository,
	termRepo repository.TerminationRepository,
	deviceRepo repository.DeviceRepository,
	circuitRepo repository.CircuitRepository,
	cableRepo repository.CableRepository,
	mappingRepo repository.PortMappingRepository,
) TerminationService {
	return &terminationService{
		baseRepo:    baseRepo,
		termRepo:    termRepo,
		deviceRepo:  deviceRepo,
		circuitRepo: circuitRepo,
		cableRepo:   cableRepo,
		mappingRepo: mappingRepo,
	}
}

func (s *terminationService) GetAll(ctx context.Context) ([]models.Termination, error) {
	return s.termRepo.GetAll(nil)
}

func (s *terminationService) GetByID(ctx context.Context, id uint) (*models.Termination, error) {
	term, err := s.termRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("termination with id=%d not found: %w", id, err)
	}
	return term, nil
}

// Create validates and inserts a termination. Device-attached kinds require a
// device parent, circuit terminations require a circuit parent plus side, and
// a circuit carries at most one termination per side.
func (s *terminationService) Create(ctx context.Context, data models.Termination) (*models.Termination, error) {
	if !models.IsValidTerminationKind(data.Kind) {
		return nil, fmt.Errorf("invalid termination kind %q", data.Kind)
	}
	if data.Name == "" {
		return nil, fmt.Errorf("termination name is required")
	}
	if err := utils.ValidateStruct(data); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if data.Kind == models.KindCircuitTermination {
		if data.CircuitID == nil || data.DeviceID != nil {
			return nil, fmt.Errorf("a circuit termination belongs to a circuit, not a device")
		}
		if !utils.IsValidCircuitSide(data.CircuitSide) {
			return nil, fmt.Errorf("invalid circuit side %q", data.CircuitSide)
		}
	} else {
		if data.DeviceID == nil || data.CircuitID != nil {
			return nil, fmt.Errorf("a %s belongs to a device, not a circuit", data.Kind)
		}
		if data.CircuitSide != "" {
			return nil, fmt.Errorf("circuit side is only valid on circuit terminations")
		}
	}

	switch {
	case data.Kind == models.KindRearPort:
		if data.Positions < 1 {
			data.Positions = 1
		}
	case data.Positions != 0:
		return nil, fmt.Errorf("positions is only valid on rear ports")
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	if data.DeviceID != nil {
		if _, err := s.deviceRepo.GetByID(tx, *data.DeviceID); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("device with id=%d not found: %w", *data.DeviceID, err)
		}
	}
	if data.CircuitID != nil {
		if _, err := s.circuitRepo.GetByID(tx, *data.CircuitID); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("circuit with id=%d not found: %w", *data.CircuitID, err)
		}
		count, err := s.termRepo.CountByCircuitIDAndSide(tx, *data.CircuitID, data.CircuitSide)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to check circuit %d side %s: %w", *data.CircuitID, data.CircuitSide, err)
		}
		if count > 0 {
			tx.Rollback()
			return nil, fmt.Errorf("circuit %d already has a termination on side %s", *data.CircuitID, data.CircuitSide)
		}
	}

	if err := s.termRepo.Create(tx, &data); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create termination: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit termination creation: %w", err)
	}

	logger.Infof("Created termination %d (%s %q)", data.ID, data.Kind, data.Name)
	return &data, nil
}

func (s *terminationService) Rename(ctx context.Context, id uint, name string) (*models.Termination, error) {
	if name == "" {
		return nil, fmt.Errorf("termination name is required")
	}
	term, err := s.termRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("termination with id=%d not found: %w", id, err)
	}
	term.Name = name
	if err := s.termRepo.Update(nil, term); err != nil {
		return nil, fmt.Errorf("failed to rename termination %d: %w", id, err)
	}
	return term, nil
}

// Delete removes a termination unless it is still cabled or paired.
func (s *terminationService) Delete(ctx context.Context, id uint) error {
	term, err := s.termRepo.GetByID(nil, id)
	if err != nil {
		return fmt.Errorf("termination with id=%d not found: %w", id, err)
	}

	cableCount, err := s.cableRepo.CountByTerminationID(nil, id)
	if err != nil {
		return fmt.Errorf("failed to check cables of termination %d: %w", id, err)
	}
	if cableCount > 0 {
		return fmt.Errorf("termination %d is attached to a cable, detach it first", id)
	}

	switch term.Kind {
	case models.KindFrontPort:
		count, err := s.mappingRepo.CountByFrontPortID(nil, id)
		if err != nil {
			return fmt.Errorf("failed to check pairings of front port %d: %w", id, err)
		}
		if count > 0 {
			return fmt.Errorf("front port %d is still paired to a rear port", id)
		}
	case models.KindRearPort:
		mappings, err := s.mappingRepo.GetByRearPortID(nil, id)
		if err != nil {
			return fmt.Errorf("failed to check pairings of rear port %d: %w", id, err)
		}
		if len(mappings) > 0 {
			return fmt.Errorf("rear port %d still has %d paired front ports", id, len(mappings))
		}
	}

	if err := s.termRepo.Delete(nil, id); err != nil {
		return fmt.Errorf("failed to delete termination %d: %w", id, err)
	}
	logger.Infof("Deleted termination %d (%s)", id, term.Kind)
	return nil
}
