package services

import (
	"context"
	"fmt"

	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/repository"
)

// PortMappingService provides business logic for front/rear port pairings.
type PortMappingService interface {
	GetAll(ctx context.Context) ([]models.PortMapping, error)
	GetByRearPort(ctx context.Context, rearPortID uint) ([]models.PortMapping, error)
	GetByFrontPort(ctx context.Context, frontPortID uint) (*models.PortMapping, error)
	Create(ctx context.Context, data models.PortMapping) (*models.PortMapping, error)
	Delete(ctx context.Context, id uint) error
}

type portMappingService struct {
	baseRepo    repository.BaseRepository
	mappingRepo repository.PortMappingRepository
	termRepo    repository.TerminationRepository
}

// NewPortMappingService creates a new port mapping service instance.
func NewPortMappingService() PortMappingService {
	return &portMappingService{
		baseRepo:    repository.NewBaseRepository(),
		mappingRepo: repository.NewPortMappingRepository(),
		termRepo:    repository.NewTerminationRepository(),
	}
}

// NewPortMappingServiceWithDeps creates a port mapping service with injected repositories, used by tests.
func NewPortMappingServiceWithDeps(baseRepo repository.BaseRepository, mappingRepo repository.PortMappingRepository, termRepo repository.TerminationRepository) PortMappingService {
	return &portMappingService{
		baseRepo:    baseRepo,
		mappingRepo: mappingRepo,
		termRepo:    termRepo,
	}
}

func (s *portMappingService) GetAll(ctx context.Context) ([]models.PortMapping, error) {
	return s.mappingRepo.GetAll(nil)
}

func (s *portMappingService) GetByRearPort(ctx context.Context, rearPortID uint) ([]models.PortMapping, error) {
	mappings, err := s.mappingRepo.GetByRearPortID(nil, rearPortID)
	if err != nil {
		return nil, fmt.Errorf("failed to list pairings of rear port %d: %w", rearPortID, err)
	}
	return mappings, nil
}

// GetByFrontPort returns the single pairing of a front port.
func (s *portMappingService) GetByFrontPort(ctx context.Context, frontPortID uint) (*models.PortMapping, error) {
	mapping, err := s.mappingRepo.GetByFrontPortID(nil, frontPortID)
	if err != nil {
		return nil, fmt.Errorf("front port %d is not paired: %w", frontPortID, err)
	}
	return mapping, nil
}

// Create validates and inserts a pairing. A front port pairs with exactly one
// rear port position on the same device, each position holds at most one
// front port, and the position must fit within the rear port's capacity.
func (s *portMappingService) Create(ctx context.Context, data models.PortMapping) (*models.PortMapping, error) {
	if data.Position < 1 {
		return nil, fmt.Errorf("position must be at least 1")
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	front, err := s.termRepo.GetByID(tx, data.FrontPortID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("front port with id=%d not found: %w", data.FrontPortID, err)
	}
	if front.Kind != models.KindFrontPort {
		tx.Rollback()
		return nil, fmt.Errorf("termination %d is a %s, not a front port", front.ID, front.Kind)
	}
	rear, err := s.termRepo.GetByID(tx, data.RearPortID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("rear port with id=%d not found: %w", data.RearPortID, err)
	}
	if rear.Kind != models.KindRearPort {
		tx.Rollback()
		return nil, fmt.Errorf("termination %d is a %s, not a rear port", rear.ID, rear.Kind)
	}
	if front.DeviceID == nil || rear.DeviceID == nil || *front.DeviceID != *rear.DeviceID {
		tx.Rollback()
		return nil, fmt.Errorf("front port %d and rear port %d must sit on the same device", front.ID, rear.ID)
	}
	if data.Position > rear.Positions {
		tx.Rollback()
		return nil, fmt.Errorf("position %d exceeds rear port %d capacity of %d", data.Position, rear.ID, rear.Positions)
	}

	frontCount, err := s.mappingRepo.CountByFrontPortID(tx, data.FrontPortID)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to check pairings of front port %d: %w", data.FrontPortID, err)
	}
	if frontCount > 0 {
		tx.Rollback()
		return nil, fmt.Errorf("front port %d is already paired", data.FrontPortID)
	}
	posCount, err := s.mappingRepo.CountByRearPortIDAndPosition(tx, data.RearPortID, data.Position)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to check position %d of rear port %d: %w", data.Position, data.RearPortID, err)
	}
	if posCount > 0 {
		tx.Rollback()
		return nil, fmt.Errorf("position %d of rear port %d is already claimed", data.Position, data.RearPortID)
	}

	if err := s.mappingRepo.Create(tx, &data); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create pairing: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit pairing creation: %w", err)
	}

	logger.Infof("Paired front port %d to rear port %d position %d", data.FrontPortID, data.RearPortID, data.Position)
	return &data, nil
}

func (s *portMappingService) Delete(ctx context.Context, id uint) error {
	if _, err := s.mappingRepo.GetByID(nil, id); err != nil {
		return fmt.Errorf("pairing with id=%d not found: %w", id, err)
	}
	if err := s.mappingRepo.Delete(nil, id); err != nil {
		return fmt.Errorf("failed to delete pairing %d: %w", id, err)
	}
	logger.Infof("Deleted pairing %d", id)
	return nil
}
