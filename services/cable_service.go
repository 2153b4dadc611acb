package services

import (
	"context"
	"fmt"

	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/repository"
)

// CableService provides business logic for cable management operations.
type CableService interface {
	GetAll(ctx context.Context) ([]models.Cable, error)
	GetByID(ctx context.Context, id uint) (*models.Cable, error)
	Create(ctx context.Context, data models.Cable) (*models.Cable, error)
	UpdateStatus(ctx context.Context, id uint, status string) (*models.Cable, error)
	Delete(ctx context.Context, id uint) error
}

type cableService struct {
	baseRepo  repository.BaseRepository
	cableRepo repository.CableRepository
	termRepo  repository.TerminationRepository
}

// NewCableService creates a new cable service instance.
func NewCableService() CableService {
	return &cableService{
		baseRepo:  repository.NewBaseRepository(),
		cableRepo: repository.NewCableRepository(),
		termRepo:  repository.NewTerminationRepository(),
	}
}

// NewCableServiceWithDeps creates a cable service with injected repositories, used by tests.
func NewCableServiceWithDeps(baseRepo repository.BaseRepository, cableRepo repository.CableRepository, termRepo repository.TerminationRepository) CableService {
	return &cableService{
		baseRepo:  baseRepo,
		cableRepo: cableRepo,
		termRepo:  termRepo,
	}
}

func (s *cableService) GetAll(ctx context.Context) ([]models.Cable, error) {
	return s.cableRepo.GetAll(nil)
}

func (s *cableService) GetByID(ctx context.Context, id uint) (*models.Cable, error) {
	cable, err := s.cableRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("cable with id=%d not found: %w", id, err)
	}
	return cable, nil
}

// Create validates and inserts a cable. A cable connects two distinct
// existing terminations, and a termination can be the endpoint of at most
// one cable.
func (s *cableService) Create(ctx context.Context, data models.Cable) (*models.Cable, error) {
	if data.Status == "" {
		data.Status = models.CableStatusConnected
	}
	if !models.IsValidCableStatus(data.Status) {
		return nil, fmt.Errorf("invalid cable status %q", data.Status)
	}
	if data.TerminationAID == data.TerminationBID {
		return nil, fmt.Errorf("cable ends must be two distinct terminations")
	}

	tx := s.baseRepo.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", tx.Error)
	}

	for _, end := range []uint{data.TerminationAID, data.TerminationBID} {
		if _, err := s.termRepo.GetByID(tx, end); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("termination with id=%d not found: %w", end, err)
		}
		count, err := s.cableRepo.CountByTerminationID(tx, end)
		if err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("failed to check attachment of termination %d: %w", end, err)
		}
		if count > 0 {
			tx.Rollback()
			return nil, fmt.Errorf("termination %d is already attached to a cable", end)
		}
	}

	if err := s.cableRepo.Create(tx, &data); err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("failed to create cable: %w", err)
	}
	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("failed to commit cable creation: %w", err)
	}

	logger.Infof("Created cable %d (%s) between terminations %d and %d",
		data.ID, data.Status, data.TerminationAID, data.TerminationBID)
	return &data, nil
}

// UpdateStatus changes the operational state of a cable. State gates whether
// a trace may continue through the cable.
func (s *cableService) UpdateStatus(ctx context.Context, id uint, status string) (*models.Cable, error) {
	if !models.IsValidCableStatus(status) {
		return nil, fmt.Errorf("invalid cable status %q", status)
	}
	cable, err := s.cableRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("cable with id=%d not found: %w", id, err)
	}
	cable.Status = status
	if err := s.cableRepo.Update(nil, cable); err != nil {
		return nil, fmt.Errorf("failed to update cable %d: %w", id, err)
	}
	logger.Infof("Updated cable %d status to %s", id, status)
	return cable, nil
}

func (s *cableService) Delete(ctx context.Context, id uint) error {
	if _, err := s.cableRepo.GetByID(nil, id); err != nil {
		return fmt.Errorf("cable with id=%d not found: %w", id, err)
	}
	if err := s.cableRepo.Delete(nil, id); err != nil {
		return fmt.Errorf("failed to delete cable %d: %w", id, err)
	}
	logger.Infof("Deleted cable %d", id)
	return nil
}
