package services

import (
	"context"
	"fmt"

	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/repository"
)

// CircuitService provides business logic for circuit management operations.
type CircuitService interface {
	GetAll(ctx context.Context) ([]models.Circuit, error)
	GetByID(ctx context.Context, id uint) (*models.Circuit, error)
	GetTerminations(ctx context.Context, id uint) ([]models.Termination, error)
	Create(ctx context.Context, data models.Circuit) (*models.Circuit, error)
	Delete(ctx context.Context, id uint) error
}

type circuitService struct {
	circuitRepo repository.CircuitRepository
	termRepo    repository.TerminationRepository
}

// NewCircuitService creates a new circuit service instance.
func NewCircuitService() CircuitService {
	return &circuitService{
		circuitRepo: repository.NewCircuitRepository(),
		termRepo:    repository.NewTerminationRepository(),
	}
}

// NewCircuitServiceWithDeps creates a circuit service with injected repositories, used by tests.
func NewCircuitServiceWithDeps(circuitRepo repository.CircuitRepository, termRepo repository.TerminationRepository) CircuitService {
	return &circuitService{
		circuitRepo: circuitRepo,
		termRepo:    termRepo,
	}
}

func (s *circuitService) GetAll(ctx context.Context) ([]models.Circuit, error) {
	return s.circuitRepo.GetAll(nil)
}

func (s *circuitService) GetByID(ctx context.Context, id uint) (*models.Circuit, error) {
	circuit, err := s.circuitRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("circuit with id=%d not found: %w", id, err)
	}
	return circuit, nil
}

func (s *circuitService) GetTerminations(ctx context.Context, id uint) ([]models.Termination, error) {
	if _, err := s.circuitRepo.GetByID(nil, id); err != nil {
		return nil, fmt.Errorf("circuit with id=%d not found: %w", id, err)
	}
	terms, err := s.termRepo.GetByCircuitID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list terminations of circuit %d: %w", id, err)
	}
	return terms, nil
}

func (s *circuitService) Create(ctx context.Context, data models.Circuit) (*models.Circuit, error) {
	if data.CID == "" {
		return nil, fmt.Errorf("circuit CID is required")
	}
	if err := s.circuitRepo.Create(nil, &data); err != nil {
		return nil, fmt.Errorf("failed to create circuit: %w", err)
	}
	logger.Infof("Created circuit %d (%q)", data.ID, data.CID)
	return &data, nil
}

// Delete removes a circuit unless it still owns terminations.
func (s *circuitService) Delete(ctx context.Context, id uint) error {
	if _, err := s.circuitRepo.GetByID(nil, id); err != nil {
		return fmt.Errorf("circuit with id=%d not found: %w", id, err)
	}
	terms, err := s.termRepo.GetByCircuitID(nil, id)
	if err != nil {
		return fmt.Errorf("failed to check terminations of circuit %d: %w", id, err)
	}
	if len(terms) > 0 {
		return fmt.Errorf("circuit %d still owns %d terminations", id, len(terms))
	}
	if err := s.circuitRepo.Delete(nil, id); err != nil {
		return fmt.Errorf("failed to delete circuit %d: %w", id, err)
	}
	logger.Infof("Deleted circuit %d", id)
	return nil
}
