package services

import (
	"context"
	"fmt"

	"cablepathapi/models"
	"cablepathapi/pkg/logger"
	"cablepathapi/repository"
)

// DeviceService provides business logic for device management operations.
type DeviceService interface {
	GetAll(ctx context.Context) ([]models.Device, error)
	GetByID(ctx context.Context, id uint) (*models.Device, error)
	GetTerminations(ctx context.Context, id uint) ([]models.Termination, error)
	Create(ctx context.Context, data models.Device) (*models.Device, error)
	Update(ctx context.Context, id uint, data models.Device) (*models.Device, error)
	Delete(ctx context.Context, id uint) error
}

type deviceService struct {
	deviceRepo repository.DeviceRepository
	termRepo   repository.TerminationRepository
}

// NewDeviceService creates a new device service instance.
func NewDeviceService() DeviceService {
	return &deviceService{
		deviceRepo: repository.NewDeviceRepository(),
		termRepo:   repository.NewTerminationRepository(),
	}
}

// NewDeviceServiceWithDeps creates a device service with injected repositories, used by tests.
func NewDeviceServiceWithDeps(deviceRepo repository.DeviceRepository, termRepo repository.TerminationRepository) DeviceService {
	return &deviceService{
		deviceRepo: deviceRepo,
		termRepo:   termRepo,
	}
}

func (s *deviceService) GetAll(ctx context.Context) ([]models.Device, error) {
	return s.deviceRepo.GetAll(nil)
}

func (s *deviceService) GetByID(ctx context.Context, id uint) (*models.Device, error) {
	device, err := s.deviceRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("device with id=%d not found: %w", id, err)
	}
	return device, nil
}

func (s *deviceService) GetTerminations(ctx context.Context, id uint) ([]models.Termination, error) {
	if _, err := s.deviceRepo.GetByID(nil, id); err != nil {
		return nil, fmt.Errorf("device with id=%d not found: %w", id, err)
	}
	terms, err := s.termRepo.GetByDeviceID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list terminations of device %d: %w", id, err)
	}
	return terms, nil
}

func (s *deviceService) Create(ctx context.Context, data models.Device) (*models.Device, error) {
	if data.Name == "" {
		return nil, fmt.Errorf("device name is required")
	}
	if err := s.deviceRepo.Create(nil, &data); err != nil {
		return nil, fmt.Errorf("failed to create device: %w", err)
	}
	logger.Infof("Created device %d (%q)", data.ID, data.Name)
	return &data, nil
}

func (s *deviceService) Update(ctx context.Context, id uint, data models.Device) (*models.Device, error) {
	device, err := s.deviceRepo.GetByID(nil, id)
	if err != nil {
		return nil, fmt.Errorf("device with id=%d not found: %w", id, err)
	}
	if data.Name != "" {
		device.Name = data.Name
	}
	if data.Site != "" {
		device.Site = data.Site
	}
	if data.Status != "" {
		device.Status = data.Status
	}
	if err := s.deviceRepo.Update(nil, device); err != nil {
		return nil, fmt.Errorf("failed to update device %d: %w", id, err)
	}
	return device, nil
}

// Delete removes a device unless it still owns terminations.
func (s *deviceService) Delete(ctx context.Context, id uint) error {
	if _, err := s.deviceRepo.GetByID(nil, id); err != nil {
		return fmt.Errorf("device with id=%d not found: %w", id, err)
	}
	terms, err := s.termRepo.GetByDeviceID(nil, id)
	if err != nil {
		return fmt.Errorf("failed to check terminations of device %d: %w", id, err)
	}
	if len(terms) > 0 {
		return fmt.Errorf("device %d still owns %d terminations", id, len(terms))
	}
	if err := s.deviceRepo.Delete(nil, id); err != nil {
		return fmt.Errorf("failed to delete device %d: %w", id, err)
	}
	logger.Infof("Deleted device %d", id)
	return nil
}
