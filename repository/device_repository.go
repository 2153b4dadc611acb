package repository

import (
	"cablepathapi/config"
	"cablepathapi/models"

	"gorm.io/gorm"
)

// DeviceRepository provides data access operations for device records.
type DeviceRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Device, error)
	GetAll(tx *gorm.DB) ([]models.Device, error)
	Create(tx *gorm.DB, value *models.Device) error
	Update(tx *gorm.DB, value *models.Device) error
	Delete(tx *gorm.DB, id uint) error
}

type deviceRepository struct {
	db *gorm.DB
}

// NewDeviceRepository creates a new device repository instance.
func NewDeviceRepository() DeviceRepository {
	return &deviceRepository{
		db: config.DB,
	}
}

// NewDeviceRepositoryWithDB creates a device repository bound to a specific
// database handle, used by tests.
func NewDeviceRepositoryWithDB(db *gorm.DB) DeviceRepository {
	return &deviceRepository{db: db}
}

func (r *deviceRepository) GetByID(tx *gorm.DB, id uint) (*models.Device, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var device models.Device
	if err := db.Table(models.Device{}.TableName()).Where("id = ?", id).First(&device).Error; err != nil {
		return nil, err
	}
	return &device, nil
}

func (r *deviceRepository) GetAll(tx *gorm.DB) ([]models.Device, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var devices []models.Device
	if err := db.Table(models.Device{}.TableName()).Order("id ASC").Find(&devices).Error; err != nil {
		return nil, err
	}
	return devices, nil
}

func (r *deviceRepository) Create(tx *gorm.DB, value *models.Device) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(value).Error
}

func (r *deviceRepository) Update(tx *gorm.DB, value *models.Device) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(value).Error
}

func (r *deviceRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.Device{}, id).Error
}
