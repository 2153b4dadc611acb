package repository

import (
	"cablepathapi/config"
	"cablepathapi/models"

	"gorm.io/gorm"
)

// CircuitRepository provides data access operations for circuit records.
type CircuitRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Circuit, error)
	GetAll(tx *gorm.DB) ([]models.Circuit, error)
	Create(tx *gorm.DB, value *models.Circuit) error
	Update(tx *gorm.DB, value *models.Circuit) error
	Delete(tx *gorm.DB, id uint) error
}

type circuitRepository struct {
	db *gorm.DB
}

// NewCircuitRepository creates a new circuit repository instance.
func NewCircuitRepository() CircuitRepository {
	return &circuitRepository{
		db: config.DB,
	}
}

// NewCircuitRepositoryWithDB creates a circuit repository bound to a specific
// database handle, used by tests.
func NewCircuitRepositoryWithDB(db *gorm.DB) CircuitRepository {
	return &circuitRepository{db: db}
}

func (r *circuitRepository) GetByID(tx *gorm.DB, id uint) (*models.Circuit, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var circuit models.Circuit
	if err := db.Table(models.Circuit{}.TableName()).Where("id = ?", id).First(&circuit).Error; err != nil {
		return nil, err
	}
	return &circuit, nil
}

func (r *circuitRepository) GetAll(tx *gorm.DB) ([]models.Circuit, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var circuits []models.Circuit
	if err := db.Table(models.Circuit{}.TableName()).Order("id ASC").Find(&circuits).Error; err != nil {
		return nil, err
	}
	return circuits, nil
}

func (r *circuitRepository) Create(tx *gorm.DB, value *models.Circuit) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(value).Error
}

func (r *circuitRepository) Update(tx *gorm.DB, value *models.Circuit) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(value).Error
}

func (r *circuitRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.Circuit{}, id).Error
}
