package repository

import (
	"cablepathapi/config"
	"cablepathapi/models"

	"gorm.io/gorm"
)

// TerminationRepository provides data access operations for termination records.
type TerminationRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Termination, error)
	GetAll(tx *gorm.DB) ([]models.Termination, error)
	GetByDeviceID(tx *gorm.DB, deviceID uint) ([]models.Termination, error)
	GetByCircuitID(tx *gorm.DB, circuitID uint) ([]models.Termination, error)
	CountByCircuitIDAndSide(tx *gorm.DB, circuitID uint, side string) (int64, error)
	Create(tx *gorm.DB, value *models.Termination) error
	Update(tx *gorm.DB, value *models.Termination) error
	Delete(tx *gorm.DB, id uint) error
}

type terminationRepository struct {
	db *gorm.DB
}

// NewTerminationRepository creates a new termination repository instance.
func NewTerminationRepository() TerminationRepository {
	return &terminationRepository{
		db: config.DB,
	}
}

// NewTerminationRepositoryWithDB creates a termination repository bound to a
// specific database handle, used by tests.
func NewTerminationRepositoryWithDB(db *gorm.DB) TerminationRepository {
	return &terminationRepository{db: db}
}

func (r *terminationRepository) GetByID(tx *gorm.DB, id uint) (*models.Termination, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var termination models.Termination
	if err := db.Table(models.Termination{}.TableName()).Where("id = ?", id).First(&termination).Error; err != nil {
		return nil, err
	}
	return &termination, nil
}

func (r *terminationRepository) GetAll(tx *gorm.DB) ([]models.Termination, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var terminations []models.Termination
	if err := db.Table(models.Termination{}.TableName()).Order("id ASC").Find(&terminations).Error; err != nil {
		return nil, err
	}
	return terminations, nil
}

func (r *terminationRepository) GetByDeviceID(tx *gorm.DB, deviceID uint) ([]models.Termination, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var terminations []models.Termination
	if err := db.Table(models.Termination{}.TableName()).Where("device_id = ?", deviceID).
		Order("id ASC").Find(&terminations).Error; err != nil {
		return nil, err
	}
	return terminations, nil
}

func (r *terminationRepository) GetByCircuitID(tx *gorm.DB, circuitID uint) ([]models.Termination, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var terminations []models.Termination
	if err := db.Table(models.Termination{}.TableName()).Where("circuit_id = ?", circuitID).
		Order("id ASC").Find(&terminations).Error; err != nil {
		return nil, err
	}
	return terminations, nil
}

func (r *terminationRepository) CountByCircuitIDAndSide(tx *gorm.DB, circuitID uint, side string) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(models.Termination{}).
		Where("circuit_id = ? and circuit_side = ?", circuitID, side).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *terminationRepository) Create(tx *gorm.DB, value *models.Termination) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(value).Error
}

func (r *terminationRepository) Update(tx *gorm.DB, value *models.Termination) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(value).Error
}

func (r *terminationRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.Termination{}, id).Error
}
