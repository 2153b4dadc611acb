package repository

import (
	"cablepathapi/config"
	"cablepathapi/models"

	"gorm.io/gorm"
)

// CableRepository provides data access operations for cable records.
type CableRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.Cable, error)
	GetAll(tx *gorm.DB) ([]models.Cable, error)
	GetByTerminationID(tx *gorm.DB, terminationID uint) ([]models.Cable, error)
	CountByTerminationID(tx *gorm.DB, terminationID uint) (int64, error)
	Create(tx *gorm.DB, value *models.Cable) error
	Update(tx *gorm.DB, value *models.Cable) error
	Delete(tx *gorm.DB, id uint) error
}

type cableRepository struct {
	db *gorm.DB
}

// NewCableRepository creates a new cable repository instance.
func NewCableRepository() CableRepository {
	return &cableRepository{
		db: config.DB,
	}
}

// NewCableRepositoryWithDB creates a cable repository bound to a specific
// database handle, used by tests.
func NewCableRepositoryWithDB(db *gorm.DB) CableRepository {
	return &cableRepository{db: db}
}

func (r *cableRepository) GetByID(tx *gorm.DB, id uint) (*models.Cable, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var cable models.Cable
	if err := db.Table(models.Cable{}.TableName()).Where("id = ?", id).First(&cable).Error; err != nil {
		return nil, err
	}
	return &cable, nil
}

func (r *cableRepository) GetAll(tx *gorm.DB) ([]models.Cable, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var cables []models.Cable
	if err := db.Table(models.Cable{}.TableName()).Order("id ASC").Find(&cables).Error; err != nil {
		return nil, err
	}
	return cables, nil
}

func (r *cableRepository) GetByTerminationID(tx *gorm.DB, terminationID uint) ([]models.Cable, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var cables []models.Cable
	if err := db.Table(models.Cable{}.TableName()).
		Where("termination_a_id = ? or termination_b_id = ?", terminationID, terminationID).
		Order("id ASC").Find(&cables).Error; err != nil {
		return nil, err
	}
	return cables, nil
}

// CountByTerminationID counts cables attached to a termination. Used to
// enforce the exclusivity invariant: a termination can be the endpoint of at
// most one cable.
func (r *cableRepository) CountByTerminationID(tx *gorm.DB, terminationID uint) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(models.Cable{}).
		Where("termination_a_id = ? or termination_b_id = ?", terminationID, terminationID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *cableRepository) Create(tx *gorm.DB, value *models.Cable) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(value).Error
}

func (r *cableRepository) Update(tx *gorm.DB, value *models.Cable) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Save(value).Error
}

func (r *cableRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.Cable{}, id).Error
}
