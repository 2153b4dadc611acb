package repository

import (
	"cablepathapi/config"
	"cablepathapi/models"

	"gorm.io/gorm"
)

// PortMappingRepository provides data access operations for front/rear port pairings.
type PortMappingRepository interface {
	GetByID(tx *gorm.DB, id uint) (*models.PortMapping, error)
	GetAll(tx *gorm.DB) ([]models.PortMapping, error)
	GetByFrontPortID(tx *gorm.DB, frontPortID uint) (*models.PortMapping, error)
	GetByRearPortID(tx *gorm.DB, rearPortID uint) ([]models.PortMapping, error)
	CountByFrontPortID(tx *gorm.DB, frontPortID uint) (int64, error)
	CountByRearPortIDAndPosition(tx *gorm.DB, rearPortID uint, position int) (int64, error)
	Create(tx *gorm.DB, value *models.PortMapping) error
	Delete(tx *gorm.DB, id uint) error
}

type portMappingRepository struct {
	db *gorm.DB
}

// NewPortMappingRepository creates a new port mapping repository instance.
func NewPortMappingRepository() PortMappingRepository {
	return &portMappingRepository{
		db: config.DB,
	}
}

// NewPortMappingRepositoryWithDB creates a port mapping repository bound to a
// specific database handle, used by tests.
func NewPortMappingRepositoryWithDB(db *gorm.DB) PortMappingRepository {
	return &portMappingRepository{db: db}
}

func (r *portMappingRepository) GetByID(tx *gorm.DB, id uint) (*models.PortMapping, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var mapping models.PortMapping
	if err := db.Table(models.PortMapping{}.TableName()).Where("id = ?", id).First(&mapping).Error; err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (r *portMappingRepository) GetAll(tx *gorm.DB) ([]models.PortMapping, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var mappings []models.PortMapping
	if err := db.Table(models.PortMapping{}.TableName()).Order("id ASC").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *portMappingRepository) GetByFrontPortID(tx *gorm.DB, frontPortID uint) (*models.PortMapping, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var mapping models.PortMapping
	if err := db.Table(models.PortMapping{}.TableName()).
		Where("front_port_id = ?", frontPortID).First(&mapping).Error; err != nil {
		return nil, err
	}
	return &mapping, nil
}

func (r *portMappingRepository) GetByRearPortID(tx *gorm.DB, rearPortID uint) ([]models.PortMapping, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var mappings []models.PortMapping
	if err := db.Table(models.PortMapping{}.TableName()).
		Where("rear_port_id = ?", rearPortID).Order("position ASC").Find(&mappings).Error; err != nil {
		return nil, err
	}
	return mappings, nil
}

func (r *portMappingRepository) CountByFrontPortID(tx *gorm.DB, frontPortID uint) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(models.PortMapping{}).
		Where("front_port_id = ?", frontPortID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *portMappingRepository) CountByRearPortIDAndPosition(tx *gorm.DB, rearPortID uint, position int) (int64, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	var count int64
	if err := db.Model(models.PortMapping{}).
		Where("rear_port_id = ? and position = ?", rearPortID, position).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *portMappingRepository) Create(tx *gorm.DB, value *models.PortMapping) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(value).Error
}

func (r *portMappingRepository) Delete(tx *gorm.DB, id uint) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Delete(&models.PortMapping{}, id).Error
}
