package repository

import (
	"cablepathapi/config"
	"cablepathapi/models"

	"gorm.io/gorm"
)

// TraceRunRepository provides data access operations for trace audit records.
type TraceRunRepository interface {
	Create(tx *gorm.DB, value *models.TraceRun) error
	GetRecent(tx *gorm.DB, limit int) ([]models.TraceRun, error)
	GetByTerminationID(tx *gorm.DB, terminationID uint, limit int) ([]models.TraceRun, error)
}

type traceRunRepository struct {
	db *gorm.DB
}

// NewTraceRunRepository creates a new trace run repository instance.
func NewTraceRunRepository() TraceRunRepository {
	return &traceRunRepository{
		db: config.DB,
	}
}

// NewTraceRunRepositoryWithDB creates a trace run repository bound to a
// specific database handle, used by tests.
func NewTraceRunRepositoryWithDB(db *gorm.DB) TraceRunRepository {
	return &traceRunRepository{db: db}
}

func (r *traceRunRepository) Create(tx *gorm.DB, value *models.TraceRun) error {
	db := tx
	if db == nil {
		db = r.db
	}
	return db.Create(value).Error
}

func (r *traceRunRepository) GetRecent(tx *gorm.DB, limit int) ([]models.TraceRun, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var runs []models.TraceRun
	if err := db.Table(models.TraceRun{}.TableName()).Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}

func (r *traceRunRepository) GetByTerminationID(tx *gorm.DB, terminationID uint, limit int) ([]models.TraceRun, error) {
	db := tx
	if db == nil {
		db = r.db
	}
	if limit <= 0 {
		limit = 50
	}
	var runs []models.TraceRun
	if err := db.Table(models.TraceRun{}.TableName()).
		Where("termination_id = ?", terminationID).
		Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, err
	}
	return runs, nil
}
