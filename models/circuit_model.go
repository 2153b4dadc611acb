package models

// Circuit represents a provider circuit with one or two terminations
// (side A and optionally side Z).
type Circuit struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	CID      string `gorm:"column:cid" json:"cid" validate:"required"`
	Provider string `gorm:"column:provider" json:"provider"`
	Status   string `gorm:"column:status" json:"status"`
}

// TableName returns the database table name for Circuit model.
func (Circuit) TableName() string {
	return "circuit"
}
