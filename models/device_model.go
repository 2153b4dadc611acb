package models

// Device represents a physical device that owns terminations.
type Device struct {
	ID     uint   `gorm:"primaryKey;column:id" json:"id"`
	Name   string `gorm:"column:name" json:"name" validate:"required"`
	Site   string `gorm:"column:site" json:"site"`
	Status string `gorm:"column:status" json:"status"`
}

// TableName returns the database table name for Device model.
func (Device) TableName() string {
	return "device"
}
