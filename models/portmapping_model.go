package models

// PortMapping pairs a front port with one position on a rear port of the
// same device. The pairing is static device topology, not a cable, and it
// exists independent of any cable attached to either port.
type PortMapping struct {
	ID          uint `gorm:"primaryKey;column:id" json:"id"`
	FrontPortID uint `gorm:"column:front_port_id;uniqueIndex" json:"front_port_id" validate:"required"`
	RearPortID  uint `gorm:"column:rear_port_id;index" json:"rear_port_id" validate:"required"`
	Position    int  `gorm:"column:position" json:"position" validate:"required,min=1"`
}

// TableName returns the database table name for PortMapping model.
func (PortMapping) TableName() string {
	return "port_mapping"
}
