package models

import "time"

// TraceRun records one executed trace for audit and history listing.
// The traced path itself is ephemeral and never persisted.
type TraceRun struct {
	ID            uint      `gorm:"primaryKey;column:id" json:"id"`
	TerminationID uint      `gorm:"column:termination_id;index" json:"termination_id"`
	Status        string    `gorm:"column:status" json:"status"`
	Reason        string    `gorm:"column:reason" json:"reason,omitempty"`
	CableHops     int       `gorm:"column:cable_hops" json:"cable_hops"`
	TotalHops     int       `gorm:"column:total_hops" json:"total_hops"`
	Branches      int       `gorm:"column:branches" json:"branches"`
	CreatedAt     time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName returns the database table name for TraceRun model.
func (TraceRun) TableName() string {
	return "trace_run"
}
