package models

// Cable operational states. Only a connected cable propagates a trace;
// planned and decommissioning cables exist in inventory but stop the walk.
const (
	CableStatusConnected       = "connected"
	CableStatusPlanned         = "planned"
	CableStatusDecommissioning = "decommissioning"
)

var cableStatuses = map[string]bool{
	CableStatusConnected:       true,
	CableStatusPlanned:         true,
	CableStatusDecommissioning: true,
}

// IsValidCableStatus reports whether status is a known operational state.
func IsValidCableStatus(status string) bool {
	return cableStatuses[status]
}

// IsTraceableCableStatus reports whether a trace may continue through a
// cable in this state.
func IsTraceableCableStatus(status string) bool {
	return status == CableStatusConnected
}

// Cable represents an undirected physical link between two terminations.
// The A/B labels are bookkeeping only and carry no traversal semantics.
type Cable struct {
	ID             uint   `gorm:"primaryKey;column:id" json:"id"`
	Label          string `gorm:"column:label" json:"label"`
	Status         string `gorm:"column:status;index" json:"status" validate:"required"`
	TerminationAID uint   `gorm:"column:termination_a_id;index" json:"termination_a_id" validate:"required"`
	TerminationBID uint   `gorm:"column:termination_b_id;index" json:"termination_b_id" validate:"required"`
}

// TableName returns the database table name for Cable model.
func (Cable) TableName() string {
	return "cable"
}

// PeerOf returns the opposite end of the cable relative to terminationID.
func (c Cable) PeerOf(terminationID uint) uint {
	if c.TerminationAID == terminationID {
		return c.TerminationBID
	}
	return c.TerminationAID
}
