package trace

import "fmt"

// Status classifies the outcome of a trace walk.
type Status string

// Trace outcome statuses.
const (
	// StatusComplete means the walk reached an endpoint termination over
	// traceable cables only.
	StatusComplete Status = "complete"
	// StatusIncomplete means the walk stopped before an endpoint; Reason
	// says why. Incomplete paths are expected results, not errors.
	StatusIncomplete Status = "incomplete"
	// StatusSplit means the walk entered a rear port with multiple mapped
	// front positions from its cable side; Branches holds one continuation
	// per position.
	StatusSplit Status = "split"
	// StatusDataError means the topology data is corrupt (for example a
	// pairing that references a missing port) and the operator must fix it.
	StatusDataError Status = "data-error"
)

// Reason details why a walk returned StatusIncomplete.
type Reason string

// Incomplete-path reasons.
const (
	ReasonNotConnected      Reason = "NOT_CONNECTED"
	ReasonCableNotTraceable Reason = "CABLE_NOT_TRACEABLE"
	ReasonNoPairing         Reason = "NO_PAIRING"
	ReasonCycleDetected     Reason = "CYCLE_DETECTED"
	ReasonHopLimitExceeded  Reason = "HOP_LIMIT_EXCEEDED"
)

// HopKind classifies one step of a traced path.
type HopKind string

// Hop kinds. Only cable hops count as cable segments; pass-through and
// circuit hops are recorded for rendering but cross no cable.
const (
	HopCable       HopKind = "cable"
	HopPassThrough HopKind = "pass-through"
	HopCircuit     HopKind = "circuit"
)

// Hop is one step of a traced path between two terminations.
type Hop struct {
	Kind              HopKind `json:"kind"`
	FromTerminationID uint    `json:"from_termination_id"`
	ToTerminationID   uint    `json:"to_termination_id"`
	CableID           uint    `json:"cable_id,omitempty"`
	CableStatus       string  `json:"cable_status,omitempty"`
	Position          int     `json:"position,omitempty"`
	CircuitID         uint    `json:"circuit_id,omitempty"`
}

// IntegrityError describes corrupt topology data encountered mid-walk.
type IntegrityError struct {
	TerminationID uint   `json:"termination_id"`
	Detail        string `json:"detail"`
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("topology integrity error at termination %d: %s", e.TerminationID, e.Detail)
}

// Result is the outcome of one trace walk. Exactly one of the status
// variants applies; Hops always holds the path walked so far.
type Result struct {
	Status     Status `json:"status"`
	Reason     Reason `json:"reason,omitempty"`
	Hops       []Hop  `json:"hops"`
	CableHops  int    `json:"cable_hops"`
	TerminusID uint   `json:"terminus_id,omitempty"`
	// DeadEnd marks a complete path whose terminus is a single-sided
	// circuit termination.
	DeadEnd   bool            `json:"dead_end,omitempty"`
	Branches  []*Result       `json:"branches,omitempty"`
	Integrity *IntegrityError `json:"integrity,omitempty"`
}
