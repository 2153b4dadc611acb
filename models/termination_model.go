package models

// Termination kind discriminants. The set is closed: the tracer decides
// terminal vs. pass-through behavior from this value alone, so new kinds
// must be added here and in the behavior tables below.
const (
	KindInterface          = "interface"
	KindConsolePort        = "console-port"
	KindConsoleServerPort  = "console-server-port"
	KindPowerPort          = "power-port"
	KindPowerOutlet        = "power-outlet"
	KindFrontPort          = "front-port"
	KindRearPort           = "rear-port"
	KindCircuitTermination = "circuit-termination"
)

// Circuit side labels for circuit terminations.
const (
	CircuitSideA = "A"
	CircuitSideZ = "Z"
)

var terminationKinds = map[string]bool{
	KindInterface:          true,
	KindConsolePort:        true,
	KindConsoleServerPort:  true,
	KindPowerPort:          true,
	KindPowerOutlet:        true,
	KindFrontPort:          true,
	KindRearPort:           true,
	KindCircuitTermination: true,
}

var passThroughKinds = map[string]bool{
	KindFrontPort: true,
	KindRearPort:  true,
}

// IsValidTerminationKind reports whether kind is one of the known discriminants.
func IsValidTerminationKind(kind string) bool {
	return terminationKinds[kind]
}

// IsPassThroughKind reports whether a termination of this kind forwards a
// traced path through a static front/rear pairing instead of ending it.
func IsPassThroughKind(kind string) bool {
	return passThroughKinds[kind]
}

// IsEndpointKind reports whether a termination of this kind ends a traced
// path. Circuit terminations are neither: they forward through the circuit.
func IsEndpointKind(kind string) bool {
	return terminationKinds[kind] && !passThroughKinds[kind] && kind != KindCircuitTermination
}

// Termination represents a cable-attachable endpoint on a device or circuit.
// Exactly one of DeviceID/CircuitID is set depending on Kind.
type Termination struct {
	ID       uint   `gorm:"primaryKey;column:id" json:"id"`
	Kind     string `gorm:"column:kind;index" json:"kind" validate:"required"`
	Name     string `gorm:"column:name" json:"name" validate:"required"`
	DeviceID *uint  `gorm:"column:device_id;index" json:"device_id,omitempty"`
	// CircuitID and CircuitSide are set only for circuit terminations.
	CircuitID   *uint  `gorm:"column:circuit_id;index" json:"circuit_id,omitempty"`
	CircuitSide string `gorm:"column:circuit_side" json:"circuit_side,omitempty"`
	// Positions is the front-port capacity of a rear port (1..N), zero for
	// every other kind.
	Positions int `gorm:"column:positions" json:"positions,omitempty"`
}

// TableName returns the database table name for Termination model.
func (Termination) TableName() string {
	return "termination"
}
