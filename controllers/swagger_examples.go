package controllers

// Example request/response models for Swagger documentation

// StandardErrorResponse represents a generic error response
type StandardErrorResponse struct {
	Error string `json:"error" example:"termination with id=123 not found"`
}

// MessageResponse represents a generic success message
type MessageResponse struct {
	Message string `json:"message" example:"Cable was deleted successfully"`
}

// CreatedResponse represents the response for a successful create
type CreatedResponse struct {
	Message string `json:"message" example:"Cable was created successfully"`
	ID      uint   `json:"id" example:"123"`
}

// DeviceCreateRequest represents the request body for creating a device
type DeviceCreateRequest struct {
	Name   string `json:"name" example:"edge-sw-01"`
	Site   string `json:"site" example:"dc-east"`
	Status string `json:"status" example:"active"`
}

// DeviceItem represents a single device in responses
type DeviceItem struct {
	ID     uint   `json:"id" example:"1"`
	Name   string `json:"name" example:"edge-sw-01"`
	Site   string `json:"site" example:"dc-east"`
	Status string `json:"status" example:"active"`
}

// DeviceListResponse represents the response for listing devices
type DeviceListResponse struct {
	Devices []DeviceItem `json:"devices"`
}

// CircuitCreateRequest represents the request body for creating a circuit
type CircuitCreateRequest struct {
	CID      string `json:"cid" example:"NTT-12345"`
	Provider string `json:"provider" example:"NTT"`
	Status   string `json:"status" example:"active"`
}

// CircuitItem represents a single circuit in responses
type CircuitItem struct {
	ID       uint   `json:"id" example:"1"`
	CID      string `json:"cid" example:"NTT-12345"`
	Provider string `json:"provider" example:"NTT"`
	Status   string `json:"status" example:"active"`
}

// CircuitListResponse represents the response for listing circuits
type CircuitListResponse struct {
	Circuits []CircuitItem `json:"circuits"`
}

// TerminationCreateRequest represents the request body for creating a termination
type TerminationCreateRequest struct {
	Kind        string `json:"kind" example:"interface"`
	Name        string `json:"name" example:"eth0"`
	DeviceID    *uint  `json:"device_id,omitempty" example:"1"`
	CircuitID   *uint  `json:"circuit_id,omitempty"`
	CircuitSide string `json:"circuit_side,omitempty" example:"A"`
	Positions   int    `json:"positions,omitempty" example:"12"`
}

// TerminationRenameRequest represents the request body for renaming a termination
type TerminationRenameRequest struct {
	Name string `json:"name" example:"eth1"`
}

// TerminationItem represents a single termination in responses
type TerminationItem struct {
	ID          uint   `json:"id" example:"1"`
	Kind        string `json:"kind" example:"interface"`
	Name        string `json:"name" example:"eth0"`
	DeviceID    *uint  `json:"device_id,omitempty" example:"1"`
	CircuitID   *uint  `json:"circuit_id,omitempty"`
	CircuitSide string `json:"circuit_side,omitempty" example:"A"`
	Positions   int    `json:"positions,omitempty" example:"12"`
}

// TerminationListResponse represents the response for listing terminations
type TerminationListResponse struct {
	Terminations []TerminationItem `json:"terminations"`
}

// CableCreateRequest represents the request body for creating a cable
type CableCreateRequest struct {
	Label          string `json:"label" example:"patch-0042"`
	Status         string `json:"status" example:"connected"`
	TerminationAID uint   `json:"termination_a_id" example:"1"`
	TerminationBID uint   `json:"termination_b_id" example:"2"`
}

// CableStatusRequest represents the request body for updating a cable status
type CableStatusRequest struct {
	Status string `json:"status" example:"planned"`
}

// CableItem represents a single cable in responses
type CableItem struct {
	ID             uint   `json:"id" example:"1"`
	Label          string `json:"label" example:"patch-0042"`
	Status         string `json:"status" example:"connected"`
	TerminationAID uint   `json:"termination_a_id" example:"1"`
	TerminationBID uint   `json:"termination_b_id" example:"2"`
}

// CableListResponse represents the response for listing cables
type CableListResponse struct {
	Cables []CableItem `json:"cables"`
}

// PortMappingCreateRequest represents the request body for creating a pairing
type PortMappingCreateRequest struct {
	FrontPortID uint `json:"front_port_id" example:"3"`
	RearPortID  uint `json:"rear_port_id" example:"2"`
	Position    int  `json:"position" example:"1"`
}

// PortMappingItem represents a single pairing in responses
type PortMappingItem struct {
	ID          uint `json:"id" example:"20"`
	FrontPortID uint `json:"front_port_id" example:"3"`
	RearPortID  uint `json:"rear_port_id" example:"2"`
	Position    int  `json:"position" example:"1"`
}

// PortMappingListResponse represents the response for listing pairings
type PortMappingListResponse struct {
	Mappings []PortMappingItem `json:"mappings"`
}
