package controllers

// TraceHopItem represents a single hop of a traced path
type TraceHopItem struct {
	Kind              string `json:"kind" example:"cable"`
	FromTerminationID uint   `json:"from_termination_id" example:"1"`
	ToTerminationID   uint   `json:"to_termination_id" example:"3"`
	CableID           uint   `json:"cable_id,omitempty" example:"10"`
	CableStatus       string `json:"cable_status,omitempty" example:"connected"`
	Position          int    `json:"position,omitempty" example:"1"`
	CircuitID         uint   `json:"circuit_id,omitempty"`
}

// TraceResultResponse represents the outcome of a trace
type TraceResultResponse struct {
	Status     string                `json:"status" example:"complete"`
	Reason     string                `json:"reason,omitempty" example:"NOT_CONNECTED"`
	Hops       []TraceHopItem        `json:"hops"`
	CableHops  int                   `json:"cable_hops" example:"3"`
	TerminusID uint                  `json:"terminus_id,omitempty" example:"6"`
	DeadEnd    bool                  `json:"dead_end,omitempty"`
	Branches   []TraceResultResponse `json:"branches,omitempty"`
}

// TraceRunItem represents a single trace audit record
type TraceRunItem struct {
	ID            uint   `json:"id" example:"1"`
	TerminationID uint   `json:"termination_id" example:"1"`
	Status        string `json:"status" example:"complete"`
	Reason        string `json:"reason,omitempty"`
	CableHops     int    `json:"cable_hops" example:"3"`
	TotalHops     int    `json:"total_hops" example:"5"`
	Branches      int    `json:"branches" example:"0"`
	CreatedAt     string `json:"created_at" example:"2026-08-25T10:00:00Z"`
}

// TraceRunListResponse represents the response for listing trace runs
type TraceRunListResponse struct {
	Runs []TraceRunItem `json:"runs"`
}
