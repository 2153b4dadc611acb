package models

import "testing"

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind        string
		valid       bool
		passThrough bool
		endpoint    bool
	}{
		{KindInterface, true, false, true},
		{KindConsolePort, true, false, true},
		{KindConsoleServerPort, true, false, true},
		{KindPowerPort, true, false, true},
		{KindPowerOutlet, true, false, true},
		{KindFrontPort, true, true, false},
		{KindRearPort, true, true, false},
		{KindCircuitTermination, true, false, false},
		{"uplink", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		if got := IsValidTerminationKind(tt.kind); got != tt.valid {
			t.Errorf("IsValidTerminationKind(%q) = %v, want %v", tt.kind, got, tt.valid)
		}
		if got := IsPassThroughKind(tt.kind); got != tt.passThrough {
			t.Errorf("IsPassThroughKind(%q) = %v, want %v", tt.kind, got, tt.passThrough)
		}
		if got := IsEndpointKind(tt.kind); got != tt.endpoint {
			t.Errorf("IsEndpointKind(%q) = %v, want %v", tt.kind, got, tt.endpoint)
		}
	}
}

func TestCablePeerOf(t *testing.T) {
	cable := Cable{ID: 10, TerminationAID: 1, TerminationBID: 2}

	if got := cable.PeerOf(1); got != 2 {
		t.Errorf("PeerOf(1) = %d, want 2", got)
	}
	if got := cable.PeerOf(2); got != 1 {
		t.Errorf("PeerOf(2) = %d, want 1", got)
	}
}

func TestCableStatusTraceability(t *testing.T) {
	if !IsTraceableCableStatus(CableStatusConnected) {
		t.Errorf("connected cables must be traceable")
	}
	for _, status := range []string{CableStatusPlanned, CableStatusDecommissioning, "severed"} {
		if IsTraceableCableStatus(status) {
			t.Errorf("status %q must not be traceable", status)
		}
	}
	for _, status := range []string{CableStatusConnected, CableStatusPlanned, CableStatusDecommissioning} {
		if !IsValidCableStatus(status) {
			t.Errorf("status %q must be valid", status)
		}
	}
	if IsValidCableStatus("severed") {
		t.Errorf("unknown status must be invalid")
	}
}
