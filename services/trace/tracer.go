package trace

import (
	"fmt"

	"cablepathapi/models"
)

// DefaultMaxHops bounds a walk when no explicit limit is configured.
const DefaultMaxHops = 50

// Topology is the read-only view of the connectivity graph that a tracer
// walks. Lookups must be pure: the same snapshot always answers the same
// way, so repeated traces against one snapshot return identical results.
type Topology interface {
	Termination(id uint) (*models.Termination, bool)
	CableFor(terminationID uint) *models.Cable
	CableConflict(terminationID uint) bool
	RearFor(frontPortID uint) (models.PortMapping, bool)
	FrontFor(rearPortID uint, position int) (uint, bool)
	MappedPositions(rearPortID uint) []int
	PositionConflict(rearPortID uint, position int) bool
	CircuitPeerFor(terminationID uint) (uint, bool)
	CircuitConflict(terminationID uint) bool
}

// Tracer walks the physical connectivity graph from a starting termination
// to the far-end endpoint(s), transparently crossing front/rear pairings and
// circuits. It holds no mutable state and is safe for concurrent use.
type Tracer struct {
	topo    Topology
	maxHops int
}

// NewTracer creates a tracer over the given topology view. maxHops <= 0
// selects DefaultMaxHops.
func NewTracer(topo Topology, maxHops int) *Tracer {
	if maxHops <= 0 {
		maxHops = DefaultMaxHops
	}
	return &Tracer{topo: topo, maxHops: maxHops}
}

// Trace computes the full path from the given termination. The walk is
// iterative: recursion happens only at a rear-port fan-out, where each
// branch continues under the shared hop budget.
func (t *Tracer) Trace(startID uint) *Result {
	start, ok := t.topo.Termination(startID)
	if !ok {
		return dataError(newHops(), 0, startID, "termination does not exist")
	}
	return t.walk(start, make(map[uint]bool), newHops(), 0)
}

// walk advances from current until it reaches an endpoint, stops on an open
// or broken link, splits at an ambiguous rear port, or hits corrupt data.
// visited and hops are owned by this walk; branches get copies.
func (t *Tracer) walk(current *models.Termination, visited map[uint]bool, hops []Hop, cableHops int) *Result {
	for {
		if len(hops) >= t.maxHops {
			return incomplete(ReasonHopLimitExceeded, hops, cableHops)
		}
		if visited[current.ID] {
			return incomplete(ReasonCycleDetected, hops, cableHops)
		}
		visited[current.ID] = true

		if t.topo.CableConflict(current.ID) {
			return dataError(hops, cableHops, current.ID, "termination is attached to more than one cable")
		}
		cable := t.topo.CableFor(current.ID)
		if cable == nil {
			return incomplete(ReasonNotConnected, hops, cableHops)
		}
		if !models.IsTraceableCableStatus(cable.Status) {
			return incomplete(ReasonCableNotTraceable, hops, cableHops)
		}

		peerID := cable.PeerOf(current.ID)
		peer, ok := t.topo.Termination(peerID)
		if !ok {
			return dataError(hops, cableHops, peerID, "cable end references a missing termination")
		}
		hops = append(hops, Hop{
			Kind:              HopCable,
			FromTerminationID: current.ID,
			ToTerminationID:   peer.ID,
			CableID:           cable.ID,
			CableStatus:       cable.Status,
		})
		cableHops++
		if visited[peer.ID] {
			return incomplete(ReasonCycleDetected, hops, cableHops)
		}
		visited[peer.ID] = true

		switch peer.Kind {
		case models.KindFrontPort:
			next, result := t.crossFrontToRear(peer, &hops, cableHops)
			if result != nil {
				return result
			}
			current = next

		case models.KindRearPort:
			positions := t.topo.MappedPositions(peer.ID)
			switch len(positions) {
			case 0:
				return incomplete(ReasonNoPairing, hops, cableHops)
			case 1:
				next, result := t.crossRearToFront(peer, positions[0], &hops, cableHops)
				if result != nil {
					return result
				}
				current = next
			default:
				// Entered from the cable side without a known originating
				// front port: the continuation is ambiguous, report every
				// branch instead of picking one.
				return t.fanOut(peer, positions, visited, hops, cableHops)
			}

		case models.KindCircuitTermination:
			next, result := t.crossCircuit(peer, &hops, cableHops)
			if result != nil {
				return result
			}
			current = next

		default:
			// Endpoint kinds (interface, console, power) end the path.
			if !models.IsEndpointKind(peer.Kind) {
				return dataError(hops, cableHops, peer.ID, fmt.Sprintf("unknown termination kind %q", peer.Kind))
			}
			return &Result{
				Status:     StatusComplete,
				Hops:       hops,
				CableHops:  cableHops,
				TerminusID: peer.ID,
			}
		}
	}
}

// crossFrontToRear follows the static pairing from a front port to its rear
// port position. Returns the rear port to continue from, or a final result.
func (t *Tracer) crossFrontToRear(front *models.Termination, hops *[]Hop, cableHops int) (*models.Termination, *Result) {
	mapping, ok := t.topo.RearFor(front.ID)
	if !ok {
		return nil, incomplete(ReasonNoPairing, *hops, cableHops)
	}
	if t.topo.PositionConflict(mapping.RearPortID, mapping.Position) {
		return nil, dataError(*hops, cableHops, front.ID,
			fmt.Sprintf("multiple front ports claim position %d of rear port %d", mapping.Position, mapping.RearPortID))
	}
	rear, ok := t.topo.Termination(mapping.RearPortID)
	if !ok {
		return nil, dataError(*hops, cableHops, front.ID, "pairing references a missing rear port")
	}
	*hops = append(*hops, Hop{
		Kind:              HopPassThrough,
		FromTerminationID: front.ID,
		ToTerminationID:   rear.ID,
		Position:          mapping.Position,
	})
	return rear, nil
}

// crossRearToFront follows the pairing from a rear port position to its
// front port. Returns the front port to continue from, or a final result.
func (t *Tracer) crossRearToFront(rear *models.Termination, position int, hops *[]Hop, cableHops int) (*models.Termination, *Result) {
	if t.topo.PositionConflict(rear.ID, position) {
		return nil, dataError(*hops, cableHops, rear.ID,
			fmt.Sprintf("multiple front ports claim position %d of rear port %d", position, rear.ID))
	}
	frontID, ok := t.topo.FrontFor(rear.ID, position)
	if !ok {
		return nil, incomplete(ReasonNoPairing, *hops, cableHops)
	}
	front, ok := t.topo.Termination(frontID)
	if !ok {
		return nil, dataError(*hops, cableHops, rear.ID, "pairing references a missing front port")
	}
	*hops = append(*hops, Hop{
		Kind:              HopPassThrough,
		FromTerminationID: rear.ID,
		ToTerminationID:   front.ID,
		Position:          position,
	})
	return front, nil
}

// crossCircuit follows a circuit termination to the far side of its circuit.
// A single-sided circuit legitimately ends the path there.
func (t *Tracer) crossCircuit(ct *models.Termination, hops *[]Hop, cableHops int) (*models.Termination, *Result) {
	if t.topo.CircuitConflict(ct.ID) {
		return nil, dataError(*hops, cableHops, ct.ID, "circuit has more than two terminations")
	}
	farID, ok := t.topo.CircuitPeerFor(ct.ID)
	if !ok {
		return nil, &Result{
			Status:     StatusComplete,
			Hops:       *hops,
			CableHops:  cableHops,
			TerminusID: ct.ID,
			DeadEnd:    true,
		}
	}
	far, ok := t.topo.Termination(farID)
	if !ok {
		return nil, dataError(*hops, cableHops, ct.ID, "circuit references a missing far-side termination")
	}
	hop := Hop{
		Kind:              HopCircuit,
		FromTerminationID: ct.ID,
		ToTerminationID:   far.ID,
	}
	if ct.CircuitID != nil {
		hop.CircuitID = *ct.CircuitID
	}
	*hops = append(*hops, hop)
	return far, nil
}

// fanOut continues the walk once per mapped front position of a rear port
// entered from its cable side. Each branch owns copies of the visited set
// and path so branches cannot poison each other.
func (t *Tracer) fanOut(rear *models.Termination, positions []int, visited map[uint]bool, hops []Hop, cableHops int) *Result {
	result := &Result{
		Status:    StatusSplit,
		Hops:      hops,
		CableHops: cableHops,
	}
	for _, position := range positions {
		branchHops := make([]Hop, len(hops), len(hops)+1)
		copy(branchHops, hops)
		branchVisited := make(map[uint]bool, len(visited))
		for id := range visited {
			branchVisited[id] = true
		}

		front, branchResult := t.crossRearToFront(rear, position, &branchHops, cableHops)
		if branchResult != nil {
			result.Branches = append(result.Branches, branchResult)
			continue
		}
		result.Branches = append(result.Branches, t.walk(front, branchVisited, branchHops, cableHops))
	}
	return result
}

func newHops() []Hop {
	return make([]Hop, 0, 8)
}

func incomplete(reason Reason, hops []Hop, cableHops int) *Result {
	return &Result{
		Status:    StatusIncomplete,
		Reason:    reason,
		Hops:      hops,
		CableHops: cableHops,
	}
}

func dataError(hops []Hop, cableHops int, terminationID uint, detail string) *Result {
	return &Result{
		Status:    StatusDataError,
		Hops:      hops,
		CableHops: cableHops,
		Integrity: &IntegrityError{
			TerminationID: terminationID,
			Detail:        detail,
		},
	}
}
