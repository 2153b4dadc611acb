package topology

import (
	"fmt"
	"sort"

	"cablepathapi/models"
)

// Snapshot is an immutable, fully indexed view of the connectivity graph:
// terminations, cable attachments, front/rear pairings and circuit sides.
// It is built once per trace request and answers every lookup from memory,
// so a walk never touches the database.
//
// Malformed topology data is not repaired during the build. Conflicts are
// recorded and surfaced through the lookup methods so the tracer can report
// them as data integrity failures instead of guessing.
type Snapshot struct {
	terminations       map[uint]*models.Termination
	cableByTermination map[uint]*models.Cable
	cableConflicts     map[uint]bool

	rearByFront         map[uint]models.PortMapping
	frontByRearPosition map[uint]map[int]uint
	positionConflicts   map[uint]map[int]bool

	circuitPeer      map[uint]uint
	circuitConflicts map[uint]bool
}

// Build indexes the given topology records into a Snapshot.
func Build(terminations []models.Termination, cables []models.Cable, mappings []models.PortMapping) *Snapshot {
	s := &Snapshot{
		terminations:        make(map[uint]*models.Termination, len(terminations)),
		cableByTermination:  make(map[uint]*models.Cable, 2*len(cables)),
		cableConflicts:      make(map[uint]bool),
		rearByFront:         make(map[uint]models.PortMapping, len(mappings)),
		frontByRearPosition: make(map[uint]map[int]uint),
		positionConflicts:   make(map[uint]map[int]bool),
		circuitPeer:         make(map[uint]uint),
		circuitConflicts:    make(map[uint]bool),
	}

	for i := range terminations {
		t := &terminations[i]
		s.terminations[t.ID] = t
	}

	for i := range cables {
		c := &cables[i]
		for _, end := range []uint{c.TerminationAID, c.TerminationBID} {
			if _, taken := s.cableByTermination[end]; taken {
				s.cableConflicts[end] = true
				continue
			}
			s.cableByTermination[end] = c
		}
	}

	for _, m := range mappings {
		if _, taken := s.rearByFront[m.FrontPortID]; !taken {
			s.rearByFront[m.FrontPortID] = m
		}
		byPos := s.frontByRearPosition[m.RearPortID]
		if byPos == nil {
			byPos = make(map[int]uint)
			s.frontByRearPosition[m.RearPortID] = byPos
		}
		if _, taken := byPos[m.Position]; taken {
			conflicts := s.positionConflicts[m.RearPortID]
			if conflicts == nil {
				conflicts = make(map[int]bool)
				s.positionConflicts[m.RearPortID] = conflicts
			}
			conflicts[m.Position] = true
			continue
		}
		byPos[m.Position] = m.FrontPortID
	}

	s.indexCircuits(terminations)
	return s
}

// indexCircuits groups circuit terminations by circuit and records the
// far-side peer of each. A circuit with a single termination has no peer
// (dead end); more than two terminations is corrupt data.
func (s *Snapshot) indexCircuits(terminations []models.Termination) {
	byCircuit := make(map[uint][]uint)
	for _, t := range terminations {
		if t.Kind != models.KindCircuitTermination || t.CircuitID == nil {
			continue
		}
		byCircuit[*t.CircuitID] = append(byCircuit[*t.CircuitID], t.ID)
	}
	for _, ids := range byCircuit {
		switch len(ids) {
		case 1:
			// single-sided circuit, no peer
		case 2:
			s.circuitPeer[ids[0]] = ids[1]
			s.circuitPeer[ids[1]] = ids[0]
		default:
			for _, id := range ids {
				s.circuitConflicts[id] = true
			}
		}
	}
}

// Termination returns the termination with the given identifier.
func (s *Snapshot) Termination(id uint) (*models.Termination, bool) {
	t, ok := s.terminations[id]
	return t, ok
}

// CableFor returns the cable attached to a termination, or nil when the
// termination is unattached.
func (s *Snapshot) CableFor(terminationID uint) *models.Cable {
	return s.cableByTermination[terminationID]
}

// CableConflict reports whether a termination is recorded as the endpoint of
// more than one cable, which violates the exclusivity invariant.
func (s *Snapshot) CableConflict(terminationID uint) bool {
	return s.cableConflicts[terminationID]
}

// RearFor returns the pairing of a front port.
func (s *Snapshot) RearFor(frontPortID uint) (models.PortMapping, bool) {
	m, ok := s.rearByFront[frontPortID]
	return m, ok
}

// FrontFor returns the front port mapped at a given position of a rear port.
func (s *Snapshot) FrontFor(rearPortID uint, position int) (uint, bool) {
	byPos, ok := s.frontByRearPosition[rearPortID]
	if !ok {
		return 0, false
	}
	front, ok := byPos[position]
	return front, ok
}

// MappedPositions returns the sorted list of positions on a rear port that
// have a front port mapped. Sorted so branch order is deterministic.
func (s *Snapshot) MappedPositions(rearPortID uint) []int {
	byPos := s.frontByRearPosition[rearPortID]
	positions := make([]int, 0, len(byPos))
	for pos := range byPos {
		positions = append(positions, pos)
	}
	sort.Ints(positions)
	return positions
}

// PositionConflict reports whether more than one front port claims the same
// position on a rear port.
func (s *Snapshot) PositionConflict(rearPortID uint, position int) bool {
	return s.positionConflicts[rearPortID][position]
}

// CircuitPeerFor returns the far-side termination of a circuit termination,
// or false for a single-sided circuit.
func (s *Snapshot) CircuitPeerFor(terminationID uint) (uint, bool) {
	peer, ok := s.circuitPeer[terminationID]
	return peer, ok
}

// CircuitConflict reports whether the circuit of this termination carries
// more than two terminations.
func (s *Snapshot) CircuitConflict(terminationID uint) bool {
	return s.circuitConflicts[terminationID]
}

// TerminationCount returns the number of terminations indexed.
func (s *Snapshot) TerminationCount() int {
	return len(s.terminations)
}

// Conflicts returns a human-readable description of every integrity conflict
// recorded at build time, ordered for stable log output.
func (s *Snapshot) Conflicts() []string {
	var conflicts []string

	ids := make([]uint, 0, len(s.cableConflicts))
	for id := range s.cableConflicts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		conflicts = append(conflicts, fmt.Sprintf("termination %d is attached to more than one cable", id))
	}

	rears := make([]uint, 0, len(s.positionConflicts))
	for rear := range s.positionConflicts {
		rears = append(rears, rear)
	}
	sort.Slice(rears, func(i, j int) bool { return rears[i] < rears[j] })
	for _, rear := range rears {
		positions := make([]int, 0, len(s.positionConflicts[rear]))
		for pos := range s.positionConflicts[rear] {
			positions = append(positions, pos)
		}
		sort.Ints(positions)
		for _, pos := range positions {
			conflicts = append(conflicts, fmt.Sprintf("multiple front ports claim position %d of rear port %d", pos, rear))
		}
	}

	ids = ids[:0]
	for id := range s.circuitConflicts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		conflicts = append(conflicts, fmt.Sprintf("circuit termination %d belongs to a circuit with more than two terminations", id))
	}

	return conflicts
}
