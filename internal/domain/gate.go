package domain

// Gate holds an ordered sequence of non-overlapping aircraft.
// Aircraft are appended in arrival order, so the last entry is always
// the one with the latest departure.
type Gate struct {
	Aircraft []Aircraft
}

// LastDeparture returns the departure time of the most recently
// appended aircraft, or 0 for an empty gate.
func (g *Gate) LastDeparture() int {
	if len(g.Aircraft) == 0 {
		return 0
	}
	return g.Aircraft[len(g.Aircraft)-1].Departure
}

// CanAcceptAfter reports whether a can follow the gate's current
// occupant frontier. Valid only when aircraft arrive in sorted order;
// the batch allocators rely on this to test just the last member.
func (g *Gate) CanAcceptAfter(a Aircraft) bool {
	return len(g.Aircraft) == 0 || g.LastDeparture() <= a.Arrival
}

// ConflictsWith scans every member of the gate. Used by incremental
// assignment, where the candidate may arrive before existing members.
func (g *Gate) ConflictsWith(a Aircraft) bool {
	for _, other := range g.Aircraft {
		if a.Overlaps(other) {
			return true
		}
	}
	return false
}

// Contains tests membership by handle, never by field equality.
func (g *Gate) Contains(id string) bool {
	for _, a := range g.Aircraft {
		if a.ID == id {
			return true
		}
	}
	return false
}

// Append adds an aircraft to the end of the gate's sequence.
func (g *Gate) Append(a Aircraft) {
	g.Aircraft = append(g.Aircraft, a)
}

func (g *Gate) clone() Gate {
	out := Gate{Aircraft: make([]Aircraft, len(g.Aircraft))}
	copy(out.Aircraft, g.Aircraft)
	return out
}
