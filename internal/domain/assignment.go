package domain

// Assignment is the current partition of aircraft into gates. Gates are
// identified by their position in the slice; indices are stable under
// incremental insertion and invalidated by a full recompute.
type Assignment struct {
	Gates []Gate
}

func NewAssignment() *Assignment {
	return &Assignment{Gates: make([]Gate, 0)}
}

func (p *Assignment) GateCount() int {
	return len(p.Gates)
}

// Locate returns the index of the gate holding the aircraft, or -1.
func (p *Assignment) Locate(id string) int {
	for i := range p.Gates {
		if p.Gates[i].Contains(id) {
			return i
		}
	}
	return -1
}

// Remove deletes the aircraft from whichever gate holds it and reports
// whether it was present. Empty gates are kept; callers that remove
// aircraft are required to rebuild the partition anyway.
func (p *Assignment) Remove(id string) bool {
	for gi := range p.Gates {
		gate := &p.Gates[gi]
		for ai, a := range gate.Aircraft {
			if a.ID == id {
				gate.Aircraft = append(gate.Aircraft[:ai], gate.Aircraft[ai+1:]...)
				return true
			}
		}
	}
	return false
}

// OpenGate appends a new gate holding only the given aircraft and
// returns its index.
func (p *Assignment) OpenGate(a Aircraft) int {
	p.Gates = append(p.Gates, Gate{Aircraft: []Aircraft{a}})
	return len(p.Gates) - 1
}

// Clone returns a deep copy, so snapshots never alias engine state.
func (p *Assignment) Clone() *Assignment {
	out := &Assignment{Gates: make([]Gate, len(p.Gates))}
	for i := range p.Gates {
		out.Gates[i] = p.Gates[i].clone()
	}
	return out
}

// TotalAircraft counts aircraft across all gates.
func (p *Assignment) TotalAircraft() int {
	total := 0
	for i := range p.Gates {
		total += len(p.Gates[i].Aircraft)
	}
	return total
}
