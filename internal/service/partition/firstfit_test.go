package partition

import (
	"context"
	"reflect"
	"testing"

	"github.com/aerogate/gateplan/internal/domain"
)

func TestFirstFitPicksEarliestCompatibleGate(t *testing.T) {
	occupied := mustAircraft(t, "b", 540, 750)
	free := mustAircraft(t, "a", 540, 630)

	assignment := domain.NewAssignment()
	assignment.OpenGate(occupied) // gate 0, busy until 12:30
	assignment.OpenGate(free)     // gate 1, free from 10:30

	newcomer := mustAircraft(t, "d", 660, 750)

	gateIndex, opened := FirstFit(context.Background(), assignment, newcomer)

	if opened {
		t.Error("expected reuse of an existing gate")
	}
	if gateIndex != 1 {
		t.Errorf("expected gate 1 (first conflict-free), got %d", gateIndex)
	}
}

func TestFirstFitOpensGateWhenAllConflict(t *testing.T) {
	assignment := domain.NewAssignment()
	assignment.OpenGate(mustAircraft(t, "f", 780, 870))
	assignment.OpenGate(mustAircraft(t, "g", 780, 870))

	newcomer := mustAircraft(t, "h", 800, 860)

	gateIndex, opened := FirstFit(context.Background(), assignment, newcomer)

	if !opened {
		t.Fatal("expected a new gate to open")
	}
	if gateIndex != 2 {
		t.Errorf("expected new gate at index 2, got %d", gateIndex)
	}
	if assignment.GateCount() != 3 {
		t.Errorf("expected 3 gates, got %d", assignment.GateCount())
	}
}

func TestFirstFitChecksEveryMember(t *testing.T) {
	// The newcomer fits after the gate's last member but collides with
	// an earlier one; the frontier test alone would wrongly accept it.
	early := mustAircraft(t, "early", 540, 630)
	late := mustAircraft(t, "late", 900, 960)

	assignment := domain.NewAssignment()
	idx := assignment.OpenGate(late)
	assignment.Gates[idx].Append(early)

	newcomer := mustAircraft(t, "mid", 600, 700)

	gateIndex, opened := FirstFit(context.Background(), assignment, newcomer)

	if !opened {
		t.Error("expected conflict with a non-frontier member to force a new gate")
	}
	if gateIndex != 1 {
		t.Errorf("expected new gate at index 1, got %d", gateIndex)
	}
}

func TestFirstFitDoesNotDisturbOtherGates(t *testing.T) {
	assignment := domain.NewAssignment()
	assignment.OpenGate(mustAircraft(t, "b", 540, 750))
	gi := assignment.OpenGate(mustAircraft(t, "a", 540, 630))
	assignment.Gates[gi].Append(mustAircraft(t, "d", 660, 750))
	assignment.OpenGate(mustAircraft(t, "e", 660, 840))

	before := assignment.Clone()

	newcomer := mustAircraft(t, "f", 780, 870)
	gateIndex, _ := FirstFit(context.Background(), assignment, newcomer)

	for i := range assignment.Gates {
		if i == gateIndex {
			continue
		}
		if !reflect.DeepEqual(before.Gates[i], assignment.Gates[i]) {
			t.Errorf("gate %d changed during incremental insertion", i)
		}
	}

	// The receiving gate gained exactly the newcomer at the end.
	got := assignment.Gates[gateIndex].Aircraft
	if got[len(got)-1].ID != newcomer.ID {
		t.Error("expected the newcomer appended to the receiving gate")
	}
	if len(got) != len(before.Gates[gateIndex].Aircraft)+1 {
		t.Errorf("expected the receiving gate to grow by one, grew by %d",
			len(got)-len(before.Gates[gateIndex].Aircraft))
	}
}

func TestFirstFitCanLeaveSuboptimalLayout(t *testing.T) {
	// First fit never relocates what is already placed, so an
	// unfortunate insertion order can use more gates than the overlap
	// depth requires. A full recompute over the same aircraft gets
	// back to the optimum.
	x := mustAircraft(t, "x", 0, 50)
	y := mustAircraft(t, "y", 60, 95)
	z := mustAircraft(t, "z", 90, 110)
	v := mustAircraft(t, "v", 110, 150)
	w := mustAircraft(t, "w", 100, 120)
	input := []domain.Aircraft{x, y, z, v, w}

	assignment := domain.NewAssignment()
	for _, a := range input {
		FirstFit(context.Background(), assignment, a)
	}

	// x,y land in gate 0; z conflicts y and opens gate 1; v slots back
	// into gate 0 behind y; w then conflicts v in gate 0 and z in gate
	// 1, forcing a third gate.
	if assignment.GateCount() != 3 {
		t.Fatalf("expected 3 gates from this insertion order, got %d", assignment.GateCount())
	}

	depth := OverlapDepth(input)
	if depth != 2 {
		t.Fatalf("scenario broken: expected overlap depth 2, got %d", depth)
	}

	recomputed := NewHeapAllocator().Allocate(context.Background(), input)
	if recomputed.GateCount() != depth {
		t.Errorf("expected full recompute to reach %d gates, got %d", depth, recomputed.GateCount())
	}
}
