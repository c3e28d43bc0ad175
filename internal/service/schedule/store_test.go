package schedule

import (
	"errors"
	"testing"

	"github.com/aerogate/gateplan/internal/domain"
)

func storeAircraft(t *testing.T, code string, arrival, departure int) domain.Aircraft {
	t.Helper()

	a, err := domain.NewAircraft(code, arrival, departure)
	if err != nil {
		t.Fatalf("failed to create aircraft %s: %v", code, err)
	}
	return a
}

func TestStorePreservesInsertionOrder(t *testing.T) {
	store := NewStore()

	late := storeAircraft(t, "late", 900, 960)
	early := storeAircraft(t, "early", 540, 600)

	if err := store.Add(late); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Add(early); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	all := store.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 aircraft, got %d", len(all))
	}
	if all[0].Code != "late" || all[1].Code != "early" {
		t.Error("expected aircraft in insertion order, not time order")
	}
}

func TestStoreRejectsDuplicateHandle(t *testing.T) {
	store := NewStore()
	a := storeAircraft(t, "a", 540, 630)

	if err := store.Add(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Add(a); !errors.Is(err, domain.ErrDuplicateAircraft) {
		t.Errorf("expected ErrDuplicateAircraft, got %v", err)
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()
	a := storeAircraft(t, "a", 540, 630)
	b := storeAircraft(t, "b", 540, 750)

	if err := store.Add(a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Add(b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !store.Remove(a.ID) {
		t.Error("expected removal of existing aircraft to succeed")
	}
	if store.Remove(a.ID) {
		t.Error("expected second removal to report absence")
	}
	if store.Remove("missing") {
		t.Error("expected removal of unknown handle to report absence")
	}

	if store.Len() != 1 {
		t.Fatalf("expected 1 remaining aircraft, got %d", store.Len())
	}
	if store.All()[0].ID != b.ID {
		t.Error("expected b to remain")
	}
}
