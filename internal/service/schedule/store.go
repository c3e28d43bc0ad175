package schedule

import (
	"github.com/aerogate/gateplan/internal/domain"
)

// Store is the ordered collection of registered aircraft, indexed by
// handle. Insertion order is preserved because the stable sort's
// tie-break, and therefore which gate an aircraft lands in, depends
// on it.
type Store struct {
	order []string
	byID  map[string]domain.Aircraft
}

func NewStore() *Store {
	return &Store{
		order: make([]string, 0),
		byID:  make(map[string]domain.Aircraft),
	}
}

func (s *Store) Add(a domain.Aircraft) error {
	if _, exists := s.byID[a.ID]; exists {
		return domain.ErrDuplicateAircraft
	}

	s.order = append(s.order, a.ID)
	s.byID[a.ID] = a
	return nil
}

func (s *Store) Get(id string) (domain.Aircraft, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Remove deletes by handle and reports whether the aircraft existed.
func (s *Store) Remove(id string) bool {
	if _, ok := s.byID[id]; !ok {
		return false
	}

	delete(s.byID, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns the aircraft in insertion order.
func (s *Store) All() []domain.Aircraft {
	out := make([]domain.Aircraft, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

func (s *Store) Len() int {
	return len(s.order)
}
