package partition

import (
	"testing"

	"github.com/aerogate/gateplan/internal/domain"
)

func TestOverlapDepth(t *testing.T) {
	tests := []struct {
		name     string
		aircraft []domain.Aircraft
		expected int
	}{
		{
			name:     "empty",
			aircraft: nil,
			expected: 0,
		},
		{
			name: "single aircraft",
			aircraft: []domain.Aircraft{
				{ID: "1", Arrival: 540, Departure: 630},
			},
			expected: 1,
		},
		{
			name: "disjoint intervals",
			aircraft: []domain.Aircraft{
				{ID: "1", Arrival: 540, Departure: 600},
				{ID: "2", Arrival: 660, Departure: 720},
			},
			expected: 1,
		},
		{
			name: "touching endpoints do not stack",
			aircraft: []domain.Aircraft{
				{ID: "1", Arrival: 540, Departure: 600},
				{ID: "2", Arrival: 600, Departure: 660},
			},
			expected: 1,
		},
		{
			name: "three deep at peak",
			aircraft: []domain.Aircraft{
				{ID: "b", Arrival: 540, Departure: 750},
				{ID: "d", Arrival: 660, Departure: 750},
				{ID: "e", Arrival: 660, Departure: 840},
			},
			expected: 3,
		},
		{
			name: "peak between waves",
			aircraft: []domain.Aircraft{
				{ID: "a", Arrival: 540, Departure: 630},
				{ID: "b", Arrival: 540, Departure: 750},
				{ID: "d", Arrival: 660, Departure: 750},
				{ID: "e", Arrival: 660, Departure: 840},
				{ID: "f", Arrival: 780, Departure: 870},
				{ID: "g", Arrival: 780, Departure: 870},
			},
			expected: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OverlapDepth(tt.aircraft); got != tt.expected {
				t.Errorf("expected depth %d, got %d", tt.expected, got)
			}
		})
	}
}
