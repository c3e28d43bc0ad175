package domain

import (
	"errors"
	"testing"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
		wantErr  bool
	}{
		{name: "midnight", input: "00:00", expected: 0},
		{name: "morning", input: "09:00", expected: 540},
		{name: "afternoon", input: "14:30", expected: 870},
		{name: "last minute", input: "23:59", expected: 1439},
		{name: "missing colon", input: "0900", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "12:60", wantErr: true},
		{name: "negative hour", input: "-1:30", wantErr: true},
		{name: "non-numeric", input: "ab:cd", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseClock(tt.input)

			if tt.wantErr {
				if !errors.Is(err, ErrInvalidClock) {
					t.Fatalf("expected ErrInvalidClock, got %v", err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		minutes  int
		expected string
	}{
		{0, "00:00"},
		{540, "09:00"},
		{870, "14:30"},
		{1439, "23:59"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.minutes); got != tt.expected {
			t.Errorf("FormatClock(%d): expected %s, got %s", tt.minutes, tt.expected, got)
		}
	}
}
