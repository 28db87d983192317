package schedule

import (
	"testing"
	"time"
)

func TestOverlaps(t *testing.T) {
	at := func(h, m int) time.Time {
		return time.Date(2024, 6, 10, h, m, 0, 0, time.UTC)
	}

	tests := []struct {
		name       string
		aStart, aEnd time.Time
		bStart, bEnd time.Time
		want       bool
	}{
		{"identical", at(10, 0), at(10, 30), at(10, 0), at(10, 30), true},
		{"partial front", at(9, 45), at(10, 15), at(10, 0), at(10, 30), true},
		{"partial back", at(10, 15), at(10, 45), at(10, 0), at(10, 30), true},
		{"contained", at(10, 5), at(10, 25), at(10, 0), at(10, 30), true},
		{"containing", at(9, 0), at(11, 0), at(10, 0), at(10, 30), true},
		{"back to back before", at(9, 30), at(10, 0), at(10, 0), at(10, 30), false},
		{"back to back after", at(10, 30), at(11, 0), at(10, 0), at(10, 30), false},
		{"disjoint", at(8, 0), at(8, 30), at(10, 0), at(10, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Fatalf("Overlaps = %v, want %v", got, tt.want)
			}
			// The predicate is symmetric.
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Fatalf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}
