package booking

import "testing"

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to Status
		allowed  bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusPending, StatusPending, true},
		{StatusCancelled, StatusCancelled, true},
	}

	for _, tt := range tests {
		err := CanTransition(tt.from, tt.to)
		if tt.allowed && err != nil {
			t.Fatalf("CanTransition(%s, %s) = %v, want nil", tt.from, tt.to, err)
		}
		if !tt.allowed && err == nil {
			t.Fatalf("CanTransition(%s, %s) = nil, want error", tt.from, tt.to)
		}
	}
}

func TestOccupies(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, true},
		{StatusConfirmed, true},
		{StatusCancelled, false},
		{StatusCompleted, false},
	}

	for _, tt := range tests {
		if got := tt.status.Occupies(); got != tt.want {
			t.Fatalf("%s.Occupies() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		if !IsValidStatus(s) {
			t.Fatalf("IsValidStatus(%s) = false", s)
		}
	}
	for _, s := range []Status{"", "pending", "DONE", "ARCHIVED"} {
		if IsValidStatus(s) {
			t.Fatalf("IsValidStatus(%q) = true", s)
		}
	}
}
