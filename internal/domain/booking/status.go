package booking

import "github.com/bookable/bookable-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

// Occupies reports whether a booking in this status blocks the
// [start,end) interval for new bookings.
func (s Status) Occupies() bool {
	return s == StatusPending || s == StatusConfirmed
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// CanTransition enforces the booking state machine:
// PENDING -> CONFIRMED | CANCELLED, CONFIRMED -> COMPLETED | CANCELLED.
// CANCELLED and COMPLETED are terminal.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}

	switch from {
	case StatusPending:
		if to == StatusConfirmed || to == StatusCancelled {
			return nil
		}
	case StatusConfirmed:
		if to == StatusCompleted || to == StatusCancelled {
			return nil
		}
	}

	return httperr.Validation("invalid_status_transition", "Booking cannot move from "+string(from)+" to "+string(to)+".")
}

func InitialStatus() Status {
	return StatusPending
}
