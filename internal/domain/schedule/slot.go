package schedule

import "time"

// TimeSlot is a derived candidate interval of service-duration length.
// Never persisted; regenerated on every request.
type TimeSlot struct {
	StartTime    string    `json:"start_time"` // local wall time for display
	EndTime      string    `json:"end_time"`
	StartTimeUTC time.Time `json:"start_time_utc"`
	EndTimeUTC   time.Time `json:"end_time_utc"`
	Available    bool      `json:"available"`
}

// Overlaps reports whether the half-open intervals [aStart,aEnd) and
// [bStart,bEnd) intersect. Back-to-back intervals do not overlap.
//
// The slot-marking read path and the booking-create conflict check must
// both go through this predicate (or its SQL equivalent
// `start_time < end AND end_time > start`).
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}
