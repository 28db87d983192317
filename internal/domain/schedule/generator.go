package schedule

import (
	"time"

	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/timezone"
)

// SlotInterval is the fixed granularity, in minutes, between candidate
// slot starts.
const SlotInterval = 15

const localTimeLayout = "2006-01-02T15:04:05"

// GenerateSlots expands one day's working window into candidate slots
// of serviceDuration length. date carries only the calendar components
// (its UTC Y/M/D); tz is the IANA zone the window's clock times live in.
//
// The local-to-UTC offset is computed once per day by probing UTC noon
// in the target zone. A DST transition inside the working day is not
// modeled; the whole day uses the noon offset. Known limitation.
//
// Slots are returned ascending, fully materialized, all Available. The
// caller overlays bookings afterwards so generation stays a pure
// calendar function.
func GenerateSlots(date time.Time, rule DayRule, serviceDuration int, tz string) ([]TimeSlot, error) {
	if serviceDuration <= 0 {
		return nil, httperr.Validation("invalid_duration", "Service duration must be positive.")
	}

	if !rule.Working {
		return []TimeSlot{}, nil
	}

	year, month, day := date.UTC().Date()
	offset := utcOffset(year, month, day, timezone.Location(tz))

	slots := []TimeSlot{}
	for cur := rule.StartMinutes; cur+serviceDuration <= rule.EndMinutes; cur += SlotInterval {
		localStart := time.Date(year, month, day, 0, cur, 0, 0, time.UTC)
		localEnd := time.Date(year, month, day, 0, cur+serviceDuration, 0, 0, time.UTC)

		slots = append(slots, TimeSlot{
			StartTime:    localStart.Format(localTimeLayout),
			EndTime:      localEnd.Format(localTimeLayout),
			StartTimeUTC: localStart.Add(-offset),
			EndTimeUTC:   localEnd.Add(-offset),
			Available:    true,
		})
	}

	return slots, nil
}

// utcOffset reads the zone's wall-clock hour at UTC noon of the given
// date and derives a whole-hour offset from it. Sub-hour offsets round
// down to the hour.
func utcOffset(year int, month time.Month, day int, loc *time.Location) time.Duration {
	probe := time.Date(year, month, day, 12, 0, 0, 0, time.UTC).In(loc)
	return time.Duration(12-probe.Hour()) * time.Hour
}
