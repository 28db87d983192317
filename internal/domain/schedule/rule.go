package schedule

import (
	"fmt"
	"strconv"

	"github.com/bookable/bookable-api/internal/httperr"
)

// The persistence layer encodes a non-working day as 00:00–00:00 on
// both ends. DayRule keeps that sentinel out of business logic.
const sentinelClock = "00:00"

type DayRule struct {
	Working      bool
	StartMinutes int // minutes since local midnight
	EndMinutes   int
}

func Off() DayRule {
	return DayRule{}
}

func Working(startMinutes, endMinutes int) DayRule {
	return DayRule{Working: true, StartMinutes: startMinutes, EndMinutes: endMinutes}
}

// DayRuleFromClocks converts the persisted HH:mm pair into a DayRule,
// translating the sentinel into the Off variant.
func DayRuleFromClocks(startTime, endTime string) (DayRule, error) {
	if startTime == sentinelClock && endTime == sentinelClock {
		return Off(), nil
	}

	start, err := ParseClock(startTime)
	if err != nil {
		return DayRule{}, err
	}
	end, err := ParseClock(endTime)
	if err != nil {
		return DayRule{}, err
	}

	return Working(start, end), nil
}

// Clocks renders a DayRule back into the persisted HH:mm pair.
func (r DayRule) Clocks() (string, string) {
	if !r.Working {
		return sentinelClock, sentinelClock
	}
	return FormatClock(r.StartMinutes), FormatClock(r.EndMinutes)
}

// ParseClock parses a strict HH:mm (00:00–23:59) into minutes since
// midnight.
func ParseClock(clock string) (int, error) {
	if len(clock) != 5 || clock[2] != ':' {
		return 0, httperr.Validation("invalid_time_format", "Time must be in HH:mm format.")
	}
	for _, i := range []int{0, 1, 3, 4} {
		if clock[i] < '0' || clock[i] > '9' {
			return 0, httperr.Validation("invalid_time_format", "Time must be in HH:mm format.")
		}
	}

	hour, _ := strconv.Atoi(clock[:2])
	minute, _ := strconv.Atoi(clock[3:])
	if hour > 23 || minute > 59 {
		return 0, httperr.Validation("invalid_time_format", "Time must be between 00:00 and 23:59.")
	}

	return hour*60 + minute, nil
}

func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
