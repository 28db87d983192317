package schedule

import "testing"

func TestParseClock(t *testing.T) {
	tests := []struct {
		clock   string
		minutes int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:00", 540, false},
		{"17:00", 1020, false},
		{"23:59", 1439, false},
		{"9:00", 0, true},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"12-30", 0, true},
		{"aa:bb", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseClock(tt.clock)
		if tt.wantErr {
			if err == nil {
				t.Fatalf("ParseClock(%q): expected error", tt.clock)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParseClock(%q): %v", tt.clock, err)
		}
		if got != tt.minutes {
			t.Fatalf("ParseClock(%q) = %d, want %d", tt.clock, got, tt.minutes)
		}
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(540); got != "09:00" {
		t.Fatalf("FormatClock(540) = %q", got)
	}
	if got := FormatClock(0); got != "00:00" {
		t.Fatalf("FormatClock(0) = %q", got)
	}
	if got := FormatClock(1439); got != "23:59" {
		t.Fatalf("FormatClock(1439) = %q", got)
	}
}

func TestDayRuleFromClocksSentinel(t *testing.T) {
	rule, err := DayRuleFromClocks("00:00", "00:00")
	if err != nil {
		t.Fatalf("DayRuleFromClocks: %v", err)
	}
	if rule.Working {
		t.Fatal("sentinel clocks must decode as a non-working day")
	}

	start, end := rule.Clocks()
	if start != "00:00" || end != "00:00" {
		t.Fatalf("off day must re-encode as sentinel, got %s-%s", start, end)
	}
}

func TestDayRuleFromClocksWorking(t *testing.T) {
	rule, err := DayRuleFromClocks("09:00", "17:00")
	if err != nil {
		t.Fatalf("DayRuleFromClocks: %v", err)
	}
	if !rule.Working || rule.StartMinutes != 540 || rule.EndMinutes != 1020 {
		t.Fatalf("unexpected rule: %+v", rule)
	}

	start, end := rule.Clocks()
	if start != "09:00" || end != "17:00" {
		t.Fatalf("clocks round trip: %s-%s", start, end)
	}
}

func TestDayRuleFromClocksRejectsMalformed(t *testing.T) {
	if _, err := DayRuleFromClocks("0900", "17:00"); err == nil {
		t.Fatal("expected error for malformed start clock")
	}
	if _, err := DayRuleFromClocks("09:00", "25:00"); err == nil {
		t.Fatal("expected error for malformed end clock")
	}
}
