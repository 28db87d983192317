package availability

import (
	"context"
	"testing"

	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/infra/repository"
	"github.com/bookable/bookable-api/internal/models"
)

func seedRepo() *repository.BookingMemoryRepository {
	repo := repository.NewBookingMemoryRepository()
	repo.Businesses = append(repo.Businesses, models.Business{
		ID: "biz-1", Name: "Glow Studio", Slug: "glow", Timezone: "UTC", IsSingleStaff: true,
	})
	repo.Staff = append(repo.Staff, models.Staff{
		ID: "staff-1", BusinessID: "biz-1", Name: "Dana",
	})
	return repo
}

func boolPtr(b bool) *bool { return &b }

func TestGetAvailabilitySeedsDefaultWeek(t *testing.T) {
	repo := seedRepo()
	uc := NewGetAvailability(repo)

	resp, err := uc.Execute(context.Background(), "biz-1", "staff-1")
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if len(resp.Rules) != 7 {
		t.Fatalf("expected 7 rules, got %d", len(resp.Rules))
	}

	for _, r := range resp.Rules {
		weekend := r.DayOfWeek == 0 || r.DayOfWeek == 6
		if weekend {
			if r.IsWorkingDay {
				t.Fatalf("day %d should default to off", r.DayOfWeek)
			}
			if r.StartTime != "00:00" || r.EndTime != "00:00" {
				t.Fatalf("off day %d not stored as sentinel: %s-%s", r.DayOfWeek, r.StartTime, r.EndTime)
			}
			continue
		}
		if !r.IsWorkingDay || r.StartTime != "09:00" || r.EndTime != "17:00" {
			t.Fatalf("day %d default wrong: %+v", r.DayOfWeek, r)
		}
	}

	// Seeding happens once; a second read returns the same rule ids.
	again, err := uc.Execute(context.Background(), "biz-1", "staff-1")
	if err != nil {
		t.Fatalf("second Execute: %v", err)
	}
	for i := range resp.Rules {
		if resp.Rules[i].ID != again.Rules[i].ID {
			t.Fatalf("rule %d reseeded: %s vs %s", i, resp.Rules[i].ID, again.Rules[i].ID)
		}
	}
}

func TestSetAvailabilityReplacesWholeWeek(t *testing.T) {
	repo := seedRepo()
	get := NewGetAvailability(repo)
	set := NewSetAvailability(repo)

	if _, err := get.Execute(context.Background(), "biz-1", "staff-1"); err != nil {
		t.Fatalf("seed: %v", err)
	}

	resp, err := set.Execute(context.Background(), SetAvailabilityInput{
		BusinessID: "biz-1",
		StaffID:    "staff-1",
		Rules: []RuleInput{
			{DayOfWeek: 2, StartTime: "10:00", EndTime: "14:00"},
			{DayOfWeek: 4, StartTime: "12:00", EndTime: "20:00"},
			{DayOfWeek: 6, IsWorkingDay: boolPtr(false)},
		},
	})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	// Wholesale replace: the seeded seven are gone.
	if len(resp.Rules) != 3 {
		t.Fatalf("expected 3 rules after replace, got %d", len(resp.Rules))
	}
	if resp.Rules[0].DayOfWeek != 2 || resp.Rules[0].StartTime != "10:00" {
		t.Fatalf("unexpected first rule: %+v", resp.Rules[0])
	}
	if resp.Rules[2].DayOfWeek != 6 || resp.Rules[2].IsWorkingDay {
		t.Fatalf("off day not preserved: %+v", resp.Rules[2])
	}
	if resp.Rules[2].StartTime != "00:00" || resp.Rules[2].EndTime != "00:00" {
		t.Fatalf("off day not stored as sentinel: %+v", resp.Rules[2])
	}
}

func TestSetAvailabilityValidation(t *testing.T) {
	repo := seedRepo()
	uc := NewSetAvailability(repo)

	tests := []struct {
		name  string
		rules []RuleInput
		code  string
	}{
		{"empty", nil, "rules_required"},
		{"day out of range", []RuleInput{{DayOfWeek: 7, StartTime: "09:00", EndTime: "17:00"}}, "invalid_day_of_week"},
		{"negative day", []RuleInput{{DayOfWeek: -1, StartTime: "09:00", EndTime: "17:00"}}, "invalid_day_of_week"},
		{"duplicate day", []RuleInput{
			{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"},
			{DayOfWeek: 1, StartTime: "10:00", EndTime: "18:00"},
		}, "duplicate_day"},
		{"end before start", []RuleInput{{DayOfWeek: 1, StartTime: "17:00", EndTime: "09:00"}}, "invalid_time_range"},
		{"zero-length window", []RuleInput{{DayOfWeek: 1, StartTime: "09:00", EndTime: "09:00"}}, "invalid_time_range"},
		{"malformed clock", []RuleInput{{DayOfWeek: 1, StartTime: "9am", EndTime: "17:00"}}, "invalid_time_format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), SetAvailabilityInput{
				BusinessID: "biz-1", StaffID: "staff-1", Rules: tt.rules,
			})
			if !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected %s, got %v", tt.code, err)
			}
		})
	}

	if len(repo.Rules) != 0 {
		t.Fatalf("rejected input persisted %d rules", len(repo.Rules))
	}
}

func TestAvailabilityUnknownStaff(t *testing.T) {
	repo := seedRepo()

	if _, err := NewGetAvailability(repo).Execute(context.Background(), "biz-1", "nope"); !httperr.IsBusiness(err, "staff_not_found") {
		t.Fatalf("get: expected staff_not_found, got %v", err)
	}
	_, err := NewSetAvailability(repo).Execute(context.Background(), SetAvailabilityInput{
		BusinessID: "biz-1",
		StaffID:    "nope",
		Rules:      []RuleInput{{DayOfWeek: 1, StartTime: "09:00", EndTime: "17:00"}},
	})
	if !httperr.IsBusiness(err, "staff_not_found") {
		t.Fatalf("set: expected staff_not_found, got %v", err)
	}
}
