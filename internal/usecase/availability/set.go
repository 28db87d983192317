package availability

import (
	"context"
	"fmt"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/domain/schedule"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

type RuleInput struct {
	DayOfWeek    int    `json:"day_of_week"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsWorkingDay *bool  `json:"is_working_day"`
}

type SetAvailabilityInput struct {
	BusinessID string
	StaffID    string
	Rules      []RuleInput
}

type SetAvailability struct {
	repo domain.Repository
}

func NewSetAvailability(repo domain.Repository) *SetAvailability {
	return &SetAvailability{repo: repo}
}

// Execute replaces the staff's whole week in one shot. Rules are never
// patched individually; the previous set is deleted and the new one
// inserted atomically.
func (uc *SetAvailability) Execute(
	ctx context.Context,
	in SetAvailabilityInput,
) (*AvailabilityResponse, error) {

	staff, err := uc.repo.GetStaff(ctx, in.BusinessID, in.StaffID)
	if err != nil {
		return nil, httperr.NotFoundErr("staff_not_found", "Staff member not found.")
	}

	if len(in.Rules) == 0 {
		return nil, httperr.Validation("rules_required", "At least one availability rule is required.")
	}

	seen := make(map[int]bool, len(in.Rules))
	rows := make([]models.AvailabilityRule, 0, len(in.Rules))

	for _, rule := range in.Rules {
		if rule.DayOfWeek < 0 || rule.DayOfWeek > 6 {
			return nil, httperr.Validation("invalid_day_of_week", "Day of week must be between 0 (Sunday) and 6 (Saturday).")
		}
		if seen[rule.DayOfWeek] {
			return nil, httperr.Validation("duplicate_day", fmt.Sprintf("Duplicate rule for day %d.", rule.DayOfWeek))
		}
		seen[rule.DayOfWeek] = true

		dayRule, err := toDayRule(rule)
		if err != nil {
			return nil, err
		}
		start, end := dayRule.Clocks()

		rows = append(rows, models.AvailabilityRule{
			StaffID:    staff.ID,
			BusinessID: in.BusinessID,
			DayOfWeek:  rule.DayOfWeek,
			StartTime:  start,
			EndTime:    end,
		})
	}

	if err := uc.repo.ReplaceAvailabilityRules(ctx, staff.ID, rows); err != nil {
		return nil, err
	}

	rules, err := uc.repo.ListAvailabilityRules(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	return mapRules(staff.ID, in.BusinessID, rules), nil
}

func toDayRule(in RuleInput) (schedule.DayRule, error) {
	if in.IsWorkingDay != nil && !*in.IsWorkingDay {
		return schedule.Off(), nil
	}

	start, err := schedule.ParseClock(in.StartTime)
	if err != nil {
		return schedule.DayRule{}, err
	}
	end, err := schedule.ParseClock(in.EndTime)
	if err != nil {
		return schedule.DayRule{}, err
	}
	if end <= start {
		return schedule.DayRule{}, httperr.Validation("invalid_time_range", "endTime must be after startTime.")
	}

	return schedule.Working(start, end), nil
}
