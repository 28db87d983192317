package availability

import (
	"context"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/domain/schedule"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute returns the staff's weekly rules, seeding the default week
// (Mon–Fri 09:00–17:00, weekend off) on first access so every staff
// member always has exactly seven rules.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	businessID string,
	staffID string,
) (*AvailabilityResponse, error) {

	staff, err := uc.repo.GetStaff(ctx, businessID, staffID)
	if err != nil {
		return nil, httperr.NotFoundErr("staff_not_found", "Staff member not found.")
	}

	rules, err := uc.repo.ListAvailabilityRules(ctx, staff.ID)
	if err != nil {
		return nil, err
	}

	if len(rules) == 0 {
		if err := uc.repo.ReplaceAvailabilityRules(ctx, staff.ID, defaultWeek(businessID, staff.ID)); err != nil {
			return nil, err
		}
		rules, err = uc.repo.ListAvailabilityRules(ctx, staff.ID)
		if err != nil {
			return nil, err
		}
	}

	return mapRules(staff.ID, businessID, rules), nil
}

func defaultWeek(businessID, staffID string) []models.AvailabilityRule {
	rules := make([]models.AvailabilityRule, 0, 7)
	for day := 0; day < 7; day++ {
		rule := schedule.Working(9*60, 17*60)
		if day == 0 || day == 6 {
			rule = schedule.Off()
		}
		start, end := rule.Clocks()

		rules = append(rules, models.AvailabilityRule{
			StaffID:    staffID,
			BusinessID: businessID,
			DayOfWeek:  day,
			StartTime:  start,
			EndTime:    end,
		})
	}
	return rules
}
