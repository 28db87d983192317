package slots

import (
	"context"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/domain/schedule"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

type GetSlotsInput struct {
	BusinessSlug string
	ServiceID    string
	StaffID      string // optional for single-staff businesses
	Date         string // YYYY-MM-DD
	Timezone     string // defaults to the business timezone
}

type SlotsResponse struct {
	BusinessSlug    string              `json:"business_slug"`
	ServiceID       string              `json:"service_id"`
	StaffID         string              `json:"staff_id"`
	Date            string              `json:"date"`
	Timezone        string              `json:"timezone"`
	ServiceDuration int                 `json:"service_duration"`
	Slots           []schedule.TimeSlot `json:"slots"`
	TotalSlots      int                 `json:"total_slots"`
	AvailableSlots  int                 `json:"available_slots"`
}

type GetSlots struct {
	repo domain.Repository
}

func NewGetSlots(repo domain.Repository) *GetSlots {
	return &GetSlots{repo: repo}
}

// Execute answers "what slots are open on this date for this staff".
// The read path is advisory: a slot shown available here can be gone by
// the time the client books, and the create path re-checks on its own.
func (uc *GetSlots) Execute(
	ctx context.Context,
	in GetSlotsInput,
) (*SlotsResponse, error) {

	business, err := uc.repo.GetBusinessBySlug(ctx, in.BusinessSlug)
	if err != nil {
		return nil, httperr.NotFoundErr("business_not_found", "Business not found.")
	}

	service, err := uc.repo.GetService(ctx, business.ID, in.ServiceID)
	if err != nil {
		return nil, httperr.NotFoundErr("service_not_found", "Service not found.")
	}

	staff, err := resolveStaff(ctx, uc.repo, business, in.StaffID)
	if err != nil {
		return nil, err
	}

	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	tz := in.Timezone
	if tz == "" {
		tz = business.Timezone
	}

	rules, err := uc.repo.ListAvailabilityRules(ctx, staff.ID)
	if err != nil {
		return nil, err
	}
	if len(rules) == 0 {
		return nil, httperr.NotFoundErr("no_availability_rules", "No availability rules found for staff.")
	}

	// Weekday comes from the UTC midnight of the Y/M/D components,
	// never from the requested timezone.
	dayOfWeek := int(date.Weekday())

	var dayRuleRow *models.AvailabilityRule
	for i := range rules {
		if rules[i].DayOfWeek == dayOfWeek {
			dayRuleRow = &rules[i]
			break
		}
	}
	if dayRuleRow == nil {
		return nil, httperr.NotFoundErr("no_availability_for_day", "No availability rules for this day.")
	}

	dayRule, err := schedule.DayRuleFromClocks(dayRuleRow.StartTime, dayRuleRow.EndTime)
	if err != nil {
		return nil, err
	}

	resp := &SlotsResponse{
		BusinessSlug:    in.BusinessSlug,
		ServiceID:       in.ServiceID,
		StaffID:         staff.ID,
		Date:            in.Date,
		Timezone:        tz,
		ServiceDuration: service.DurationMinutes,
		Slots:           []schedule.TimeSlot{},
	}

	// A non-working day is a valid empty answer, distinct from the
	// missing-rule 404 above.
	if !dayRule.Working {
		return resp, nil
	}

	generated, err := schedule.GenerateSlots(date, dayRule, service.DurationMinutes, tz)
	if err != nil {
		return nil, err
	}

	dayStart := date
	dayEnd := date.AddDate(0, 0, 1)
	bookings, err := uc.repo.ListActiveBookings(ctx, staff.ID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	available := 0
	for i := range generated {
		booked := false
		for _, b := range bookings {
			if schedule.Overlaps(generated[i].StartTimeUTC, generated[i].EndTimeUTC, b.StartTime, b.EndTime) {
				booked = true
				break
			}
		}
		generated[i].Available = !booked
		if !booked {
			available++
		}
	}

	resp.Slots = generated
	resp.TotalSlots = len(generated)
	resp.AvailableSlots = available
	return resp, nil
}
