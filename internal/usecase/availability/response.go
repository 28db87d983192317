package availability

import (
	"github.com/bookable/bookable-api/internal/domain/schedule"
	"github.com/bookable/bookable-api/internal/models"
)

var dayNames = [7]string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

type RuleResponse struct {
	ID           string `json:"id"`
	DayOfWeek    int    `json:"day_of_week"`
	DayName      string `json:"day_name"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	IsWorkingDay bool   `json:"is_working_day"`
}

type AvailabilityResponse struct {
	StaffID    string         `json:"staff_id"`
	BusinessID string         `json:"business_id"`
	Rules      []RuleResponse `json:"rules"`
}

func mapRules(staffID, businessID string, rules []models.AvailabilityRule) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		StaffID:    staffID,
		BusinessID: businessID,
		Rules:      make([]RuleResponse, 0, len(rules)),
	}

	for _, r := range rules {
		dayRule, _ := schedule.DayRuleFromClocks(r.StartTime, r.EndTime)
		name := ""
		if r.DayOfWeek >= 0 && r.DayOfWeek <= 6 {
			name = dayNames[r.DayOfWeek]
		}
		resp.Rules = append(resp.Rules, RuleResponse{
			ID:           r.ID,
			DayOfWeek:    r.DayOfWeek,
			DayName:      name,
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			IsWorkingDay: dayRule.Working,
		})
	}
	return resp
}
