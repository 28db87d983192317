package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityRule stores one weekday's working window for one staff
// member. A non-working day is persisted as the 00:00–00:00 sentinel;
// business logic never sees the sentinel directly, it goes through
// schedule.DayRule instead.
type AvailabilityRule struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	StaffID    string `gorm:"type:uuid;uniqueIndex:idx_staff_weekday" json:"staff_id"`
	BusinessID string `gorm:"type:uuid;index" json:"business_id"`

	DayOfWeek int `gorm:"uniqueIndex:idx_staff_weekday" json:"day_of_week"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *AvailabilityRule) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
