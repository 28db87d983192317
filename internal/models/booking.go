package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Booking struct {
	ID         string `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID string `gorm:"type:uuid;index" json:"business_id"`

	StaffID   string `gorm:"type:uuid;index" json:"staff_id"`
	ServiceID string `gorm:"type:uuid;index" json:"service_id"`

	ClientName  string `gorm:"size:100;not null" json:"client_name"`
	ClientEmail string `gorm:"size:100;not null" json:"client_email"`
	ClientPhone string `gorm:"size:20" json:"client_phone"`
	Notes       string `gorm:"size:255" json:"notes"`

	// UTC instants. A partial unique index on (staff_id, start_time),
	// created in db.NewDB, guards occupying bookings starting at
	// literally the same instant; CANCELLED/COMPLETED rows stay out of
	// it so their slots can be rebooked. The serializable re-check in
	// the create path is the actual overlap guarantee.
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'PENDING';index" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
