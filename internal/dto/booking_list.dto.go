package dto

import "time"

type BookingListItem struct {
	ID          string    `json:"id"`
	StaffID     string    `json:"staff_id"`
	ServiceID   string    `json:"service_id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}
