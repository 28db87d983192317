package notify

import "time"

type EventType string

const (
	EventBookingConfirmation EventType = "booking-confirmation"
	EventBookingCancellation EventType = "booking-cancellation"
)

// Event is the payload handed to the notification sink. Delivery is
// fire-and-forget: a failed or dropped event never affects the booking
// that produced it.
type Event struct {
	Type           EventType `json:"type"`
	RecipientEmail string    `json:"recipient_email"`
	ClientName     string    `json:"client_name"`
	BusinessName   string    `json:"business_name"`
	ServiceName    string    `json:"service_name"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	BookingID      string    `json:"booking_id"`
}
