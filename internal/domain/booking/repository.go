package booking

import (
	"context"
	"time"

	"github.com/bookable/bookable-api/internal/models"
)

type ListFilter struct {
	Status  string
	StaffID string
	Start   *time.Time
	End     *time.Time
}

type Repository interface {
	// -------- Business --------
	GetBusinessBySlug(
		ctx context.Context,
		slug string,
	) (*models.Business, error)

	GetBusinessByID(
		ctx context.Context,
		id string,
	) (*models.Business, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		businessID string,
		serviceID string,
	) (*models.Service, error)

	// -------- Staff --------
	GetStaff(
		ctx context.Context,
		businessID string,
		staffID string,
	) (*models.Staff, error)

	GetSoleStaff(
		ctx context.Context,
		businessID string,
	) (*models.Staff, error)

	// -------- Availability --------
	ListAvailabilityRules(
		ctx context.Context,
		staffID string,
	) ([]models.AvailabilityRule, error)

	// ReplaceAvailabilityRules deletes every rule for the staff and
	// inserts the new set in one transaction. Rules are never patched.
	ReplaceAvailabilityRules(
		ctx context.Context,
		staffID string,
		rules []models.AvailabilityRule,
	) error

	// -------- Booking (read / conflict) --------

	// ListActiveBookings returns PENDING/CONFIRMED bookings whose
	// start_time falls within [start, end), ascending.
	ListActiveBookings(
		ctx context.Context,
		staffID string,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	// HasBookingConflict is the advisory pre-check: any active booking
	// overlapping [start, end) in the half-open sense.
	HasBookingConflict(
		ctx context.Context,
		staffID string,
		start time.Time,
		end time.Time,
	) (bool, error)

	// -------- Booking (create / update) --------

	// CreateBooking re-runs the overlap scan and inserts atomically
	// under serializable isolation. Returns a conflict business error
	// when the interval is taken, including when the (staff_id,
	// start_time) unique index fires.
	CreateBooking(
		ctx context.Context,
		b *models.Booking,
	) error

	GetBooking(
		ctx context.Context,
		businessID string,
		bookingID string,
	) (*models.Booking, error)

	ListBookings(
		ctx context.Context,
		businessID string,
		filter ListFilter,
	) ([]models.Booking, error)

	UpdateBooking(
		ctx context.Context,
		b *models.Booking,
	) error
}
