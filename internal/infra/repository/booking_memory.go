package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

// BookingMemoryRepository keeps everything in process memory behind one
// mutex, so a create is as atomic as the serializable transaction in
// the gorm implementation. Used by use-case tests; not for production.
type BookingMemoryRepository struct {
	mu sync.Mutex

	Businesses []models.Business
	Staff      []models.Staff
	Services   []models.Service
	Rules      []models.AvailabilityRule
	Bookings   []models.Booking
}

func NewBookingMemoryRepository() *BookingMemoryRepository {
	return &BookingMemoryRepository{}
}

func (r *BookingMemoryRepository) GetBusinessBySlug(
	ctx context.Context,
	slug string,
) (*models.Business, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Businesses {
		if r.Businesses[i].Slug == slug {
			b := r.Businesses[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *BookingMemoryRepository) GetBusinessByID(
	ctx context.Context,
	id string,
) (*models.Business, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Businesses {
		if r.Businesses[i].ID == id {
			b := r.Businesses[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *BookingMemoryRepository) GetService(
	ctx context.Context,
	businessID string,
	serviceID string,
) (*models.Service, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Services {
		s := r.Services[i]
		if s.ID == serviceID && s.BusinessID == businessID && !s.DeletedAt.Valid {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *BookingMemoryRepository) GetStaff(
	ctx context.Context,
	businessID string,
	staffID string,
) (*models.Staff, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Staff {
		s := r.Staff[i]
		if s.ID == staffID && s.BusinessID == businessID && !s.DeletedAt.Valid {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *BookingMemoryRepository) GetSoleStaff(
	ctx context.Context,
	businessID string,
) (*models.Staff, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Staff {
		s := r.Staff[i]
		if s.BusinessID == businessID && !s.DeletedAt.Valid {
			return &s, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *BookingMemoryRepository) ListAvailabilityRules(
	ctx context.Context,
	staffID string,
) ([]models.AvailabilityRule, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var rules []models.AvailabilityRule
	for _, rule := range r.Rules {
		if rule.StaffID == staffID {
			rules = append(rules, rule)
		}
	}
	sort.Slice(rules, func(i, j int) bool {
		return rules[i].DayOfWeek < rules[j].DayOfWeek
	})
	return rules, nil
}

func (r *BookingMemoryRepository) ReplaceAvailabilityRules(
	ctx context.Context,
	staffID string,
	rules []models.AvailabilityRule,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.Rules[:0]
	for _, rule := range r.Rules {
		if rule.StaffID != staffID {
			kept = append(kept, rule)
		}
	}
	r.Rules = kept

	for i := range rules {
		if rules[i].ID == "" {
			rules[i].ID = uuid.NewString()
		}
		r.Rules = append(r.Rules, rules[i])
	}
	return nil
}

func (r *BookingMemoryRepository) ListActiveBookings(
	ctx context.Context,
	staffID string,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []models.Booking
	for _, b := range r.Bookings {
		if b.StaffID != staffID || !domain.Status(b.Status).Occupies() {
			continue
		}
		if b.StartTime.Before(start) || !b.StartTime.Before(end) {
			continue
		}
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].StartTime.Before(bookings[j].StartTime)
	})
	return bookings, nil
}

func (r *BookingMemoryRepository) HasBookingConflict(
	ctx context.Context,
	staffID string,
	start time.Time,
	end time.Time,
) (bool, error) {

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.hasConflictLocked(staffID, start, end), nil
}

func (r *BookingMemoryRepository) hasConflictLocked(staffID string, start, end time.Time) bool {
	for _, b := range r.Bookings {
		if b.StaffID != staffID || !domain.Status(b.Status).Occupies() {
			continue
		}
		if b.StartTime.Before(end) && b.EndTime.After(start) {
			return true
		}
	}
	return false
}

func (r *BookingMemoryRepository) CreateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.hasConflictLocked(b.StaffID, b.StartTime, b.EndTime) {
		return httperr.Conflict("slot_unavailable", "Time slot is no longer available.")
	}
	for _, existing := range r.Bookings {
		if existing.StaffID != b.StaffID || !domain.Status(existing.Status).Occupies() {
			continue
		}
		if existing.StartTime.Equal(b.StartTime) {
			return httperr.Conflict("slot_unavailable", "Time slot is already booked.")
		}
	}

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	r.Bookings = append(r.Bookings, *b)
	return nil
}

func (r *BookingMemoryRepository) GetBooking(
	ctx context.Context,
	businessID string,
	bookingID string,
) (*models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Bookings {
		if r.Bookings[i].ID == bookingID && r.Bookings[i].BusinessID == businessID {
			b := r.Bookings[i]
			return &b, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *BookingMemoryRepository) ListBookings(
	ctx context.Context,
	businessID string,
	filter domain.ListFilter,
) ([]models.Booking, error) {

	r.mu.Lock()
	defer r.mu.Unlock()

	var bookings []models.Booking
	for _, b := range r.Bookings {
		if b.BusinessID != businessID {
			continue
		}
		if filter.Status != "" && b.Status != filter.Status {
			continue
		}
		if filter.StaffID != "" && b.StaffID != filter.StaffID {
			continue
		}
		if filter.Start != nil && b.StartTime.Before(*filter.Start) {
			continue
		}
		if filter.End != nil && b.StartTime.After(*filter.End) {
			continue
		}
		bookings = append(bookings, b)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[j].StartTime.Before(bookings[i].StartTime)
	})
	return bookings, nil
}

func (r *BookingMemoryRepository) UpdateBooking(
	ctx context.Context,
	b *models.Booking,
) error {

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.Bookings {
		if r.Bookings[i].ID == b.ID {
			r.Bookings[i] = *b
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

// Compile-time check
var _ domain.Repository = (*BookingMemoryRepository)(nil)
