package booking

import (
	"context"
	"strings"
	"time"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
	"github.com/bookable/bookable-api/internal/notify"
)

type CreateBookingInput struct {
	BusinessSlug string
	ServiceID    string
	StaffID      string // optional for single-staff businesses

	StartTimeUTC string // ISO-8601, must carry the literal Z suffix

	ClientName  string
	ClientEmail string
	ClientPhone string
	Notes       string
}

// Notifier is the outbound sink for booking lifecycle events.
type Notifier interface {
	Dispatch(ev notify.Event)
}

type CreateBooking struct {
	repo     domain.Repository
	notifier Notifier
}

func NewCreateBooking(repo domain.Repository, notifier Notifier) *CreateBooking {
	return &CreateBooking{repo: repo, notifier: notifier}
}

// Execute runs the two-layer conflict protocol: an advisory
// HasBookingConflict pass fast-fails the common case, then
// repo.CreateBooking re-runs the same scan inside a serializable
// transaction. Only the second check is authoritative; another request
// may commit between the two.
func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Booking, error) {

	business, err := uc.repo.GetBusinessBySlug(ctx, in.BusinessSlug)
	if err != nil {
		return nil, httperr.NotFoundErr("business_not_found", "Business not found.")
	}

	service, err := uc.repo.GetService(ctx, business.ID, in.ServiceID)
	if err != nil {
		return nil, httperr.NotFoundErr("service_not_found", "Service not found.")
	}

	start, err := parseUTCInstant(in.StartTimeUTC)
	if err != nil {
		return nil, err
	}
	end := start.Add(time.Duration(service.DurationMinutes) * time.Minute)

	staff, err := resolveStaff(ctx, uc.repo, business, in.StaffID)
	if err != nil {
		return nil, err
	}

	conflict, err := uc.repo.HasBookingConflict(ctx, staff.ID, start, end)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.Conflict("slot_unavailable", "Time slot is not available.")
	}

	if in.ClientName == "" || in.ClientEmail == "" {
		return nil, httperr.Validation("missing_client_fields", "Client name and email are required.")
	}

	b := &models.Booking{
		BusinessID:  business.ID,
		StaffID:     staff.ID,
		ServiceID:   service.ID,
		ClientName:  in.ClientName,
		ClientEmail: in.ClientEmail,
		ClientPhone: in.ClientPhone,
		Notes:       in.Notes,
		StartTime:   start,
		EndTime:     end,
		Status:      string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateBooking(ctx, b); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Event{
		Type:           notify.EventBookingConfirmation,
		RecipientEmail: b.ClientEmail,
		ClientName:     b.ClientName,
		BusinessName:   business.Name,
		ServiceName:    service.Name,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		BookingID:      b.ID,
	})

	return b, nil
}

// parseUTCInstant accepts only explicit-UTC ISO-8601 input. An offset
// like +00:00 resolves to the same instant but is rejected by policy;
// ambiguous client timestamps caused enough grief to warrant the hard
// line.
func parseUTCInstant(raw string) (time.Time, error) {
	if !strings.HasSuffix(raw, "Z") {
		return time.Time{}, httperr.Validation("invalid_start_time", "startTimeUtc must be ISO-8601 UTC with a Z suffix.")
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_start_time", "startTimeUtc must be a valid ISO-8601 instant.")
	}
	return t.UTC(), nil
}
