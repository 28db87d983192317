package booking

import (
	"context"
	"time"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
	"github.com/bookable/bookable-api/internal/notify"
)

type UpdateBookingStatusInput struct {
	BusinessID string
	BookingID  string
	Status     string
}

type UpdateBookingStatus struct {
	repo     domain.Repository
	notifier Notifier
}

func NewUpdateBookingStatus(repo domain.Repository, notifier Notifier) *UpdateBookingStatus {
	return &UpdateBookingStatus{repo: repo, notifier: notifier}
}

// Execute moves a booking through the status machine. Cancelling frees
// the interval (the conflict scans only consider PENDING/CONFIRMED)
// and emits a cancellation event.
func (uc *UpdateBookingStatus) Execute(
	ctx context.Context,
	in UpdateBookingStatusInput,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, in.BusinessID, in.BookingID)
	if err != nil {
		return nil, httperr.NotFoundErr("booking_not_found", "Booking not found.")
	}

	newStatus := domain.Status(in.Status)
	if !domain.IsValidStatus(newStatus) {
		return nil, httperr.Validation("invalid_status", "Unknown booking status.")
	}

	current := domain.Status(b.Status)
	if err := domain.CanTransition(current, newStatus); err != nil {
		return nil, err
	}

	cancelling := newStatus == domain.StatusCancelled && current != domain.StatusCancelled

	b.Status = string(newStatus)
	if cancelling {
		now := time.Now().UTC()
		b.CancelledAt = &now
	}

	if err := uc.repo.UpdateBooking(ctx, b); err != nil {
		return nil, err
	}

	if cancelling {
		uc.dispatchCancellation(ctx, b)
	}

	return b, nil
}

func (uc *UpdateBookingStatus) dispatchCancellation(ctx context.Context, b *models.Booking) {
	business, err := uc.repo.GetBusinessByID(ctx, b.BusinessID)
	if err != nil {
		return
	}
	service, err := uc.repo.GetService(ctx, b.BusinessID, b.ServiceID)
	if err != nil {
		return
	}

	uc.notifier.Dispatch(notify.Event{
		Type:           notify.EventBookingCancellation,
		RecipientEmail: b.ClientEmail,
		ClientName:     b.ClientName,
		BusinessName:   business.Name,
		ServiceName:    service.Name,
		StartTime:      b.StartTime,
		EndTime:        b.EndTime,
		BookingID:      b.ID,
	})
}
