package booking

import (
	"context"
	"testing"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/notify"
)

func TestUpdateBookingStatusConfirm(t *testing.T) {
	repo := seedRepo()
	notifier := &captureNotifier{}
	create := NewCreateBooking(repo, notifier)
	update := NewUpdateBookingStatus(repo, notifier)

	b, err := create.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := update.Execute(context.Background(), UpdateBookingStatusInput{
		BusinessID: "biz-1",
		BookingID:  b.ID,
		Status:     string(domain.StatusConfirmed),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != string(domain.StatusConfirmed) {
		t.Fatalf("expected CONFIRMED, got %s", updated.Status)
	}
	if updated.CancelledAt != nil {
		t.Fatal("CancelledAt set on confirm")
	}

	// Confirmation email from create only; confirming is silent.
	if got := len(notifier.all()); got != 1 {
		t.Fatalf("expected 1 notification, got %d", got)
	}
}

func TestUpdateBookingStatusCancelFreesSlot(t *testing.T) {
	repo := seedRepo()
	notifier := &captureNotifier{}
	create := NewCreateBooking(repo, notifier)
	update := NewUpdateBookingStatus(repo, notifier)

	b, err := create.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// Slot is taken while the booking is PENDING.
	if _, err := create.Execute(context.Background(), validInput()); !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict before cancel, got %v", err)
	}

	cancelled, err := update.Execute(context.Background(), UpdateBookingStatusInput{
		BusinessID: "biz-1",
		BookingID:  b.ID,
		Status:     string(domain.StatusCancelled),
	})
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.CancelledAt == nil {
		t.Fatal("CancelledAt not set")
	}

	events := notifier.all()
	last := events[len(events)-1]
	if last.Type != notify.EventBookingCancellation || last.BookingID != b.ID {
		t.Fatalf("unexpected cancellation event: %+v", last)
	}

	// The interval is bookable again.
	if _, err := create.Execute(context.Background(), validInput()); err != nil {
		t.Fatalf("rebook after cancel: %v", err)
	}
}

func TestUpdateBookingStatusRejectsIllegalTransitions(t *testing.T) {
	repo := seedRepo()
	notifier := &captureNotifier{}
	create := NewCreateBooking(repo, notifier)
	update := NewUpdateBookingStatus(repo, notifier)

	b, err := create.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// PENDING cannot jump straight to COMPLETED.
	_, err = update.Execute(context.Background(), UpdateBookingStatusInput{
		BusinessID: "biz-1", BookingID: b.ID, Status: string(domain.StatusCompleted),
	})
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("expected invalid_status_transition, got %v", err)
	}

	_, err = update.Execute(context.Background(), UpdateBookingStatusInput{
		BusinessID: "biz-1", BookingID: b.ID, Status: "ARCHIVED",
	})
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}

	if _, err := update.Execute(context.Background(), UpdateBookingStatusInput{
		BusinessID: "biz-1", BookingID: b.ID, Status: string(domain.StatusCancelled),
	}); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	// Cancelled is terminal.
	_, err = update.Execute(context.Background(), UpdateBookingStatusInput{
		BusinessID: "biz-1", BookingID: b.ID, Status: string(domain.StatusConfirmed),
	})
	if !httperr.IsBusiness(err, "invalid_status_transition") {
		t.Fatalf("expected invalid_status_transition after cancel, got %v", err)
	}
}

func TestUpdateBookingStatusUnknownBooking(t *testing.T) {
	repo := seedRepo()
	update := NewUpdateBookingStatus(repo, &captureNotifier{})

	_, err := update.Execute(context.Background(), UpdateBookingStatusInput{
		BusinessID: "biz-1", BookingID: "nope", Status: string(domain.StatusConfirmed),
	})
	if !httperr.IsBusiness(err, "booking_not_found") {
		t.Fatalf("expected booking_not_found, got %v", err)
	}
}

func TestListBookingsFilters(t *testing.T) {
	repo := seedRepo()
	notifier := &captureNotifier{}
	create := NewCreateBooking(repo, notifier)
	list := NewListBookings(repo)

	for _, s := range []string{"2024-06-10T14:00:00Z", "2024-06-10T15:00:00Z", "2024-06-11T14:00:00Z"} {
		in := validInput()
		in.StartTimeUTC = s
		if _, err := create.Execute(context.Background(), in); err != nil {
			t.Fatalf("create %s: %v", s, err)
		}
	}

	all, err := list.Execute(context.Background(), ListBookingsInput{BusinessID: "biz-1"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(all))
	}

	dayOnly, err := list.Execute(context.Background(), ListBookingsInput{
		BusinessID: "biz-1",
		Start:      "2024-06-10T00:00:00Z",
		End:        "2024-06-10T23:59:59Z",
	})
	if err != nil {
		t.Fatalf("list with range: %v", err)
	}
	if len(dayOnly) != 2 {
		t.Fatalf("expected 2 bookings in range, got %d", len(dayOnly))
	}

	_, err = list.Execute(context.Background(), ListBookingsInput{
		BusinessID: "biz-1", Status: "WHATEVER",
	})
	if !httperr.IsBusiness(err, "invalid_status") {
		t.Fatalf("expected invalid_status, got %v", err)
	}

	_, err = list.Execute(context.Background(), ListBookingsInput{
		BusinessID: "biz-1", Start: "yesterday",
	})
	if !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("expected invalid_date_range, got %v", err)
	}
}
