package repository

import (
	"context"
	"testing"
	"time"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

func TestCreateBookingReleasedStartIsRebookable(t *testing.T) {
	repo := NewBookingMemoryRepository()
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	for _, status := range []domain.Status{domain.StatusCancelled, domain.StatusCompleted} {
		repo.Bookings = append(repo.Bookings, models.Booking{
			ID:         "bk-" + string(status),
			BusinessID: "biz-1",
			StaffID:    "staff-1",
			ServiceID:  "svc-30",
			StartTime:  start,
			EndTime:    end,
			Status:     string(status),
		})
	}

	b := &models.Booking{
		BusinessID: "biz-1",
		StaffID:    "staff-1",
		ServiceID:  "svc-30",
		StartTime:  start,
		EndTime:    end,
		Status:     string(domain.StatusPending),
	}
	if err := repo.CreateBooking(context.Background(), b); err != nil {
		t.Fatalf("released start not rebookable: %v", err)
	}
}

func TestCreateBookingOccupiedStartConflicts(t *testing.T) {
	start := time.Date(2024, 6, 10, 14, 0, 0, 0, time.UTC)
	end := start.Add(30 * time.Minute)

	for _, status := range []domain.Status{domain.StatusPending, domain.StatusConfirmed} {
		repo := NewBookingMemoryRepository()
		repo.Bookings = append(repo.Bookings, models.Booking{
			ID:         "bk-existing",
			BusinessID: "biz-1",
			StaffID:    "staff-1",
			ServiceID:  "svc-30",
			StartTime:  start,
			EndTime:    end,
			Status:     string(status),
		})

		err := repo.CreateBooking(context.Background(), &models.Booking{
			BusinessID: "biz-1",
			StaffID:    "staff-1",
			ServiceID:  "svc-30",
			StartTime:  start,
			EndTime:    end,
			Status:     string(domain.StatusPending),
		})
		if !httperr.IsKind(err, httperr.KindConflict) {
			t.Fatalf("status %s: expected conflict, got %v", status, err)
		}
	}
}
