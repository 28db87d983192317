package booking

import (
	"context"
	"time"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

type ListBookingsInput struct {
	BusinessID string

	Status  string
	StaffID string
	Start   string // ISO-8601, optional
	End     string // ISO-8601, optional
}

type ListBookings struct {
	repo domain.Repository
}

func NewListBookings(repo domain.Repository) *ListBookings {
	return &ListBookings{repo: repo}
}

func (uc *ListBookings) Execute(
	ctx context.Context,
	in ListBookingsInput,
) ([]models.Booking, error) {

	if _, err := uc.repo.GetBusinessByID(ctx, in.BusinessID); err != nil {
		return nil, httperr.NotFoundErr("business_not_found", "Business not found.")
	}

	if in.Status != "" && !domain.IsValidStatus(domain.Status(in.Status)) {
		return nil, httperr.Validation("invalid_status", "Unknown booking status.")
	}

	filter := domain.ListFilter{
		Status:  in.Status,
		StaffID: in.StaffID,
	}

	if in.Start != "" {
		t, err := time.Parse(time.RFC3339, in.Start)
		if err != nil {
			return nil, httperr.Validation("invalid_date_range", "start must be an ISO-8601 instant.")
		}
		filter.Start = &t
	}
	if in.End != "" {
		t, err := time.Parse(time.RFC3339, in.End)
		if err != nil {
			return nil, httperr.Validation("invalid_date_range", "end must be an ISO-8601 instant.")
		}
		filter.End = &t
	}

	return uc.repo.ListBookings(ctx, in.BusinessID, filter)
}
