package booking

import (
	"context"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(
	ctx context.Context,
	businessID string,
	bookingID string,
) (*models.Booking, error) {

	b, err := uc.repo.GetBooking(ctx, businessID, bookingID)
	if err != nil {
		return nil, httperr.NotFoundErr("booking_not_found", "Booking not found.")
	}
	return b, nil
}
