package booking

import (
	"context"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

// Staff resolution mirrors the slots read path exactly; the two must
// not drift apart or a client could list slots it cannot book.
func resolveStaff(
	ctx context.Context,
	repo domain.Repository,
	business *models.Business,
	staffID string,
) (*models.Staff, error) {

	if staffID == "" {
		if !business.IsSingleStaff {
			return nil, httperr.Validation("staff_id_required", "staffId is required for multi-staff businesses.")
		}

		staff, err := repo.GetSoleStaff(ctx, business.ID)
		if err != nil {
			return nil, httperr.NotFoundErr("staff_not_found", "No staff found for this business.")
		}
		return staff, nil
	}

	staff, err := repo.GetStaff(ctx, business.ID, staffID)
	if err != nil {
		return nil, httperr.NotFoundErr("staff_not_found", "Staff member not found.")
	}
	return staff, nil
}
