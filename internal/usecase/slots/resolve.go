package slots

import (
	"context"
	"regexp"
	"time"

	domain "github.com/bookable/bookable-api/internal/domain/booking"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
)

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// parseDate validates YYYY-MM-DD and pins it to UTC midnight.
func parseDate(dateStr string) (time.Time, error) {
	if !dateRe.MatchString(dateStr) {
		return time.Time{}, httperr.Validation("invalid_date", "Date must be in YYYY-MM-DD format.")
	}

	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, httperr.Validation("invalid_date", "Invalid date.")
	}
	return date.UTC(), nil
}

// resolveStaff applies the single-staff shortcut: with no explicit
// staff id, a single-staff business falls back to its sole staff
// record, anything else is a validation error.
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
