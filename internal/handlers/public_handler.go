package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/models"
	ucbooking "github.com/bookable/bookable-api/internal/usecase/booking"
	ucslots "github.com/bookable/bookable-api/internal/usecase/slots"
)

type PublicHandler struct {
	db       *gorm.DB
	getSlots *ucslots.GetSlots
	create   *ucbooking.CreateBooking
}

func NewPublicHandler(
	db *gorm.DB,
	getSlots *ucslots.GetSlots,
	create *ucbooking.CreateBooking,
) *PublicHandler {
	return &PublicHandler{
		db:       db,
		getSlots: getSlots,
		create:   create,
	}
}

// --------- DTOs ---------

type PublicCreateBookingRequest struct {
	ServiceID    string `json:"service_id" binding:"required"`
	StaffID      string `json:"staff_id"`
	StartTimeUTC string `json:"start_time_utc" binding:"required"`

	// Client presence is validated in the use case; a taken slot must
	// surface as a conflict before a missing name does.
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Notes       string `json:"notes"`
}

// --------- SERVICES ---------

func (h *PublicHandler) ListServices(c *gin.Context) {
	slug := c.Param("slug")

	var business models.Business
	if err := h.db.Where("slug = ?", slug).First(&business).Error; err != nil {
		httperr.NotFound(c, "business_not_found", "Business not found.")
		return
	}

	var services []models.Service
	if err := h.db.
		Where("business_id = ? AND is_active = true", business.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"business": business,
		"services": services,
	})
}

// --------- SLOTS ---------

func (h *PublicHandler) GetSlots(c *gin.Context) {
	slug := c.Param("slug")
	serviceID := c.Query("service_id")
	dateStr := c.Query("date")

	if serviceID == "" || dateStr == "" {
		httperr.BadRequest(c, "missing_params", "service_id and date are required.")
		return
	}

	resp, err := h.getSlots.Execute(
		c.Request.Context(),
		ucslots.GetSlotsInput{
			BusinessSlug: slug,
			ServiceID:    serviceID,
			StaffID:      c.Query("staff_id"),
			Date:         dateStr,
			Timezone:     c.Query("timezone"),
		},
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "slots_failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// --------- BOOKINGS ---------

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	slug := c.Param("slug")

	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	b, err := h.create.Execute(
		c.Request.Context(),
		ucbooking.CreateBookingInput{
			BusinessSlug: slug,
			ServiceID:    req.ServiceID,
			StaffID:      req.StaffID,
			StartTimeUTC: req.StartTimeUTC,
			ClientName:   req.ClientName,
			ClientEmail:  req.ClientEmail,
			ClientPhone:  req.ClientPhone,
			Notes:        req.Notes,
		},
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "booking_failed")
		return
	}

	c.JSON(http.StatusCreated, b)
}
