package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable/bookable-api/internal/dto"
	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/httpresp"
	"github.com/bookable/bookable-api/internal/middleware"
	ucbooking "github.com/bookable/bookable-api/internal/usecase/booking"
)

type BookingHandler struct {
	list         *ucbooking.ListBookings
	get          *ucbooking.GetBooking
	updateStatus *ucbooking.UpdateBookingStatus
}

func NewBookingHandler(
	list *ucbooking.ListBookings,
	get *ucbooking.GetBooking,
	updateStatus *ucbooking.UpdateBookingStatus,
) *BookingHandler {
	return &BookingHandler{
		list:         list,
		get:          get,
		updateStatus: updateStatus,
	}
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *BookingHandler) List(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(string)

	bookings, err := h.list.Execute(
		c.Request.Context(),
		ucbooking.ListBookingsInput{
			BusinessID: businessID,
			Status:     c.Query("status"),
			StaffID:    c.Query("staff_id"),
			Start:      c.Query("start"),
			End:        c.Query("end"),
		},
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_list_bookings")
		return
	}

	items := make([]dto.BookingListItem, 0, len(bookings))
	for _, b := range bookings {
		items = append(items, dto.BookingListItem{
			ID:          b.ID,
			StaffID:     b.StaffID,
			ServiceID:   b.ServiceID,
			ClientName:  b.ClientName,
			ClientEmail: b.ClientEmail,
			StartTime:   b.StartTime,
			EndTime:     b.EndTime,
			Status:      b.Status,
			CreatedAt:   b.CreatedAt,
		})
	}

	httpresp.List(c, items)
}

func (h *BookingHandler) Get(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(string)

	b, err := h.get.Execute(c.Request.Context(), businessID, c.Param("id"))
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_get_booking")
		return
	}

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(string)

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "status is required.")
		return
	}

	b, err := h.updateStatus.Execute(
		c.Request.Context(),
		ucbooking.UpdateBookingStatusInput{
			BusinessID: businessID,
			BookingID:  c.Param("id"),
			Status:     req.Status,
		},
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_update_booking")
		return
	}

	c.JSON(http.StatusOK, b)
}
