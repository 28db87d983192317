package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/middleware"
	ucavailability "github.com/bookable/bookable-api/internal/usecase/availability"
)

type AvailabilityHandler struct {
	get *ucavailability.GetAvailability
	set *ucavailability.SetAvailability
}

func NewAvailabilityHandler(
	get *ucavailability.GetAvailability,
	set *ucavailability.SetAvailability,
) *AvailabilityHandler {
	return &AvailabilityHandler{get: get, set: set}
}

type SetAvailabilityRequest struct {
	Rules []ucavailability.RuleInput `json:"rules" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(string)

	resp, err := h.get.Execute(c.Request.Context(), businessID, c.Param("staffId"))
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_get_availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *AvailabilityHandler) Set(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(string)

	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "rules are required.")
		return
	}

	resp, err := h.set.Execute(
		c.Request.Context(),
		ucavailability.SetAvailabilityInput{
			BusinessID: businessID,
			StaffID:    c.Param("staffId"),
			Rules:      req.Rules,
		},
	)
	if err != nil {
		httperr.WriteBusiness(c, err, "failed_to_set_availability")
		return
	}

	c.JSON(http.StatusOK, resp)
}
