package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookable/bookable-api/internal/httperr"
	"github.com/bookable/bookable-api/internal/httpresp"
	"github.com/bookable/bookable-api/internal/middleware"
	"github.com/bookable/bookable-api/internal/models"
)

type StaffHandler struct {
	db *gorm.DB
}

func NewStaffHandler(db *gorm.DB) *StaffHandler {
	return &StaffHandler{db: db}
}

type CreateStaffRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *StaffHandler) List(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(string)

	var staff []models.Staff
	if err := h.db.
		Where("business_id = ?", businessID).
		Order("created_at ASC").
		Find(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff.")
		return
	}

	httpresp.List(c, staff)
}

func (h *StaffHandler) Create(c *gin.Context) {
	businessIDVal, _ := c.Get(middleware.ContextBusinessID)
	businessID := businessIDVal.(string)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "name is required.")
		return
	}

	staff := models.Staff{
		BusinessID: businessID,
		Name:       req.Name,
	}

	if err := h.db.Create(&staff).Error; err != nil {
		httperr.Internal(c, "failed_to_create_staff", "Failed to create staff.")
		return
	}

	// More than one staff member means clients must pick one
	// explicitly from now on.
	var count int64
	h.db.Model(&models.Staff{}).Where("business_id = ?", businessID).Count(&count)
	if count > 1 {
		h.db.Model(&models.Business{}).
			Where("id = ?", businessID).
			Update("is_single_staff", false)
	}

	c.JSON(http.StatusCreated, staff)
}
