package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/bookable/bookable-api/internal/config"
	"github.com/bookable/bookable-api/internal/handlers"
	infraRepo "github.com/bookable/bookable-api/internal/infra/repository"
	"github.com/bookable/bookable-api/internal/middleware"
	"github.com/bookable/bookable-api/internal/notify"
	ucAvailability "github.com/bookable/bookable-api/internal/usecase/availability"
	ucBooking "github.com/bookable/bookable-api/internal/usecase/booking"
	ucSlots "github.com/bookable/bookable-api/internal/usecase/slots"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, notifier *notify.Dispatcher) {

	r.Use(middleware.CORSMiddleware())

	// ------------------------------
	// INFRA
	// ------------------------------
	bookingRepo := infraRepo.NewBookingGormRepository(db)

	// ------------------------------
	// USE CASES
	// ------------------------------
	getSlotsUC := ucSlots.NewGetSlots(bookingRepo)

	createBookingUC := ucBooking.NewCreateBooking(bookingRepo, notifier)
	listBookingsUC := ucBooking.NewListBookings(bookingRepo)
	getBookingUC := ucBooking.NewGetBooking(bookingRepo)
	updateBookingStatusUC := ucBooking.NewUpdateBookingStatus(bookingRepo, notifier)

	getAvailabilityUC := ucAvailability.NewGetAvailability(bookingRepo)
	setAvailabilityUC := ucAvailability.NewSetAvailability(bookingRepo)

	// ------------------------------
	// HANDLERS
	// ------------------------------
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	businessHandler := handlers.NewBusinessHandler(db)
	serviceHandler := handlers.NewServiceHandler(db)
	staffHandler := handlers.NewStaffHandler(db)

	availabilityHandler := handlers.NewAvailabilityHandler(getAvailabilityUC, setAvailabilityUC)
	bookingHandler := handlers.NewBookingHandler(listBookingsUC, getBookingUC, updateBookingStatusUC)
	publicHandler := handlers.NewPublicHandler(db, getSlotsUC, createBookingUC)

	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC API
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:slug/services", publicHandler.ListServices)
			publicAPI.GET("/:slug/slots", publicHandler.GetSlots)
			publicAPI.POST("/:slug/bookings", publicHandler.CreateBooking)
		}

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API (owner)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/business", businessHandler.GetMeBusiness)
			secured.PATCH("/me/business", businessHandler.UpdateMeBusiness)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)
			secured.DELETE("/me/services/:id", serviceHandler.Delete)

			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)

			secured.GET("/me/staff/:staffId/availability", availabilityHandler.Get)
			secured.PUT("/me/staff/:staffId/availability", availabilityHandler.Set)

			secured.GET("/me/bookings", bookingHandler.List)
			secured.GET("/me/bookings/:id", bookingHandler.Get)
			secured.PATCH("/me/bookings/:id/status", bookingHandler.UpdateStatus)
		}
	}
}
