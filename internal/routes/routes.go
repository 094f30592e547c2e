package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/luckybarber/booking-api/internal/audit"
	"github.com/luckybarber/booking-api/internal/config"
	domain "github.com/luckybarber/booking-api/internal/domain/booking"
	"github.com/luckybarber/booking-api/internal/handlers"
	"github.com/luckybarber/booking-api/internal/middleware"
	"github.com/luckybarber/booking-api/internal/session"
	ucBooking "github.com/luckybarber/booking-api/internal/usecase/booking"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	calendar domain.Calendar,
	ledger domain.Ledger,
	mailer domain.Mailer,
	sessions session.Store,
) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	var auditLogger *audit.Logger
	if db != nil {
		auditLogger = audit.New(db)
	}
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucBooking.NewGetAvailability(calendar, cfg)

	createBookingUC := ucBooking.NewCreateBooking(
		calendar,
		ledger,
		mailer,
		sessions,
		auditDispatcher,
		cfg,
	)

	lookupBookingsUC := ucBooking.NewLookupBookings(ledger)

	cancelBookingUC := ucBooking.NewCancelBooking(
		calendar,
		ledger,
		auditDispatcher,
		cfg,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	bookingHandler := handlers.NewBookingHandler(
		availabilityUC,
		createBookingUC,
		lookupBookingsUC,
		cancelBookingUC,
		cfg,
	)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		api.GET("/services", bookingHandler.ListServices)
		api.GET("/availability", bookingHandler.Availability)

		api.POST("/bookings", bookingHandler.Create)
		api.GET("/bookings", bookingHandler.Lookup)
		api.POST("/bookings/cancel", bookingHandler.Cancel)
	}
}
