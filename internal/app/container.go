package app

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/okabrie/appointment-booking-backend/internal/api"
	"github.com/okabrie/appointment-booking-backend/internal/booking"
	"github.com/okabrie/appointment-booking-backend/internal/calendar"
	"github.com/okabrie/appointment-booking-backend/internal/offering"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction bool
	ProdOrigins  string
	DBPool       *pgxpool.Pool
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router *gin.Engine
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) *Container {
	// Booking repository doubles as the interval source the offering
	// module's availability computation reads existing bookings from.
	bookingRepo := booking.NewPgxRepository(cfg.DBPool)

	// Offering Module
	offeringRepo := offering.NewPgxRepository(cfg.DBPool)
	offeringService := offering.NewService(offeringRepo, bookingRepo)

	// Booking Module
	bookingService := booking.NewService(bookingRepo, offeringService)

	// Calendar Module
	calendarService := calendar.NewService(bookingService)

	// Router
	router := api.NewRouter(api.Config{
		IsProduction:    cfg.IsProduction,
		ProdOrigins:     cfg.ProdOrigins,
		OfferingService: offeringService,
		BookingService:  bookingService,
		CalendarService: calendarService,
	})

	return &Container{
		Router: router,
	}
}
