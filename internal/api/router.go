package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/okabrie/appointment-booking-backend/internal/booking"
	bookingHttp "github.com/okabrie/appointment-booking-backend/internal/booking/http"
	"github.com/okabrie/appointment-booking-backend/internal/calendar"
	calendarHttp "github.com/okabrie/appointment-booking-backend/internal/calendar/http"
	"github.com/okabrie/appointment-booking-backend/internal/offering"
	offeringHttp "github.com/okabrie/appointment-booking-backend/internal/offering/http"
)

// Config holds the services the router exposes.
type Config struct {
	IsProduction    bool
	ProdOrigins     string
	OfferingService offering.Service
	BookingService  booking.Service
	CalendarService calendar.Service
}

// NewRouter initializes the HTTP router engine.
// It is responsible for assembling middleware (CORS, Logger) and registering
// routes for the offering, booking and calendar modules.
func NewRouter(cfg Config) *gin.Engine {
	r := gin.New()

	// Global Middleware:
	// - Logger: Logs request information to the console.
	// - Recovery: Captures panics to prevent server crashes and returns a 500 error.
	r.Use(gin.Logger(), gin.Recovery())

	// Configure CORS (Cross-Origin Resource Sharing).
	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction && cfg.ProdOrigins != "" {
		corsConfig.AllowOrigins = []string{cfg.ProdOrigins}
	} else {
		corsConfig.AllowOrigins = []string{
			"http://localhost:8081", // Swagger
		}
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// Initialize HTTP Handlers for each module (injecting Service dependencies).
	offeringHandler := offeringHttp.NewHandler(cfg.OfferingService)
	bookingHandler := bookingHttp.NewHandler(cfg.BookingService)
	calendarHandler := calendarHttp.NewHandler(cfg.CalendarService)

	// Register API routes under /v1
	v1 := r.Group("/v1")
	{
		offeringHttp.RegisterRoutes(v1, offeringHandler)
		bookingHttp.RegisterRoutes(v1, bookingHandler)
		calendarHttp.RegisterRoutes(v1, calendarHandler)
	}

	return r
}
