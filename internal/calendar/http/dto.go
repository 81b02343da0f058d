package http

import (
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/calendar"
)

const dateFormat = "2006-01-02"

// ViewRequest defines query parameters for the calendar view.
type ViewRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type PlacementResponse struct {
	Date        string  `json:"date"`
	Row         int     `json:"row"`
	Concurrency int     `json:"concurrency"`
	WidthPct    float64 `json:"width_pct"`
	LeftPct     float64 `json:"left_pct"`
}

type EventResponse struct {
	BookingID    string              `json:"booking_id"`
	OfferingID   string              `json:"offering_id"`
	OfferingName string              `json:"offering_name"`
	CustomerName string              `json:"customer_name"`
	StartTime    time.Time           `json:"start_time"`
	EndTime      time.Time           `json:"end_time"`
	Status       string              `json:"status"`
	Placements   []PlacementResponse `json:"placements"`
}

func NewEventResponse(e calendar.Event) EventResponse {
	placements := make([]PlacementResponse, len(e.Placements))
	for i, p := range e.Placements {
		placements[i] = PlacementResponse{
			Date:        p.Date.Format(dateFormat),
			Row:         p.Row,
			Concurrency: p.Concurrency,
			WidthPct:    p.WidthPct,
			LeftPct:     p.LeftPct,
		}
	}

	return EventResponse{
		BookingID:    e.Booking.ID,
		OfferingID:   e.Booking.OfferingID,
		OfferingName: e.Booking.OfferingName,
		CustomerName: e.Booking.CustomerName,
		StartTime:    e.Booking.StartTime,
		EndTime:      e.Booking.EndTime,
		Status:       string(e.Booking.Status),
		Placements:   placements,
	}
}
