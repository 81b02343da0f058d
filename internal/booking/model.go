package booking

import (
	"net/http"
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/interval"
	"github.com/okabrie/appointment-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrOfferingNotFound = apperror.New(http.StatusNotFound, "offering not found")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrSlotNotOffered   = apperror.New(http.StatusBadRequest, "requested time is not an offered slot")
	ErrSlotUnavailable  = apperror.New(http.StatusConflict, "requested slot is already booked")
	ErrInternal         = apperror.New(http.StatusInternalServerError, "internal error")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

// Booking is one reserved slot of an offering. Padding extends the occupied
// range beyond the visible start/end without being bookable itself.
type Booking struct {
	ID            string
	OfferingID    string
	OfferingName  string
	CustomerName  string
	StartTime     time.Time
	EndTime       time.Time
	PaddingBefore time.Duration
	PaddingAfter  time.Duration
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Interval returns the booking's occupied interval shape.
func (b *Booking) Interval() interval.TimeInterval {
	return interval.TimeInterval{
		Start:         b.StartTime,
		End:           b.EndTime,
		PaddingBefore: b.PaddingBefore,
		PaddingAfter:  b.PaddingAfter,
	}
}

// Filter defines parameters for listing bookings.
type Filter struct {
	OfferingID string
	Status     string
	StartTime  *time.Time // Bookings ending after this time
	EndTime    *time.Time // Bookings starting before this time
	Page       int
	PageSize   int
}
