package http

import (
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/booking"
)

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OfferingID string     `form:"offering_id" binding:"omitempty,uuid"`
	Status     string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
	From       *time.Time `form:"from" time_format:"2006-01-02T15:04:05Z07:00"`
	To         *time.Time `form:"to" time_format:"2006-01-02T15:04:05Z07:00"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.From != nil && r.To != nil {
		if r.From.After(*r.To) {
			return booking.ErrInvalidTimeRange
		}
	}
	return nil
}

type BookingResponse struct {
	ID                   string    `json:"id"`
	OfferingID           string    `json:"offering_id"`
	OfferingName         string    `json:"offering_name"`
	CustomerName         string    `json:"customer_name"`
	StartTime            time.Time `json:"start_time"`
	EndTime              time.Time `json:"end_time"`
	PaddingBeforeMinutes int       `json:"padding_before_minutes"`
	PaddingAfterMinutes  int       `json:"padding_after_minutes"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:                   b.ID,
		OfferingID:           b.OfferingID,
		OfferingName:         b.OfferingName,
		CustomerName:         b.CustomerName,
		StartTime:            b.StartTime,
		EndTime:              b.EndTime,
		PaddingBeforeMinutes: int(b.PaddingBefore / time.Minute),
		PaddingAfterMinutes:  int(b.PaddingAfter / time.Minute),
		Status:               string(b.Status),
		CreatedAt:            b.CreatedAt,
		UpdatedAt:            b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	OfferingID           string    `json:"offering_id" binding:"required,uuid"`
	CustomerName         string    `json:"customer_name" binding:"required"`
	StartTime            time.Time `json:"start_time" binding:"required"`
	PaddingBeforeMinutes int       `json:"padding_before_minutes" binding:"omitempty,min=0"`
	PaddingAfterMinutes  int       `json:"padding_after_minutes" binding:"omitempty,min=0"`
}

// ToServiceRequest converts the DTO into the service-layer request shape.
// The booking's end time is derived from the offering's slot duration, so
// only the start is accepted here.
func (r *CreateBookingRequest) ToServiceRequest() booking.CreateRequest {
	return booking.CreateRequest{
		OfferingID:    r.OfferingID,
		CustomerName:  r.CustomerName,
		StartTime:     r.StartTime,
		PaddingBefore: time.Duration(r.PaddingBeforeMinutes) * time.Minute,
		PaddingAfter:  time.Duration(r.PaddingAfterMinutes) * time.Minute,
	}
}

type UpdateBookingRequest struct {
	Status *string `json:"status" binding:"omitempty,oneof=pending confirmed cancelled"`
}
