package http

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/availability"
	"github.com/okabrie/appointment-booking-backend/internal/offering"
	"github.com/okabrie/appointment-booking-backend/internal/recurrence"
)

const (
	dateFormat = "2006-01-02"
	timeFormat = "15:04"
)

// parseClock parses a "HH:MM" time-of-day into an offset from midnight.
func parseClock(s string) (time.Duration, error) {
	t, err := time.Parse(timeFormat, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q, expected HH:MM", s)
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, nil
}

// formatClock renders an offset from midnight as "HH:MM".
func formatClock(d time.Duration) string {
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}

// ListOfferingsRequest defines query parameters for listing offerings.
type ListOfferingsRequest struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1,max=100"`
}

type OfferingResponse struct {
	ID                   string          `json:"id"`
	Name                 string          `json:"name"`
	Description          string          `json:"description"`
	StartDate            string          `json:"start_date"`
	OpenTime             string          `json:"open_time"`
	CloseTime            string          `json:"close_time"`
	SlotDurationMinutes  int             `json:"slot_duration_minutes"`
	SlotFrequencyMinutes int             `json:"slot_frequency_minutes"`
	RecurrenceRule       json.RawMessage `json:"recurrence_rule"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

func NewResponse(o *offering.Offering) OfferingResponse {
	// The rule round-trips through its storage envelope; a rule loaded from
	// the database always encodes cleanly.
	ruleDoc, _ := recurrence.MarshalRule(o.Rule)

	return OfferingResponse{
		ID:                   o.ID,
		Name:                 o.Name,
		Description:          o.Description,
		StartDate:            o.StartDate.Format(dateFormat),
		OpenTime:             formatClock(o.OpenTime),
		CloseTime:            formatClock(o.CloseTime),
		SlotDurationMinutes:  int(o.SlotDuration / time.Minute),
		SlotFrequencyMinutes: int(o.SlotFrequency / time.Minute),
		RecurrenceRule:       ruleDoc,
		CreatedAt:            o.CreatedAt,
		UpdatedAt:            o.UpdatedAt,
	}
}

type CreateOfferingRequest struct {
	Name                 string          `json:"name" binding:"required"`
	Description          string          `json:"description"`
	StartDate            string          `json:"start_date" binding:"required"`
	OpenTime             string          `json:"open_time" binding:"required"`
	CloseTime            string          `json:"close_time" binding:"required"`
	SlotDurationMinutes  int             `json:"slot_duration_minutes" binding:"required,min=1"`
	SlotFrequencyMinutes int             `json:"slot_frequency_minutes" binding:"required,min=1"`
	RecurrenceRule       json.RawMessage `json:"recurrence_rule" binding:"required"`
}

// ToServiceRequest converts the DTO into the service-layer request shape.
func (r *CreateOfferingRequest) ToServiceRequest() (offering.CreateRequest, error) {
	var req offering.CreateRequest

	startDate, err := time.Parse(dateFormat, r.StartDate)
	if err != nil {
		return req, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", r.StartDate)
	}
	openTime, err := parseClock(r.OpenTime)
	if err != nil {
		return req, err
	}
	closeTime, err := parseClock(r.CloseTime)
	if err != nil {
		return req, err
	}
	rule, err := recurrence.UnmarshalRule(r.RecurrenceRule)
	if err != nil {
		return req, err
	}

	return offering.CreateRequest{
		Name:          r.Name,
		Description:   r.Description,
		StartDate:     startDate,
		OpenTime:      openTime,
		CloseTime:     closeTime,
		SlotDuration:  time.Duration(r.SlotDurationMinutes) * time.Minute,
		SlotFrequency: time.Duration(r.SlotFrequencyMinutes) * time.Minute,
		Rule:          rule,
	}, nil
}

type UpdateOfferingRequest struct {
	Name                 *string         `json:"name"`
	Description          *string         `json:"description"`
	StartDate            *string         `json:"start_date"`
	OpenTime             *string         `json:"open_time"`
	CloseTime            *string         `json:"close_time"`
	SlotDurationMinutes  *int            `json:"slot_duration_minutes" binding:"omitempty,min=1"`
	SlotFrequencyMinutes *int            `json:"slot_frequency_minutes" binding:"omitempty,min=1"`
	RecurrenceRule       json.RawMessage `json:"recurrence_rule"`
}

// ToServiceRequest converts the DTO into the service-layer request shape.
func (r *UpdateOfferingRequest) ToServiceRequest() (offering.UpdateRequest, error) {
	var req offering.UpdateRequest

	req.Name = r.Name
	req.Description = r.Description

	if r.StartDate != nil {
		startDate, err := time.Parse(dateFormat, *r.StartDate)
		if err != nil {
			return req, fmt.Errorf("invalid start_date %q, expected YYYY-MM-DD", *r.StartDate)
		}
		req.StartDate = &startDate
	}
	if r.OpenTime != nil {
		openTime, err := parseClock(*r.OpenTime)
		if err != nil {
			return req, err
		}
		req.OpenTime = &openTime
	}
	if r.CloseTime != nil {
		closeTime, err := parseClock(*r.CloseTime)
		if err != nil {
			return req, err
		}
		req.CloseTime = &closeTime
	}
	if r.SlotDurationMinutes != nil {
		d := time.Duration(*r.SlotDurationMinutes) * time.Minute
		req.SlotDuration = &d
	}
	if r.SlotFrequencyMinutes != nil {
		d := time.Duration(*r.SlotFrequencyMinutes) * time.Minute
		req.SlotFrequency = &d
	}
	if r.RecurrenceRule != nil {
		rule, err := recurrence.UnmarshalRule(r.RecurrenceRule)
		if err != nil {
			return req, err
		}
		req.Rule = rule
	}

	return req, nil
}

type AvailabilityRequest struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to" binding:"required"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	Status    string `json:"status"`
}

type DateAvailabilityResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

func NewAvailabilityResponse(days []availability.DateAvailability) []DateAvailabilityResponse {
	out := make([]DateAvailabilityResponse, len(days))
	for i, day := range days {
		slots := make([]SlotResponse, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = SlotResponse{
				StartTime: formatClock(slot.Start),
				Status:    string(slot.Status),
			}
		}
		out[i] = DateAvailabilityResponse{
			Date:  day.Date.Format(dateFormat),
			Slots: slots,
		}
	}
	return out
}
