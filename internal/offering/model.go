package offering

import (
	"net/http"
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/availability"
	"github.com/okabrie/appointment-booking-backend/internal/pkg/apperror"
	"github.com/okabrie/appointment-booking-backend/internal/recurrence"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "offering not found")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrEmptyRule        = apperror.New(http.StatusBadRequest, "recurrence rule must have at least one entry")
	ErrInvalidRule      = apperror.New(http.StatusBadRequest, "invalid recurrence rule")
	ErrInvalidSlotTimes = apperror.New(http.StatusBadRequest, "slot duration and frequency must be positive")
	ErrNoBookableSlots  = apperror.New(http.StatusBadRequest, "opening hours do not fit a single slot")
	ErrInternal         = apperror.New(http.StatusInternalServerError, "internal error")
)

// Offering is a bookable service definition: the shape of its daily slot
// grid plus the recurrence rule selecting which dates it runs on.
// Times of day are offsets from midnight.
type Offering struct {
	ID            string
	Name          string
	Description   string
	StartDate     time.Time
	OpenTime      time.Duration
	CloseTime     time.Duration
	SlotDuration  time.Duration
	SlotFrequency time.Duration
	Rule          recurrence.Rule
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Definition converts the offering into the calculator's input shape.
func (o *Offering) Definition() availability.ServiceDefinition {
	return availability.ServiceDefinition{
		StartDate:     o.StartDate,
		Earliest:      o.OpenTime,
		Latest:        o.CloseTime,
		SlotDuration:  o.SlotDuration,
		SlotFrequency: o.SlotFrequency,
		Rule:          o.Rule,
	}
}

// Filter defines parameters for listing offerings.
type Filter struct {
	Page     int
	PageSize int
}
