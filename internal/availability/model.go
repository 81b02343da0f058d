package availability

import (
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/recurrence"
)

// SlotStatus classifies one offered start time on one date.
type SlotStatus string

const (
	// StatusAvailable means the slot can be booked.
	StatusAvailable SlotStatus = "available"
	// StatusAlreadyBooked means an existing booking's occupied range
	// overlaps the slot.
	StatusAlreadyBooked SlotStatus = "already_booked"
	// StatusNotAvailable marks dates before the service start date or with
	// no recurrence match. Such dates carry zero slots; the status exists
	// for presentation layers that render explicit placeholders.
	StatusNotAvailable SlotStatus = "not_available"
)

// ServiceDefinition describes a bookable service: the daily slot grid shape,
// the date the service becomes bookable, and the recurrence rule selecting
// which dates it runs on. Times of day are offsets from midnight.
type ServiceDefinition struct {
	StartDate     time.Time
	Earliest      time.Duration
	Latest        time.Duration
	SlotDuration  time.Duration
	SlotFrequency time.Duration
	Rule          recurrence.Rule
}

// Slot is one offered start time-of-day within a DateAvailability.
type Slot struct {
	Start  time.Duration
	Status SlotStatus
}

// DateAvailability is the slot grid for a single calendar date. A date the
// service does not run on has zero slots.
type DateAvailability struct {
	Date  time.Time
	Slots []Slot
}
