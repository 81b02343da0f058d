package availability

import (
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/interval"
	"github.com/okabrie/appointment-booking-backend/internal/recurrence"
)

// ComputeAvailability builds the slot grid for every date in
// [rangeStart, rangeEnd]. Dates the service runs on (per its recurrence rule)
// receive the full slot template with conflicting slots marked already
// booked; all other dates receive zero slots. existingBookings is the
// caller-supplied list of occupied intervals to cross-reference; the slice is
// not mutated.
//
// A range ending before the service's start date yields an empty, non-error
// result: the requested window predates the service entirely.
func ComputeAvailability(
	def ServiceDefinition,
	rangeStart, rangeEnd time.Time,
	existingBookings []interval.TimeInterval,
) ([]DateAvailability, error) {
	rangeStart = interval.DateOf(rangeStart)
	rangeEnd = interval.DateOf(rangeEnd)

	if rangeEnd.Before(rangeStart) {
		return nil, ErrInvalidDateRange
	}

	startDate := interval.DateOf(def.StartDate)
	if rangeEnd.Before(startDate) {
		return []DateAvailability{}, nil
	}

	template := slotTemplate(def)
	applicable := applicableDates(def.Rule, rangeStart, rangeEnd, startDate)

	result := make([]DateAvailability, 0, int(rangeEnd.Sub(rangeStart).Hours()/24)+1)
	for date := rangeStart; !date.After(rangeEnd); date = date.AddDate(0, 0, 1) {
		day := DateAvailability{Date: date}
		if applicable[date] {
			day.Slots = markBookedSlots(template, def.SlotDuration, date, existingBookings)
		}
		result = append(result, day)
	}

	return result, nil
}

// applicableDates walks the range with the recurrence resolver and collects
// the dates the service runs on. Dates before the service start date are
// never applicable. A resolution failure skips a single day and continues;
// an unresolvable rule is a data problem for the caller to log, not a reason
// to abort the whole grid.
func applicableDates(rule recurrence.Rule, rangeStart, rangeEnd, startDate time.Time) map[time.Time]bool {
	applicable := make(map[time.Time]bool)

	cursor := rangeStart
	if cursor.Before(startDate) {
		cursor = startDate
	}

	for !cursor.After(rangeEnd) {
		next, err := recurrence.NextOccurrence(rule, cursor)
		if err != nil {
			cursor = cursor.AddDate(0, 0, 1)
			continue
		}
		if next.After(rangeEnd) {
			break
		}
		applicable[next] = true
		cursor = next.AddDate(0, 0, 1)
	}

	return applicable
}

// slotTemplate generates the canonical per-day slot list: starting at the
// earliest time, stepping by the slot frequency, while the slot still ends by
// the latest time. The template is computed once and copied per date.
func slotTemplate(def ServiceDefinition) []Slot {
	if def.SlotFrequency <= 0 || def.SlotDuration <= 0 {
		return nil
	}

	var slots []Slot
	for t := def.Earliest; t+def.SlotDuration <= def.Latest; t += def.SlotFrequency {
		slots = append(slots, Slot{Start: t, Status: StatusAvailable})
	}
	return slots
}

// markBookedSlots copies the template and marks every slot whose half-open
// range [t, t+duration) overlaps a booking's occupied time on the date.
// Occupied time is the padded interval clamped to the date's 24 hours, so
// multi-day bookings block whole days and padding blocks adjacent slots.
func markBookedSlots(template []Slot, slotDuration time.Duration, date time.Time, bookings []interval.TimeInterval) []Slot {
	slots := make([]Slot, len(template))
	copy(slots, template)

	for _, b := range bookings {
		from, to, ok := b.OccupiedOn(date)
		if !ok {
			continue
		}
		for i := range slots {
			if from < slots[i].Start+slotDuration && to > slots[i].Start {
				slots[i].Status = StatusAlreadyBooked
			}
		}
	}

	return slots
}
