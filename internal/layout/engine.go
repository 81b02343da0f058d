package layout

import (
	"sort"
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/interval"
)

// ClashEntry is the placement of one event on one calendar date: the row
// (zero-based column) it was assigned, and the number of other events whose
// time ranges overlapped it at the moment it was placed. Concurrency is
// fixed at placement time except when a later event probing the same row
// conflicts with this one, which bumps it by one; it is never renormalized
// to the final maximum. Two events with identical ranges can therefore end
// up with different concurrency values depending on placement order. That
// asymmetry keeps column assignment stable for a reader scanning the
// calendar day to day and is intentional.
type ClashEntry struct {
	Row         int
	Concurrency int
}

// Width returns the event's share of the nominal full-width allotment.
func (e ClashEntry) Width(nominal float64) float64 {
	return nominal / float64(e.Concurrency+1)
}

// Left returns the event's horizontal offset within the nominal allotment.
func (e ClashEntry) Left(nominal float64) float64 {
	return e.Width(nominal) * float64(e.Row)
}

type entryKey struct {
	event int
	date  time.Time
}

// Result holds one ClashEntry per (event, date) pair the layout pass
// produced. Events are addressed by their index in the input slice; a
// multi-day event has one entry per date it touches after padding.
type Result struct {
	entries map[entryKey]ClashEntry
}

// At returns the entry for the given input-slice index on the given date.
// ok is false when the event does not occupy that date.
func (r Result) At(event int, date time.Time) (ClashEntry, bool) {
	e, ok := r.entries[entryKey{event: event, date: interval.DateOf(date)}]
	return e, ok
}

// Dates returns every date the event occupies, ascending.
func (r Result) Dates(event int) []time.Time {
	var dates []time.Time
	for k := range r.entries {
		if k.event == event {
			dates = append(dates, k.date)
		}
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// Layout assigns every event a row and concurrency count on each calendar
// date its padded range touches, so that no two events sharing a row on a
// date overlap in time. The input slice is not mutated.
//
// This is a single greedy left-to-right pass, not an optimal packing: events
// are taken in padded-start order and dropped into the lowest conflict-free
// row. It trades minimal row counts for O(n x rows) simplicity and a
// deterministic, stable column per event.
func Layout(events []interval.TimeInterval) Result {
	result := Result{entries: make(map[entryKey]ClashEntry)}
	if len(events) == 0 {
		return result
	}

	// Sort by padded start, stable so ties keep input order.
	order := make([]int, len(events))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return events[order[a]].PaddedStart().Before(events[order[b]].PaddedStart())
	})

	minDate := interval.DateOf(events[order[0]].PaddedStart())
	maxDate := minDate
	for _, idx := range order {
		if d := interval.DateOf(events[idx].PaddedEnd()); d.After(maxDate) {
			maxDate = d
		}
	}

	for date := minDate; !date.After(maxDate); date = date.AddDate(0, 0, 1) {
		placeDay(events, order, date, result.entries)
	}

	return result
}

// placed is one event already assigned to a row on the current date, with
// its occupied range on that date.
type placed struct {
	event    int
	from, to time.Duration
}

// placeDay runs the greedy row assignment for a single date.
func placeDay(events []interval.TimeInterval, order []int, date time.Time, entries map[entryKey]ClashEntry) {
	var rows [][]placed

	for _, idx := range order {
		from, to, ok := events[idx].OccupiedOn(date)
		if !ok {
			continue
		}

		// Count every already-placed event overlapping this one, across
		// all rows. Recorded once, now; later placements do not revise it
		// except through the row-probe bump below.
		clashes := 0
		for _, row := range rows {
			for _, p := range row {
				if overlaps(from, to, p.from, p.to) {
					clashes++
				}
			}
		}

		key := entryKey{event: idx, date: date}
		entries[key] = ClashEntry{Concurrency: clashes}

		// Probe rows from 0 for a conflict-free home. Every conflicting
		// occupant must make room for a sibling, so its own recorded
		// concurrency grows by one.
		rowIdx := 0
		for {
			if rowIdx == len(rows) {
				rows = append(rows, nil)
			}

			conflict := false
			for _, p := range rows[rowIdx] {
				if overlaps(from, to, p.from, p.to) {
					conflict = true
					pk := entryKey{event: p.event, date: date}
					pe := entries[pk]
					pe.Concurrency++
					entries[pk] = pe
				}
			}
			if !conflict {
				rows[rowIdx] = append(rows[rowIdx], placed{event: idx, from: from, to: to})
				e := entries[key]
				e.Row = rowIdx
				entries[key] = e
				break
			}
			rowIdx++
		}
	}
}

// overlaps reports strict half-open overlap between two same-day ranges.
func overlaps(aFrom, aTo, bFrom, bTo time.Duration) bool {
	return aFrom < bTo && bFrom < aTo
}
