package layout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okabrie/appointment-booking-backend/internal/interval"
)

func at(day, hour, min int) time.Time {
	return time.Date(2026, 2, day, hour, min, 0, 0, time.UTC)
}

func day(d int) time.Time {
	return time.Date(2026, 2, d, 0, 0, 0, 0, time.UTC)
}

func entryAt(t *testing.T, r Result, event int, date time.Time) ClashEntry {
	t.Helper()
	e, ok := r.At(event, date)
	require.True(t, ok, "event %d has no entry on %v", event, date)
	return e
}

// requireNoClashInvariant asserts that no two events sharing a row on a date
// overlap in time there.
func requireNoClashInvariant(t *testing.T, events []interval.TimeInterval, r Result) {
	t.Helper()
	for i := range events {
		for _, date := range r.Dates(i) {
			ei, _ := r.At(i, date)
			iFrom, iTo, _ := events[i].OccupiedOn(date)
			for j := i + 1; j < len(events); j++ {
				ej, ok := r.At(j, date)
				if !ok || ei.Row != ej.Row {
					continue
				}
				jFrom, jTo, _ := events[j].OccupiedOn(date)
				require.False(t, iFrom < jTo && jFrom < iTo,
					"events %d and %d share row %d on %v but overlap", i, j, ei.Row, date)
			}
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	r := Layout(nil)
	assert.Empty(t, r.Dates(0))
}

func TestLayoutDisjointEventsShareRowZero(t *testing.T) {
	events := []interval.TimeInterval{
		{Start: at(9, 0, 0), End: at(9, 2, 30)},
		{Start: at(9, 2, 30), End: at(9, 3, 30)},
		{Start: at(9, 4, 0), End: at(9, 5, 30)},
	}

	r := Layout(events)

	for i := range events {
		e := entryAt(t, r, i, day(9))
		assert.Equal(t, 0, e.Row, "event %d row", i)
		assert.Equal(t, 0, e.Concurrency, "event %d concurrency", i)
		assert.Equal(t, 100.0, e.Width(100), "event %d width", i)
		assert.Equal(t, 0.0, e.Left(100), "event %d left", i)
	}
	requireNoClashInvariant(t, events, r)
}

func TestLayoutMutualOverlapStacksDistinctRows(t *testing.T) {
	// All three overlap pairwise, so each needs its own row and each sees
	// the other two as siblings.
	events := []interval.TimeInterval{
		{Start: at(9, 9, 0), End: at(9, 12, 0)},
		{Start: at(9, 9, 30), End: at(9, 11, 0)},
		{Start: at(9, 10, 0), End: at(9, 10, 30)},
	}

	r := Layout(events)

	for i := range events {
		e := entryAt(t, r, i, day(9))
		assert.Equal(t, i, e.Row, "event %d row", i)
		assert.Equal(t, 2, e.Concurrency, "event %d concurrency", i)
		assert.InDelta(t, 100.0/3, e.Width(100), 1e-9, "event %d width", i)
	}
	requireNoClashInvariant(t, events, r)
}

func TestLayoutChainedOverlapReusesFreedRow(t *testing.T) {
	// A overlaps B, B overlaps C, but A and C are disjoint. C drops back
	// into row 0 next to A; every event still records exactly one sibling.
	events := []interval.TimeInterval{
		{Start: at(9, 1, 30), End: at(9, 3, 30)},
		{Start: at(9, 2, 30), End: at(9, 5, 30)},
		{Start: at(9, 4, 0), End: at(9, 7, 0)},
	}

	r := Layout(events)

	a := entryAt(t, r, 0, day(9))
	b := entryAt(t, r, 1, day(9))
	c := entryAt(t, r, 2, day(9))

	assert.Equal(t, 0, a.Row)
	assert.Equal(t, 1, b.Row)
	assert.Equal(t, 0, c.Row)

	assert.Equal(t, 1, a.Concurrency)
	assert.Equal(t, 1, b.Concurrency)
	assert.Equal(t, 1, c.Concurrency)

	assert.Equal(t, 50.0, b.Width(100))
	assert.Equal(t, 50.0, b.Left(100))
	requireNoClashInvariant(t, events, r)
}

func TestLayoutConcurrencyReflectsPlacementOrder(t *testing.T) {
	// A is bumped once by each of B and C probing its row; B and C never
	// conflict with each other, so their counts stay at one each.
	events := []interval.TimeInterval{
		{Start: at(9, 9, 0), End: at(9, 11, 0)},
		{Start: at(9, 9, 30), End: at(9, 10, 0)},
		{Start: at(9, 10, 30), End: at(9, 11, 30)},
	}

	r := Layout(events)

	assert.Equal(t, 2, entryAt(t, r, 0, day(9)).Concurrency)
	assert.Equal(t, 1, entryAt(t, r, 1, day(9)).Concurrency)
	assert.Equal(t, 1, entryAt(t, r, 2, day(9)).Concurrency)
	requireNoClashInvariant(t, events, r)
}

func TestLayoutPaddingCreatesClash(t *testing.T) {
	// The visible ranges are disjoint; the 30-minute trailing padding on
	// the first event collides with the second.
	events := []interval.TimeInterval{
		{Start: at(9, 10, 0), End: at(9, 11, 0), PaddingAfter: 30 * time.Minute},
		{Start: at(9, 11, 15), End: at(9, 12, 0)},
	}

	r := Layout(events)

	assert.Equal(t, 0, entryAt(t, r, 0, day(9)).Row)
	assert.Equal(t, 1, entryAt(t, r, 1, day(9)).Row)
	assert.Equal(t, 1, entryAt(t, r, 1, day(9)).Concurrency)
}

func TestLayoutMultiDayEvent(t *testing.T) {
	events := []interval.TimeInterval{
		{Start: at(9, 22, 0), End: at(10, 2, 0)},
		{Start: at(10, 1, 0), End: at(10, 3, 0)},
	}

	r := Layout(events)

	require.Equal(t, []time.Time{day(9), day(10)}, r.Dates(0))
	require.Equal(t, []time.Time{day(10)}, r.Dates(1))

	// Alone on the first evening.
	first := entryAt(t, r, 0, day(9))
	assert.Equal(t, 0, first.Row)
	assert.Equal(t, 0, first.Concurrency)

	// Clashing after midnight.
	assert.Equal(t, 1, entryAt(t, r, 0, day(10)).Concurrency)
	assert.Equal(t, 1, entryAt(t, r, 1, day(10)).Row)

	_, ok := r.At(1, day(9))
	assert.False(t, ok)
}

func TestClashEntryGeometry(t *testing.T) {
	e := ClashEntry{Row: 1, Concurrency: 1}
	assert.Equal(t, 50.0, e.Width(100))
	assert.Equal(t, 50.0, e.Left(100))

	e = ClashEntry{Row: 2, Concurrency: 3}
	assert.Equal(t, 25.0, e.Width(100))
	assert.Equal(t, 50.0, e.Left(100))
}
