package interval

import "time"

// DayLength is the clamp bound for occupied time on a single date.
// Occupied ranges are half-open offsets from midnight in [0, DayLength).
const DayLength = 24 * time.Hour

// TimeInterval is a start/end pair with optional padding durations.
// Padding extends the effective occupied range without being part of the
// visible interval itself (e.g. cleanup time after an appointment).
// An interval may span multiple calendar days.
type TimeInterval struct {
	Start         time.Time
	End           time.Time
	PaddingBefore time.Duration
	PaddingAfter  time.Duration
}

// PaddedStart returns the start of the effective occupied range.
func (iv TimeInterval) PaddedStart() time.Time {
	return iv.Start.Add(-iv.PaddingBefore)
}

// PaddedEnd returns the end of the effective occupied range.
func (iv TimeInterval) PaddedEnd() time.Time {
	return iv.End.Add(iv.PaddingAfter)
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date.
func SameDate(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) intersect. Ranges that merely touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Touches reports whether the interval's padded range intersects the given
// calendar date.
func (iv TimeInterval) Touches(date time.Time) bool {
	dayStart := DateOf(date)
	dayEnd := dayStart.Add(DayLength)
	return Overlaps(iv.PaddedStart(), iv.PaddedEnd(), dayStart, dayEnd)
}

// OccupiedOn returns the portion of the padded interval falling on the given
// calendar date, as half-open offsets from that date's midnight clamped to
// [0, DayLength). ok is false when the interval does not occupy any time on
// that date. Days strictly inside a multi-day interval report the full
// [0, DayLength) range rather than a sentinel end-of-day timestamp.
func (iv TimeInterval) OccupiedOn(date time.Time) (from, to time.Duration, ok bool) {
	dayStart := DateOf(date)

	from = iv.PaddedStart().Sub(dayStart)
	if from < 0 {
		from = 0
	}
	to = iv.PaddedEnd().Sub(dayStart)
	if to > DayLength {
		to = DayLength
	}

	if from >= to {
		return 0, 0, false
	}
	return from, to, true
}
