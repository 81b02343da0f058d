package recurrence

import (
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/interval"
)

// maxMonthsAhead bounds the monthly-relative scan. A non-empty rule always
// matches within two months of the search start, so the bound only guards
// against runaway loops.
const maxMonthsAhead = 2

// NextOccurrence resolves the smallest date >= searchStart matching the rule.
// The result is truncated to midnight in searchStart's location. Resolving an
// empty rule fails with ErrNoRulesDefined.
func NextOccurrence(rule Rule, searchStart time.Time) (time.Time, error) {
	if rule == nil || rule.Empty() {
		return time.Time{}, ErrNoRulesDefined
	}

	start := interval.DateOf(searchStart)

	switch v := rule.(type) {
	case Weekly:
		return nextWeekly(v, start), nil
	case MonthlyAbsolute:
		return nextMonthlyAbsolute(v, start), nil
	case MonthlyRelative:
		return nextMonthlyRelative(v, start)
	default:
		return time.Time{}, ErrNoRulesDefined
	}
}

// nextWeekly advances one day at a time until the weekday matches, inclusive
// of the start date. Terminates within 7 steps for a non-empty rule.
func nextWeekly(rule Weekly, start time.Time) time.Time {
	day := start
	for {
		for _, wd := range rule.Days {
			if day.Weekday() == wd {
				return day
			}
		}
		day = day.AddDate(0, 0, 1)
	}
}

// nextMonthlyAbsolute picks the smallest configured day-of-month >= the start
// day within the start's month, or wraps to the smallest configured day of the
// following month. Day numbers are used verbatim; no clamping to shorter
// months is performed.
func nextMonthlyAbsolute(rule MonthlyAbsolute, start time.Time) time.Time {
	year, month, day := start.Date()

	best := 0
	min := 0
	for _, d := range rule.Days {
		if min == 0 || d < min {
			min = d
		}
		if d >= day && (best == 0 || d < best) {
			best = d
		}
	}

	if best != 0 {
		return time.Date(year, month, best, 0, 0, 0, 0, start.Location())
	}
	return time.Date(year, month+1, min, 0, 0, 0, 0, start.Location())
}

// nextMonthlyRelative scans the start's month day by day for a date whose
// weekday and ordinal-week position match a configured occurrence, then the
// following months up to maxMonthsAhead.
func nextMonthlyRelative(rule MonthlyRelative, start time.Time) (time.Time, error) {
	year, month, _ := start.Date()
	loc := start.Location()

	for ahead := 0; ahead <= maxMonthsAhead; ahead++ {
		monthStart := time.Date(year, month+time.Month(ahead), 1, 0, 0, 0, 0, loc)
		nextMonthStart := monthStart.AddDate(0, 1, 0)
		daysInMonth := nextMonthStart.AddDate(0, 0, -1).Day()

		for day := monthStart; day.Before(nextMonthStart); day = day.AddDate(0, 0, 1) {
			if day.Before(start) {
				continue
			}
			for _, occ := range rule.Occurrences {
				if day.Weekday() == occ.Weekday && inOrdinalWindow(day.Day(), occ.Week, daysInMonth) {
					return day, nil
				}
			}
		}
	}

	return time.Time{}, ErrSearchExhausted
}

// inOrdinalWindow reports whether the day-of-month falls in the 7-day window
// addressed by the ordinal: days 1-7 for the first week, 8-14 for the second,
// 15-21 for the third, and the final 7 days of the month for OrdinalLast.
func inOrdinalWindow(dayOfMonth int, week OrdinalWeek, daysInMonth int) bool {
	if week == OrdinalLast {
		return dayOfMonth > daysInMonth-7
	}
	lo := (int(week)-1)*7 + 1
	return dayOfMonth >= lo && dayOfMonth <= lo+6
}
