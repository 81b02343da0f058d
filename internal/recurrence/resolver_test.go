package recurrence

import (
	"errors"
	"testing"
	"time"
)

// date is a shorthand for a UTC midnight timestamp.
// Reference points: 2026-02-01 is a Sunday, February 2026 has 28 days.
func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestNextOccurrenceWeekly(t *testing.T) {
	tests := []struct {
		name  string
		days  []time.Weekday
		start time.Time
		want  time.Time
	}{
		{
			name:  "Start date itself matches",
			days:  []time.Weekday{time.Monday},
			start: date(2026, 2, 9), // Monday
			want:  date(2026, 2, 9),
		},
		{
			name:  "Match later the same week",
			days:  []time.Weekday{time.Wednesday},
			start: date(2026, 2, 9),
			want:  date(2026, 2, 11),
		},
		{
			name:  "Wrap into the next week",
			days:  []time.Weekday{time.Sunday},
			start: date(2026, 2, 9),
			want:  date(2026, 2, 15),
		},
		{
			name:  "Multiple days picks the nearest",
			days:  []time.Weekday{time.Friday, time.Tuesday},
			start: date(2026, 2, 9),
			want:  date(2026, 2, 10), // Tuesday before Friday
		},
		{
			name:  "Time of day is discarded",
			days:  []time.Weekday{time.Monday},
			start: time.Date(2026, 2, 9, 15, 30, 0, 0, time.UTC),
			want:  date(2026, 2, 9),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(Weekly{Days: tt.days}, tt.start)
			if err != nil {
				t.Fatalf("NextOccurrence returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if diff := got.Sub(tt.start); diff >= 7*24*time.Hour {
				t.Errorf("result %v is more than 7 days after start %v", got, tt.start)
			}
		})
	}
}

func TestNextOccurrenceWeeklyIsSmallestMatch(t *testing.T) {
	// For every weekday set of size one and every start offset, the result
	// must be the smallest date >= start whose weekday matches.
	base := date(2026, 2, 8) // Sunday
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		for offset := 0; offset < 7; offset++ {
			start := base.AddDate(0, 0, offset)
			got, err := NextOccurrence(Weekly{Days: []time.Weekday{wd}}, start)
			if err != nil {
				t.Fatalf("NextOccurrence(%v, %v) returned error: %v", wd, start, err)
			}
			if got.Weekday() != wd {
				t.Fatalf("NextOccurrence(%v, %v) = %v, wrong weekday", wd, start, got)
			}
			if got.Before(start) {
				t.Fatalf("NextOccurrence(%v, %v) = %v, before start", wd, start, got)
			}
			if prev := got.AddDate(0, 0, -7); !prev.Before(start) {
				t.Fatalf("NextOccurrence(%v, %v) = %v, not the smallest match", wd, start, got)
			}
		}
	}
}

func TestNextOccurrenceMonthlyAbsolute(t *testing.T) {
	tests := []struct {
		name  string
		days  []int
		start time.Time
		want  time.Time
	}{
		{
			name:  "Start day itself matches",
			days:  []int{10, 20},
			start: date(2026, 2, 10),
			want:  date(2026, 2, 10),
		},
		{
			name:  "Next configured day in same month",
			days:  []int{10, 20},
			start: date(2026, 2, 11),
			want:  date(2026, 2, 20),
		},
		{
			name:  "Wraps to minimum configured day of next month",
			days:  []int{10, 20},
			start: date(2026, 2, 21),
			want:  date(2026, 3, 10),
		},
		{
			name:  "Unsorted days from late in a 31-day month",
			days:  []int{19, 15, 23, 25},
			start: date(2026, 1, 28),
			want:  date(2026, 2, 15),
		},
		{
			name:  "Wrap across year boundary",
			days:  []int{5},
			start: date(2026, 12, 6),
			want:  date(2027, 1, 5),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(MonthlyAbsolute{Days: tt.days}, tt.start)
			if err != nil {
				t.Fatalf("NextOccurrence returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextOccurrenceMonthlyRelative(t *testing.T) {
	tests := []struct {
		name        string
		occurrences []Occurrence
		start       time.Time
		want        time.Time
	}{
		{
			name:        "Second Tuesday of the month",
			occurrences: []Occurrence{{Weekday: time.Tuesday, Week: OrdinalSecond}},
			start:       date(2026, 2, 1),
			want:        date(2026, 2, 10),
		},
		{
			name:        "Last Friday of February",
			occurrences: []Occurrence{{Weekday: time.Friday, Week: OrdinalLast}},
			start:       date(2026, 2, 1),
			want:        date(2026, 2, 27),
		},
		{
			name:        "Window already passed rolls into next month",
			occurrences: []Occurrence{{Weekday: time.Monday, Week: OrdinalFirst}},
			start:       date(2026, 2, 10),
			want:        date(2026, 3, 2),
		},
		{
			name:        "First of several occurrences wins",
			occurrences: []Occurrence{{Weekday: time.Friday, Week: OrdinalThird}, {Weekday: time.Tuesday, Week: OrdinalFirst}},
			start:       date(2026, 2, 4),
			want:        date(2026, 2, 20), // first Tuesday (Feb 3) already passed
		},
		{
			name:        "Last ordinal in a 31-day month",
			occurrences: []Occurrence{{Weekday: time.Saturday, Week: OrdinalLast}},
			start:       date(2026, 1, 1),
			want:        date(2026, 1, 31),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextOccurrence(MonthlyRelative{Occurrences: tt.occurrences}, tt.start)
			if err != nil {
				t.Fatalf("NextOccurrence returned error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNextOccurrenceLastOrdinalStaysInFinalWeek(t *testing.T) {
	// The last-occurrence window is the final 7 days of the month,
	// whatever the month length.
	for month := time.January; month <= time.December; month++ {
		start := date(2026, month, 1)
		got, err := NextOccurrence(MonthlyRelative{
			Occurrences: []Occurrence{{Weekday: time.Wednesday, Week: OrdinalLast}},
		}, start)
		if err != nil {
			t.Fatalf("month %v: %v", month, err)
		}
		if got.Month() != month {
			t.Fatalf("month %v: resolved into %v", month, got)
		}
		daysInMonth := date(2026, month+1, 1).AddDate(0, 0, -1).Day()
		if got.Day() <= daysInMonth-7 {
			t.Errorf("month %v: %v not within the final 7 days", month, got)
		}
	}
}

func TestNextOccurrenceEmptyRule(t *testing.T) {
	start := date(2026, 2, 9)

	rules := []Rule{
		Weekly{},
		MonthlyAbsolute{},
		MonthlyRelative{},
		nil,
	}

	for _, rule := range rules {
		if _, err := NextOccurrence(rule, start); !errors.Is(err, ErrNoRulesDefined) {
			t.Errorf("NextOccurrence(%#v) error = %v, want ErrNoRulesDefined", rule, err)
		}
	}
}

func TestNextOccurrenceSearchExhausted(t *testing.T) {
	// A weekday value outside Sunday..Saturday never matches any date, so
	// the bounded scan must give up instead of looping forever.
	rule := MonthlyRelative{Occurrences: []Occurrence{{Weekday: time.Weekday(9), Week: OrdinalFirst}}}

	if _, err := NextOccurrence(rule, date(2026, 2, 9)); !errors.Is(err, ErrSearchExhausted) {
		t.Errorf("error = %v, want ErrSearchExhausted", err)
	}
}
