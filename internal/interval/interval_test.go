package interval

import (
	"testing"
	"time"
)

func ts(day, hour, min int) time.Time {
	return time.Date(2026, 2, day, hour, min, 0, 0, time.UTC)
}

func TestOccupiedOn(t *testing.T) {
	tests := []struct {
		name     string
		iv       TimeInterval
		date     time.Time
		wantFrom time.Duration
		wantTo   time.Duration
		wantOK   bool
	}{
		{
			name:     "Single day interval",
			iv:       TimeInterval{Start: ts(9, 10, 0), End: ts(9, 11, 30)},
			date:     ts(9, 0, 0),
			wantFrom: 10 * time.Hour,
			wantTo:   11*time.Hour + 30*time.Minute,
			wantOK:   true,
		},
		{
			name:     "Padding widens the occupied range",
			iv:       TimeInterval{Start: ts(9, 10, 0), End: ts(9, 11, 0), PaddingBefore: 15 * time.Minute, PaddingAfter: 30 * time.Minute},
			date:     ts(9, 0, 0),
			wantFrom: 9*time.Hour + 45*time.Minute,
			wantTo:   11*time.Hour + 30*time.Minute,
			wantOK:   true,
		},
		{
			name:     "First day of a multi-day interval",
			iv:       TimeInterval{Start: ts(9, 22, 0), End: ts(11, 8, 0)},
			date:     ts(9, 0, 0),
			wantFrom: 22 * time.Hour,
			wantTo:   DayLength,
			wantOK:   true,
		},
		{
			name:     "Middle day reports the full day",
			iv:       TimeInterval{Start: ts(9, 22, 0), End: ts(11, 8, 0)},
			date:     ts(10, 0, 0),
			wantFrom: 0,
			wantTo:   DayLength,
			wantOK:   true,
		},
		{
			name:     "Last day clamps at midnight",
			iv:       TimeInterval{Start: ts(9, 22, 0), End: ts(11, 8, 0)},
			date:     ts(11, 0, 0),
			wantFrom: 0,
			wantTo:   8 * time.Hour,
			wantOK:   true,
		},
		{
			name:   "Date outside the interval",
			iv:     TimeInterval{Start: ts(9, 10, 0), End: ts(9, 11, 0)},
			date:   ts(10, 0, 0),
			wantOK: false,
		},
		{
			name:     "Padding bleeding across midnight",
			iv:       TimeInterval{Start: ts(9, 23, 0), End: ts(9, 23, 30), PaddingAfter: time.Hour},
			date:     ts(10, 0, 0),
			wantFrom: 0,
			wantTo:   30 * time.Minute,
			wantOK:   true,
		},
		{
			name:   "Interval ending exactly at midnight does not touch the next day",
			iv:     TimeInterval{Start: ts(9, 23, 0), End: ts(10, 0, 0)},
			date:   ts(10, 0, 0),
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to, ok := tt.iv.OccupiedOn(tt.date)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if from != tt.wantFrom || to != tt.wantTo {
				t.Errorf("got [%v, %v), want [%v, %v)", from, to, tt.wantFrom, tt.wantTo)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [2]time.Time
		b    [2]time.Time
		want bool
	}{
		{
			name: "Partial overlap",
			a:    [2]time.Time{ts(9, 10, 0), ts(9, 12, 0)},
			b:    [2]time.Time{ts(9, 11, 0), ts(9, 13, 0)},
			want: true,
		},
		{
			name: "Touching endpoints do not overlap",
			a:    [2]time.Time{ts(9, 10, 0), ts(9, 11, 0)},
			b:    [2]time.Time{ts(9, 11, 0), ts(9, 12, 0)},
			want: false,
		},
		{
			name: "Containment",
			a:    [2]time.Time{ts(9, 9, 0), ts(9, 17, 0)},
			b:    [2]time.Time{ts(9, 11, 0), ts(9, 12, 0)},
			want: true,
		},
		{
			name: "Disjoint",
			a:    [2]time.Time{ts(9, 9, 0), ts(9, 10, 0)},
			b:    [2]time.Time{ts(9, 14, 0), ts(9, 15, 0)},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a[0], tt.a[1], tt.b[0], tt.b[1]); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// Overlap is symmetric.
			if got := Overlaps(tt.b[0], tt.b[1], tt.a[0], tt.a[1]); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDateOf(t *testing.T) {
	got := DateOf(time.Date(2026, 2, 9, 15, 4, 5, 999, time.UTC))
	want := time.Date(2026, 2, 9, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("DateOf = %v, want %v", got, want)
	}
}
