package calendar

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/booking"
	"github.com/okabrie/appointment-booking-backend/internal/interval"
	"github.com/okabrie/appointment-booking-backend/internal/layout"
	"github.com/okabrie/appointment-booking-backend/internal/pkg/apperror"
)

var (
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "end date must be after start date")
	ErrInternal         = apperror.New(http.StatusInternalServerError, "internal error")
)

// nominalWidth is the full-width allotment an event with no clashes gets.
// Placements divide it, so values come out as percentages.
const nominalWidth = 100.0

// Placement positions one event on one calendar date.
type Placement struct {
	Date        time.Time
	Row         int
	Concurrency int
	WidthPct    float64
	LeftPct     float64
}

// Event is a laid-out booking: the visible interval plus one placement per
// date its padded range touches.
type Event struct {
	Booking    *booking.Booking
	Placements []Placement
}

type Service interface {
	// View loads every non-cancelled booking intersecting [from, to] and
	// lays them out so overlapping events never share a column.
	View(ctx context.Context, from, to time.Time) ([]Event, error)
}

type service struct {
	bookings booking.Service
}

func NewService(bookings booking.Service) Service {
	return &service{bookings: bookings}
}

func (s *service) View(ctx context.Context, from, to time.Time) ([]Event, error) {
	from = interval.DateOf(from)
	to = interval.DateOf(to)
	if to.Before(from) {
		return nil, ErrInvalidDateRange
	}

	// Widen the window by a day on each side so padding that crosses
	// midnight is laid out consistently with what availability sees.
	windowFrom := from.AddDate(0, 0, -1)
	windowTo := to.AddDate(0, 0, 2)

	all, err := s.loadBookings(ctx, windowFrom, windowTo)
	if err != nil {
		return nil, fmt.Errorf("%w: load bookings: %v", ErrInternal, err)
	}

	intervals := make([]interval.TimeInterval, len(all))
	for i, b := range all {
		intervals[i] = b.Interval()
	}

	result := layout.Layout(intervals)

	events := make([]Event, 0, len(all))
	for i, b := range all {
		var placements []Placement
		for _, date := range result.Dates(i) {
			if date.Before(from) || date.After(to) {
				continue
			}
			entry, _ := result.At(i, date)
			placements = append(placements, Placement{
				Date:        date,
				Row:         entry.Row,
				Concurrency: entry.Concurrency,
				WidthPct:    entry.Width(nominalWidth),
				LeftPct:     entry.Left(nominalWidth),
			})
		}
		if len(placements) == 0 {
			continue
		}
		events = append(events, Event{Booking: b, Placements: placements})
	}

	return events, nil
}

// loadBookings pages through the booking list until the window is exhausted.
func (s *service) loadBookings(ctx context.Context, from, to time.Time) ([]*booking.Booking, error) {
	const pageSize = 200

	var all []*booking.Booking
	for page := 1; ; page++ {
		batch, total, err := s.bookings.List(ctx, booking.Filter{
			StartTime: &from,
			EndTime:   &to,
			Page:      page,
			PageSize:  pageSize,
		})
		if err != nil {
			return nil, err
		}

		for _, b := range batch {
			if b.Status == booking.StatusCancelled {
				continue
			}
			all = append(all, b)
		}

		if page*pageSize >= total || len(batch) == 0 {
			break
		}
	}
	return all, nil
}
