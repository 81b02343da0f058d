package offering

import (
	"context"
	"fmt"
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/availability"
	"github.com/okabrie/appointment-booking-backend/internal/interval"
	"github.com/okabrie/appointment-booking-backend/internal/recurrence"
)

type CreateRequest struct {
	Name          string
	Description   string
	StartDate     time.Time
	OpenTime      time.Duration
	CloseTime     time.Duration
	SlotDuration  time.Duration
	SlotFrequency time.Duration
	Rule          recurrence.Rule
}

type UpdateRequest struct {
	Name          *string
	Description   *string
	StartDate     *time.Time
	OpenTime      *time.Duration
	CloseTime     *time.Duration
	SlotDuration  *time.Duration
	SlotFrequency *time.Duration
	Rule          recurrence.Rule
}

// IntervalSource supplies the occupied intervals of existing bookings for an
// offering within a date range. Implemented by the booking repository; the
// availability computation itself performs no I/O.
type IntervalSource interface {
	ListIntervals(ctx context.Context, offeringID string, from, to time.Time) ([]interval.TimeInterval, error)
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Offering, error)
	GetByID(ctx context.Context, id string) (*Offering, error)
	List(ctx context.Context, filter Filter) ([]*Offering, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Offering, error)
	Delete(ctx context.Context, id string) error

	// Availability computes the per-date slot grid for the offering over
	// [from, to], cross-referenced against existing bookings.
	Availability(ctx context.Context, id string, from, to time.Time) ([]availability.DateAvailability, error)
}

type service struct {
	repo      Repository
	intervals IntervalSource
}

func NewService(repo Repository, intervals IntervalSource) Service {
	return &service{
		repo:      repo,
		intervals: intervals,
	}
}

// validateDefinition rejects definitions that can never yield a slot or
// whose recurrence rule is empty or malformed. The resolver only reports an
// empty rule at resolution time; catching it here keeps bad definitions out
// of the database.
func validateDefinition(o *Offering) error {
	if o.Name == "" {
		return ErrEmptyName
	}
	if o.SlotDuration <= 0 || o.SlotFrequency <= 0 {
		return ErrInvalidSlotTimes
	}
	if o.OpenTime+o.SlotDuration > o.CloseTime {
		return ErrNoBookableSlots
	}
	return validateRule(o.Rule)
}

func validateRule(rule recurrence.Rule) error {
	if rule == nil || rule.Empty() {
		return ErrEmptyRule
	}

	switch v := rule.(type) {
	case recurrence.Weekly:
		for _, d := range v.Days {
			if d < time.Sunday || d > time.Saturday {
				return fmt.Errorf("%w: weekday %d out of range", ErrInvalidRule, d)
			}
		}
	case recurrence.MonthlyAbsolute:
		for _, d := range v.Days {
			if d < 1 || d > 31 {
				return fmt.Errorf("%w: day of month %d out of range", ErrInvalidRule, d)
			}
		}
	case recurrence.MonthlyRelative:
		for _, occ := range v.Occurrences {
			if occ.Weekday < time.Sunday || occ.Weekday > time.Saturday {
				return fmt.Errorf("%w: weekday %d out of range", ErrInvalidRule, occ.Weekday)
			}
			if !occ.Week.Valid() {
				return fmt.Errorf("%w: ordinal week %d out of range", ErrInvalidRule, occ.Week)
			}
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Offering, error) {
	o := &Offering{
		Name:          req.Name,
		Description:   req.Description,
		StartDate:     interval.DateOf(req.StartDate),
		OpenTime:      req.OpenTime,
		CloseTime:     req.CloseTime,
		SlotDuration:  req.SlotDuration,
		SlotFrequency: req.SlotFrequency,
		Rule:          req.Rule,
	}

	if err := validateDefinition(o); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Offering, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Offering, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Offering, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		o.Name = *req.Name
	}
	if req.Description != nil {
		o.Description = *req.Description
	}
	if req.StartDate != nil {
		o.StartDate = interval.DateOf(*req.StartDate)
	}
	if req.OpenTime != nil {
		o.OpenTime = *req.OpenTime
	}
	if req.CloseTime != nil {
		o.CloseTime = *req.CloseTime
	}
	if req.SlotDuration != nil {
		o.SlotDuration = *req.SlotDuration
	}
	if req.SlotFrequency != nil {
		o.SlotFrequency = *req.SlotFrequency
	}
	if req.Rule != nil {
		o.Rule = req.Rule
	}

	if err := validateDefinition(o); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Availability(ctx context.Context, id string, from, to time.Time) ([]availability.DateAvailability, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Validate the range before touching the booking store, so an inverted
	// range reports as a client error rather than a wasted query.
	if interval.DateOf(to).Before(interval.DateOf(from)) {
		return nil, availability.ErrInvalidDateRange
	}

	// Widen the lookup by a day on each side so bookings whose padding
	// bleeds across midnight into the range are not missed.
	bookings, err := s.intervals.ListIntervals(ctx, id, interval.DateOf(from).AddDate(0, 0, -1), interval.DateOf(to).AddDate(0, 0, 2))
	if err != nil {
		// No partial grids: a collaborator fault fails the whole request.
		return nil, fmt.Errorf("%w: list booking intervals: %v", ErrInternal, err)
	}

	return availability.ComputeAvailability(o.Definition(), from, to, bookings)
}
