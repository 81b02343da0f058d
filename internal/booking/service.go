package booking

import (
	"context"
	"time"

	"github.com/okabrie/appointment-booking-backend/internal/availability"
	"github.com/okabrie/appointment-booking-backend/internal/interval"
	"github.com/okabrie/appointment-booking-backend/internal/offering"
)

type CreateRequest struct {
	OfferingID    string
	CustomerName  string
	StartTime     time.Time
	PaddingBefore time.Duration
	PaddingAfter  time.Duration
}

type UpdateRequest struct {
	Status *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo       Repository
	offService offering.Service
}

func NewService(repo Repository, offService offering.Service) Service {
	return &service{
		repo:       repo,
		offService: offService,
	}
}

// Create runs the booking-request workflow: the requested start must be an
// offered slot on its date, and that slot must still be available once
// existing bookings are cross-referenced. The booking's end time is derived
// from the offering's slot duration.
func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	off, err := s.offService.GetByID(ctx, req.OfferingID)
	if err != nil {
		return nil, err
	}

	date := interval.DateOf(req.StartTime)
	startOfDay := req.StartTime.Sub(date)

	days, err := s.offService.Availability(ctx, req.OfferingID, date, date)
	if err != nil {
		return nil, err
	}

	slot, ok := findSlot(days, date, startOfDay)
	if !ok {
		return nil, ErrSlotNotOffered
	}
	if slot.Status != availability.StatusAvailable {
		return nil, ErrSlotUnavailable
	}

	b := &Booking{
		OfferingID:    req.OfferingID,
		CustomerName:  req.CustomerName,
		StartTime:     req.StartTime,
		EndTime:       req.StartTime.Add(off.SlotDuration),
		PaddingBefore: req.PaddingBefore,
		PaddingAfter:  req.PaddingAfter,
		Status:        StatusPending, // Default status
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	b.OfferingName = off.Name

	return b, nil
}

// findSlot locates the offered slot starting at the given time-of-day on the
// given date. ok is false when the date carries no such slot, including dates
// the offering does not run on at all.
func findSlot(days []availability.DateAvailability, date time.Time, startOfDay time.Duration) (availability.Slot, bool) {
	for _, day := range days {
		if !interval.SameDate(day.Date, date) {
			continue
		}
		for _, slot := range day.Slots {
			if slot.Start == startOfDay {
				return slot, true
			}
		}
	}
	return availability.Slot{}, false
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		st := Status(*req.Status)
		if st != StatusPending && st != StatusConfirmed && st != StatusCancelled {
			return nil, ErrInvalidStatus
		}
		b.Status = st
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
