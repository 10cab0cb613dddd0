package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/stpnv0/BusBooker/internal/service/ports"
)

type ScheduleService struct {
	repo        ports.ScheduleRepo
	routeRepo   ports.RouteRepo
	busRepo     ports.BusRepo
	bookingRepo ports.BookingRepo
}

func NewScheduleService(
	repo ports.ScheduleRepo,
	routeRepo ports.RouteRepo,
	busRepo ports.BusRepo,
	bookingRepo ports.BookingRepo,
) *ScheduleService {
	return &ScheduleService{
		repo:        repo,
		routeRepo:   routeRepo,
		busRepo:     busRepo,
		bookingRepo: bookingRepo,
	}
}

func (s *ScheduleService) Create(ctx context.Context, input domain.CreateScheduleInput) (*domain.Schedule, error) {
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", domain.ErrValidation)
	}
	if input.DepartureTime.Before(time.Now()) {
		return nil, fmt.Errorf("%w: departure_time must be in the future", domain.ErrValidation)
	}

	if _, err := s.routeRepo.GetByID(ctx, input.RouteID); err != nil {
		return nil, fmt.Errorf("check route: %w", err)
	}

	bus, err := s.busRepo.GetByID(ctx, input.BusID)
	if err != nil {
		return nil, fmt.Errorf("check bus: %w", err)
	}

	schedule := &domain.Schedule{
		ID:            uuid.New().String(),
		RouteID:       input.RouteID,
		BusID:         input.BusID,
		DepartureTime: input.DepartureTime,
		Price:         input.Price,
		Capacity:      bus.TotalSeats,
	}

	if err := s.repo.Create(ctx, schedule); err != nil {
		return nil, fmt.Errorf("create schedule: %w", err)
	}

	return schedule, nil
}

func (s *ScheduleService) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ScheduleService) List(ctx context.Context) ([]*domain.Schedule, error) {
	return s.repo.List(ctx)
}

// GetDetails returns the schedule summary together with the free seat
// numbers derived from confirmed bookings.
func (s *ScheduleService) GetDetails(ctx context.Context, id string) (*domain.ScheduleDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	taken, err := s.bookingRepo.SeatNumbers(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list booked seats: %w", err)
	}

	details.AvailableSeats = domain.AvailableSeats(details.Schedule.Capacity, taken)

	return details, nil
}

// Delete refuses to remove a schedule that has bookings on record.
func (s *ScheduleService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
