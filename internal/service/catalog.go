package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/stpnv0/BusBooker/internal/service/ports"
)

// CatalogService owns the simple keyed records the booking core references:
// routes and buses. No invariants beyond identifier uniqueness and deletion
// being refused while schedules reference a record.
type CatalogService struct {
	routeRepo ports.RouteRepo
	busRepo   ports.BusRepo
}

func NewCatalogService(routeRepo ports.RouteRepo, busRepo ports.BusRepo) *CatalogService {
	return &CatalogService{
		routeRepo: routeRepo,
		busRepo:   busRepo,
	}
}

func (s *CatalogService) CreateRoute(ctx context.Context, input domain.CreateRouteInput) (*domain.Route, error) {
	if input.FromLocation == "" || input.ToLocation == "" {
		return nil, fmt.Errorf("%w: from_location and to_location are required", domain.ErrValidation)
	}
	if input.DistanceKM <= 0 {
		return nil, fmt.Errorf("%w: distance_km must be positive", domain.ErrValidation)
	}

	route := &domain.Route{
		ID:           uuid.New().String(),
		FromLocation: input.FromLocation,
		ToLocation:   input.ToLocation,
		DistanceKM:   input.DistanceKM,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.routeRepo.Create(ctx, route); err != nil {
		return nil, fmt.Errorf("create route: %w", err)
	}

	return route, nil
}

func (s *CatalogService) ListRoutes(ctx context.Context) ([]*domain.Route, error) {
	return s.routeRepo.List(ctx)
}

func (s *CatalogService) DeleteRoute(ctx context.Context, id string) error {
	return s.routeRepo.Delete(ctx, id)
}

func (s *CatalogService) CreateBus(ctx context.Context, input domain.CreateBusInput) (*domain.Bus, error) {
	if input.Number == "" {
		return nil, fmt.Errorf("%w: number is required", domain.ErrValidation)
	}
	if input.TotalSeats <= 0 {
		return nil, fmt.Errorf("%w: total_seats must be positive", domain.ErrValidation)
	}

	bus := &domain.Bus{
		ID:         uuid.New().String(),
		Number:     input.Number,
		Name:       input.Name,
		TotalSeats: input.TotalSeats,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.busRepo.Create(ctx, bus); err != nil {
		return nil, fmt.Errorf("create bus: %w", err)
	}

	return bus, nil
}

func (s *CatalogService) ListBuses(ctx context.Context) ([]*domain.Bus, error) {
	return s.busRepo.List(ctx)
}

func (s *CatalogService) DeleteBus(ctx context.Context, id string) error {
	return s.busRepo.Delete(ctx, id)
}
