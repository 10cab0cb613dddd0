package ports

import (
	"context"

	"github.com/stpnv0/BusBooker/internal/domain"
)

type ScheduleRepo interface {
	Create(ctx context.Context, s *domain.Schedule) error
	GetByID(ctx context.Context, id string) (*domain.Schedule, error)
	List(ctx context.Context) ([]*domain.Schedule, error)
	GetDetails(ctx context.Context, id string) (*domain.ScheduleDetails, error)
	// Delete removes the schedule unless bookings reference it (confirmed or
	// retained history), in which case it fails with
	// domain.ErrScheduleHasBookings.
	Delete(ctx context.Context, id string) error
}
