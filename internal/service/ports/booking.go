package ports

import (
	"context"
	"time"

	"github.com/stpnv0/BusBooker/internal/domain"
)

type BookingRepo interface {
	// Create commits the booking atomically with respect to the seat
	// uniqueness invariant: it must fail with domain.ErrSeatTaken when a
	// confirmed booking already holds (schedule, seat), and with
	// domain.ErrInvalidSeat when the seat is outside the bus capacity.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	// Cancel flips a confirmed booking to cancelled and returns the updated
	// record. Cancelling twice fails with domain.ErrAlreadyCancelled.
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	// SeatNumbers returns the seat numbers held by confirmed bookings of the
	// schedule, ascending.
	SeatNumbers(ctx context.Context, scheduleID string) ([]int, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Booking, error)
	// MarkDueReminders marks confirmed bookings whose schedule departs within
	// the lead window and returns them, so each booking is reminded once.
	MarkDueReminders(ctx context.Context, lead time.Duration) ([]*domain.Booking, error)
}
