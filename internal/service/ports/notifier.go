package ports

import (
	"context"

	"github.com/stpnv0/BusBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingConfirmed(ctx context.Context, user *domain.User, booking *domain.Booking, schedule *domain.Schedule)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, booking *domain.Booking, schedule *domain.Schedule)
	NotifyDepartureReminder(ctx context.Context, user *domain.User, booking *domain.Booking, schedule *domain.Schedule)
}
