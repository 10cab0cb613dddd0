package scheduler

import (
	"context"
	"time"

	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type departureReminder interface {
	RemindDepartures(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler periodically asks the booking service to send departure
// reminders for trips leaving soon.
type Scheduler struct {
	bookingService departureReminder
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService departureReminder,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	reminded, err := s.bookingService.RemindDepartures(ctx)
	if err != nil {
		s.logger.Error("failed to send departure reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range reminded {
		s.logger.Info("departure reminder sent",
			logger.String("booking_id", b.ID),
			logger.String("user_id", b.UserID),
			logger.String("schedule_id", b.ScheduleID),
		)
	}
}
