package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/stpnv0/BusBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo  ports.BookingRepo
	scheduleRepo ports.ScheduleRepo
	userRepo     ports.UserRepo
	notifier     ports.BookingNotifier
	reminderLead time.Duration
	logger       logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	scheduleRepo ports.ScheduleRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	reminderLead time.Duration,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		scheduleRepo: scheduleRepo,
		userRepo:     userRepo,
		notifier:     notifier,
		reminderLead: reminderLead,
		logger:       logger,
	}
}

// Book claims one seat of one schedule for a user. Validation runs in order:
// schedule existence, seat range, seat unheld. The last check and the insert
// are a single transaction in the repository, so of two requests racing for
// the same seat exactly one succeeds and the other gets domain.ErrSeatTaken.
func (s *BookingService) Book(ctx context.Context, userID, scheduleID string, seatNumber int) (*domain.Booking, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("check schedule: %w", err)
	}

	if seatNumber < 1 || seatNumber > schedule.Capacity {
		return nil, fmt.Errorf("%w: seat %d is outside 1..%d",
			domain.ErrInvalidSeat, seatNumber, schedule.Capacity)
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	booking := &domain.Booking{
		ID:         uuid.New().String(),
		ScheduleID: scheduleID,
		UserID:     userID,
		SeatNumber: seatNumber,
		Status:     domain.BookingStatusConfirmed,
		BookedAt:   time.Now().UTC(),
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("schedule_id", scheduleID),
		logger.String("user_id", userID),
		logger.Int("seat_number", seatNumber),
	)

	go s.notifier.NotifyBookingConfirmed(context.WithoutCancel(ctx), user, booking, schedule)

	return booking, nil
}

// Cancel flips a booking to cancelled and frees its seat. Only the booking
// owner or an administrator may cancel; a second cancel fails with
// domain.ErrAlreadyCancelled and changes nothing.
func (s *BookingService) Cancel(ctx context.Context, requesterID, bookingID string) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	requester, err := s.userRepo.GetByID(ctx, requesterID)
	if err != nil {
		return fmt.Errorf("check requester: %w", err)
	}

	if booking.UserID != requesterID && !requester.IsAdmin {
		return domain.ErrForbidden
	}

	if booking.Status == domain.BookingStatusCancelled {
		return domain.ErrAlreadyCancelled
	}

	cancelled, err := s.bookingRepo.Cancel(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("cancel booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", cancelled.ID),
		logger.String("schedule_id", cancelled.ScheduleID),
		logger.String("requester_id", requesterID),
		logger.Int("seat_number", cancelled.SeatNumber),
	)

	owner := requester
	if cancelled.UserID != requesterID {
		owner, err = s.userRepo.GetByID(ctx, cancelled.UserID)
		if err != nil {
			s.logger.Error("failed to get owner for notification",
				logger.String("user_id", cancelled.UserID),
				logger.String("error", err.Error()),
			)
			return nil
		}
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, cancelled.ScheduleID)
	if err != nil {
		s.logger.Error("failed to get schedule for notification",
			logger.String("schedule_id", cancelled.ScheduleID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), owner, cancelled, schedule)

	return nil
}

// AvailableSeats derives the free seat numbers of a schedule from its
// confirmed bookings. The view is consistent with every committed write.
func (s *BookingService) AvailableSeats(ctx context.Context, scheduleID string) ([]int, error) {
	schedule, err := s.scheduleRepo.GetByID(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("check schedule: %w", err)
	}

	taken, err := s.bookingRepo.SeatNumbers(ctx, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("list booked seats: %w", err)
	}

	return domain.AvailableSeats(schedule.Capacity, taken), nil
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *BookingService) ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Booking, error) {
	if _, err := s.scheduleRepo.GetByID(ctx, scheduleID); err != nil {
		return nil, fmt.Errorf("check schedule: %w", err)
	}
	return s.bookingRepo.ListBySchedule(ctx, scheduleID)
}

// RemindDepartures marks every confirmed, not-yet-reminded booking whose trip
// departs within the configured lead window and notifies its owner.
func (s *BookingService) RemindDepartures(ctx context.Context) ([]*domain.Booking, error) {
	due, err := s.bookingRepo.MarkDueReminders(ctx, s.reminderLead)
	if err != nil {
		return nil, fmt.Errorf("mark due reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("departure reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *BookingService) notifyReminders(ctx context.Context, bookings []*domain.Booking) {
	for _, b := range bookings {
		user, err := s.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			s.logger.Error("failed to get user for reminder",
				logger.String("user_id", b.UserID),
			)
			continue
		}

		schedule, err := s.scheduleRepo.GetByID(ctx, b.ScheduleID)
		if err != nil {
			s.logger.Error("failed to get schedule for reminder",
				logger.String("schedule_id", b.ScheduleID),
			)
			continue
		}

		s.notifier.NotifyDepartureReminder(ctx, user, b, schedule)
	}
}
