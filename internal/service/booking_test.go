package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/stpnv0/BusBooker/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newBookingService(t *testing.T) (
	*BookingService,
	*mocks.MockBookingRepo,
	*mocks.MockScheduleRepo,
	*mocks.MockUserRepo,
	*mocks.MockBookingNotifier,
) {
	t.Helper()
	bookingRepo := mocks.NewMockBookingRepo(t)
	scheduleRepo := mocks.NewMockScheduleRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	notifier := mocks.NewMockBookingNotifier(t)
	log := newTestLogger(t)

	svc := NewBookingService(bookingRepo, scheduleRepo, userRepo, notifier, 24*time.Hour, log)
	return svc, bookingRepo, scheduleRepo, userRepo, notifier
}

func TestBookingService_Book_Success(t *testing.T) {
	svc, bookingRepo, scheduleRepo, userRepo, notifier := newBookingService(t)

	schedule := &domain.Schedule{ID: "s1", Capacity: 40}
	user := &domain.User{ID: "u1", Username: "alice"}

	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(schedule, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	notifier.EXPECT().NotifyBookingConfirmed(mock.Anything, user, mock.Anything, schedule).Return()

	booking, err := svc.Book(context.Background(), "u1", "s1", 12)

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)
	assert.Equal(t, "s1", booking.ScheduleID)
	assert.Equal(t, "u1", booking.UserID)
	assert.Equal(t, 12, booking.SeatNumber)
	assert.NotEmpty(t, booking.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Book_ScheduleNotFound(t *testing.T) {
	svc, _, scheduleRepo, _, _ := newBookingService(t)

	scheduleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrScheduleNotFound)

	_, err := svc.Book(context.Background(), "u1", "missing", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestBookingService_Book_SeatOutOfRange(t *testing.T) {
	svc, _, scheduleRepo, _, _ := newBookingService(t)

	schedule := &domain.Schedule{ID: "s1", Capacity: 40}
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(schedule, nil)

	_, err := svc.Book(context.Background(), "u1", "s1", 41)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSeat)
}

func TestBookingService_Book_SeatZero(t *testing.T) {
	svc, _, scheduleRepo, _, _ := newBookingService(t)

	schedule := &domain.Schedule{ID: "s1", Capacity: 40}
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(schedule, nil)

	_, err := svc.Book(context.Background(), "u1", "s1", 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSeat)
}

func TestBookingService_Book_UserNotFound(t *testing.T) {
	svc, _, scheduleRepo, userRepo, _ := newBookingService(t)

	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Schedule{ID: "s1", Capacity: 40}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.Book(context.Background(), "missing", "s1", 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_Book_SeatTaken(t *testing.T) {
	svc, bookingRepo, scheduleRepo, userRepo, _ := newBookingService(t)

	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Schedule{ID: "s1", Capacity: 40}, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrSeatTaken)

	_, err := svc.Book(context.Background(), "u1", "s1", 7)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeatTaken)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, bookingRepo, scheduleRepo, userRepo, notifier := newBookingService(t)

	booking := &domain.Booking{
		ID:         "b1",
		ScheduleID: "s1",
		UserID:     "u1",
		SeatNumber: 7,
		Status:     domain.BookingStatusConfirmed,
	}
	cancelled := &domain.Booking{
		ID:         "b1",
		ScheduleID: "s1",
		UserID:     "u1",
		SeatNumber: 7,
		Status:     domain.BookingStatusCancelled,
	}
	owner := &domain.User{ID: "u1", Username: "alice"}
	schedule := &domain.Schedule{ID: "s1", Capacity: 40}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, nil)
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(schedule, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, owner, cancelled, schedule).Return()

	err := svc.Cancel(context.Background(), "u1", "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Cancel_AdminCancelsForeignBooking(t *testing.T) {
	svc, bookingRepo, scheduleRepo, userRepo, notifier := newBookingService(t)

	booking := &domain.Booking{ID: "b1", ScheduleID: "s1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	cancelled := &domain.Booking{ID: "b1", ScheduleID: "s1", UserID: "u1", Status: domain.BookingStatusCancelled}
	admin := &domain.User{ID: "adm", Username: "root", IsAdmin: true}
	owner := &domain.User{ID: "u1", Username: "alice"}
	schedule := &domain.Schedule{ID: "s1"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "adm").Return(admin, nil)
	bookingRepo.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(owner, nil)
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(schedule, nil)
	notifier.EXPECT().NotifyBookingCancelled(mock.Anything, owner, cancelled, schedule).Return()

	err := svc.Cancel(context.Background(), "adm", "b1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_Forbidden(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", ScheduleID: "s1", UserID: "u1", Status: domain.BookingStatusConfirmed}
	stranger := &domain.User{ID: "u2", Username: "mallory"}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(stranger, nil)

	err := svc.Cancel(context.Background(), "u2", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	booking := &domain.Booking{ID: "b1", ScheduleID: "s1", UserID: "u1", Status: domain.BookingStatusCancelled}

	bookingRepo.EXPECT().GetByID(mock.Anything, "b1").Return(booking, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)

	err := svc.Cancel(context.Background(), "u1", "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
}

func TestBookingService_Cancel_BookingNotFound(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrBookingNotFound)

	err := svc.Cancel(context.Background(), "u1", "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_AvailableSeats_Success(t *testing.T) {
	svc, bookingRepo, scheduleRepo, _, _ := newBookingService(t)

	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Schedule{ID: "s1", Capacity: 5}, nil)
	bookingRepo.EXPECT().SeatNumbers(mock.Anything, "s1").Return([]int{2, 4}, nil)

	seats, err := svc.AvailableSeats(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, seats)
}

func TestBookingService_AvailableSeats_SeatFreedAfterCancel(t *testing.T) {
	svc, bookingRepo, scheduleRepo, _, _ := newBookingService(t)

	// seat 2 was cancelled, so only the still-confirmed seat is held
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Schedule{ID: "s1", Capacity: 3}, nil)
	bookingRepo.EXPECT().SeatNumbers(mock.Anything, "s1").Return([]int{1}, nil)

	seats, err := svc.AvailableSeats(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, seats)
}

func TestBookingService_AvailableSeats_ScheduleNotFound(t *testing.T) {
	svc, _, scheduleRepo, _, _ := newBookingService(t)

	scheduleRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrScheduleNotFound)

	_, err := svc.AvailableSeats(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
}

func TestBookingService_ListByUser_Success(t *testing.T) {
	svc, bookingRepo, _, userRepo, _ := newBookingService(t)

	bookings := []*domain.Booking{
		{ID: "b1", ScheduleID: "s1", UserID: "u1", SeatNumber: 3, Status: domain.BookingStatusConfirmed},
	}
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	bookingRepo.EXPECT().ListByUser(mock.Anything, "u1").Return(bookings, nil)

	result, err := svc.ListByUser(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestBookingService_ListByUser_UserNotFound(t *testing.T) {
	svc, _, _, userRepo, _ := newBookingService(t)

	userRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrUserNotFound)

	_, err := svc.ListByUser(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestBookingService_ListBySchedule_Success(t *testing.T) {
	svc, bookingRepo, scheduleRepo, _, _ := newBookingService(t)

	bookings := []*domain.Booking{
		{ID: "b1", ScheduleID: "s1", UserID: "u1", SeatNumber: 1, Status: domain.BookingStatusConfirmed},
		{ID: "b2", ScheduleID: "s1", UserID: "u2", SeatNumber: 2, Status: domain.BookingStatusCancelled},
	}
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(&domain.Schedule{ID: "s1"}, nil)
	bookingRepo.EXPECT().ListBySchedule(mock.Anything, "s1").Return(bookings, nil)

	result, err := svc.ListBySchedule(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, result, 2)
}

func TestBookingService_RemindDepartures_Success(t *testing.T) {
	svc, bookingRepo, scheduleRepo, userRepo, notifier := newBookingService(t)

	due := []*domain.Booking{
		{ID: "b1", ScheduleID: "s1", UserID: "u1", SeatNumber: 1},
		{ID: "b2", ScheduleID: "s2", UserID: "u2", SeatNumber: 9},
	}
	user1 := &domain.User{ID: "u1"}
	user2 := &domain.User{ID: "u2"}
	schedule1 := &domain.Schedule{ID: "s1"}
	schedule2 := &domain.Schedule{ID: "s2"}

	bookingRepo.EXPECT().MarkDueReminders(mock.Anything, 24*time.Hour).Return(due, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user1, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(user2, nil)
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s1").Return(schedule1, nil)
	scheduleRepo.EXPECT().GetByID(mock.Anything, "s2").Return(schedule2, nil)
	notifier.EXPECT().NotifyDepartureReminder(mock.Anything, user1, due[0], schedule1).Return()
	notifier.EXPECT().NotifyDepartureReminder(mock.Anything, user2, due[1], schedule2).Return()

	result, err := svc.RemindDepartures(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_RemindDepartures_NoneDue(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().MarkDueReminders(mock.Anything, 24*time.Hour).Return(nil, nil)

	result, err := svc.RemindDepartures(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_RemindDepartures_RepoError(t *testing.T) {
	svc, bookingRepo, _, _, _ := newBookingService(t)

	bookingRepo.EXPECT().MarkDueReminders(mock.Anything, 24*time.Hour).Return(nil, errors.New("db error"))

	_, err := svc.RemindDepartures(context.Background())

	require.Error(t, err)
}
