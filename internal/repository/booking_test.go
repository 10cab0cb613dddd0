package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"
)

func newBookingRepo(t *testing.T) (*BookingRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewBookingRepo(&dbpg.DB{Master: db}), mock
}

func bookingColumns() []string {
	return []string{"id", "schedule_id", "user_id", "seat_number", "status", "booked_at", "cancelled_at", "reminder_sent"}
}

func TestBookingRepository_Create_Success(t *testing.T) {
	repo, mock := newBookingRepo(t)

	booking := &domain.Booking{
		ID:         "b1",
		ScheduleID: "s1",
		UserID:     "u1",
		SeatNumber: 7,
		Status:     domain.BookingStatusConfirmed,
		BookedAt:   time.Now().UTC(),
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT bus.total_seats").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"total_seats"}).AddRow(40))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("s1", 7, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("b1", "s1", "u1", 7, "confirmed", booking.BookedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Create(context.Background(), booking)

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_ScheduleNotFound(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT bus.total_seats").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"total_seats"}))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Booking{
		ID:         "b1",
		ScheduleID: "missing",
		UserID:     "u1",
		SeatNumber: 1,
		Status:     domain.BookingStatusConfirmed,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrScheduleNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_SeatOutOfRange(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT bus.total_seats").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"total_seats"}).AddRow(10))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Booking{
		ID:         "b1",
		ScheduleID: "s1",
		UserID:     "u1",
		SeatNumber: 11,
		Status:     domain.BookingStatusConfirmed,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidSeat)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_SeatTaken(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT bus.total_seats").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"total_seats"}).AddRow(40))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("s1", 7, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Booking{
		ID:         "b1",
		ScheduleID: "s1",
		UserID:     "u1",
		SeatNumber: 7,
		Status:     domain.BookingStatusConfirmed,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeatTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Create_UniqueIndexBackstop(t *testing.T) {
	repo, mock := newBookingRepo(t)

	// A concurrent insert can commit between the EXISTS probe and our INSERT;
	// the partial unique index then rejects the insert with 23505.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT bus.total_seats").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"total_seats"}).AddRow(40))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("s1", 7, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("b2", "s1", "u2", 7, "confirmed", sqlmock.AnyArg()).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_confirmed_seat_uniq"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &domain.Booking{
		ID:         "b2",
		ScheduleID: "s1",
		UserID:     "u2",
		SeatNumber: 7,
		Status:     domain.BookingStatusConfirmed,
		BookedAt:   time.Now().UTC(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSeatTaken)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_SeatReusableAfterCancel(t *testing.T) {
	repo, mock := newBookingRepo(t)

	bookedAt := time.Now().Add(-time.Hour)

	// Cancel frees seat 7: the row stays but leaves confirmed status.
	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE bookings").WithArgs("b1", "cancelled", "confirmed").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow("b1", "s1", "u1", 7, "cancelled", bookedAt, time.Now(), false))
	mock.ExpectCommit()

	cancelled, err := repo.Cancel(context.Background(), "b1")
	require.NoError(t, err)

	// Rebooking the same seat sees no confirmed holder and succeeds as a new
	// booking; the cancelled row is untouched history.
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT bus.total_seats").WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"total_seats"}).AddRow(40))
	mock.ExpectQuery("SELECT EXISTS").WithArgs("s1", 7, "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	mock.ExpectExec("INSERT INTO bookings").
		WithArgs("b2", "s1", "u2", 7, "confirmed", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	rebooked := &domain.Booking{
		ID:         "b2",
		ScheduleID: "s1",
		UserID:     "u2",
		SeatNumber: 7,
		Status:     domain.BookingStatusConfirmed,
		BookedAt:   time.Now().UTC(),
	}
	err = repo.Create(context.Background(), rebooked)

	require.NoError(t, err)
	assert.NotEqual(t, cancelled.ID, rebooked.ID)
	assert.Equal(t, cancelled.SeatNumber, rebooked.SeatNumber)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_Success(t *testing.T) {
	repo, mock := newBookingRepo(t)

	bookedAt := time.Now().Add(-time.Hour)
	cancelledAt := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE bookings").WithArgs("b1", "cancelled", "confirmed").
		WillReturnRows(sqlmock.NewRows(bookingColumns()).
			AddRow("b1", "s1", "u1", 7, "cancelled", bookedAt, cancelledAt, false))
	mock.ExpectCommit()

	booking, err := repo.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
	require.NotNil(t, booking.CancelledAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_AlreadyCancelled(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE bookings").WithArgs("b1", "cancelled", "confirmed").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectQuery("SELECT status FROM bookings").WithArgs("b1").
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("cancelled"))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "b1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAlreadyCancelled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_Cancel_NotFound(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery("UPDATE bookings").WithArgs("missing", "cancelled", "confirmed").
		WillReturnRows(sqlmock.NewRows(bookingColumns()))
	mock.ExpectQuery("SELECT status FROM bookings").WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"status"}))
	mock.ExpectRollback()

	_, err := repo.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBookingRepository_SeatNumbers_Success(t *testing.T) {
	repo, mock := newBookingRepo(t)

	mock.ExpectQuery("SELECT seat_number FROM bookings").WithArgs("s1", "confirmed").
		WillReturnRows(sqlmock.NewRows([]string{"seat_number"}).AddRow(2).AddRow(5).AddRow(9))

	seats, err := repo.SeatNumbers(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, []int{2, 5, 9}, seats)
	require.NoError(t, mock.ExpectationsWereMet())
}
