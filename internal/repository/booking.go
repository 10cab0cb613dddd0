package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/stpnv0/BusBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts a confirmed booking. The schedule row is locked for the
// duration of the transaction, so two requests racing for the same schedule
// are serialized and the loser sees the winner's committed seat. The partial
// unique index on (schedule_id, seat_number) for confirmed bookings backs
// this up at the storage level.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	capQuery := `SELECT bus.total_seats
				 FROM schedules s
				 JOIN buses bus ON bus.id = s.bus_id
				 WHERE s.id = $1
				 FOR UPDATE OF s`
	var capacity int
	if err = tx.QueryRowContext(ctx, capQuery, b.ScheduleID).Scan(&capacity); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrScheduleNotFound
		}
		return fmt.Errorf("get schedule capacity: %w", err)
	}

	if b.SeatNumber < 1 || b.SeatNumber > capacity {
		return fmt.Errorf("%w: seat %d is outside 1..%d", domain.ErrInvalidSeat, b.SeatNumber, capacity)
	}

	takenQuery := `SELECT EXISTS (
					   SELECT 1 FROM bookings
					   WHERE schedule_id = $1 AND seat_number = $2 AND status = $3
				   )`
	var taken bool
	if err = tx.QueryRowContext(
		ctx, takenQuery, b.ScheduleID, b.SeatNumber, domain.BookingStatusConfirmed,
	).Scan(&taken); err != nil {
		return fmt.Errorf("check seat: %w", err)
	}
	if taken {
		return domain.ErrSeatTaken
	}

	query := `INSERT INTO bookings (id, schedule_id, user_id, seat_number, status, booked_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.ScheduleID,
		b.UserID, b.SeatNumber, b.Status, b.BookedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSeatTaken
		}
		return fmt.Errorf("insert booking: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, schedule_id, user_id, seat_number, status, booked_at, cancelled_at, reminder_sent
			  FROM bookings
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	b, err := scanBooking(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return b, nil
}

// Cancel flips a confirmed booking to cancelled in one guarded update. A
// second cancel affects zero rows; the reason (missing vs already cancelled)
// is diagnosed inside the same transaction.
func (r *BookingRepository) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, cancelled_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING id, schedule_id, user_id, seat_number, status, booked_at, cancelled_at, reminder_sent`
	row := tx.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusCancelled, domain.BookingStatusConfirmed,
	)

	b, err := scanBooking(row.Scan)
	if err != nil {
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cancel booking: %w", err)
		}

		var status string
		checkQuery := `SELECT status FROM bookings WHERE id = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, id).Scan(&status); scanErr != nil {
			return nil, domain.ErrBookingNotFound
		}
		if status == string(domain.BookingStatusCancelled) {
			return nil, domain.ErrAlreadyCancelled
		}
		return nil, domain.ErrBookingNotFound
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit cancel: %w", err)
	}

	return b, nil
}

func (r *BookingRepository) SeatNumbers(ctx context.Context, scheduleID string) ([]int, error) {
	query := `SELECT seat_number FROM bookings
			  WHERE schedule_id = $1 AND status = $2
			  ORDER BY seat_number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, scheduleID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, fmt.Errorf("list seat numbers: %w", err)
	}
	defer rows.Close()

	var res []int
	for rows.Next() {
		var n int
		if err = rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan seat number: %w", err)
		}
		res = append(res, n)
	}

	return res, rows.Err()
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	query := `SELECT id, schedule_id, user_id, seat_number, status, booked_at, cancelled_at, reminder_sent
			  FROM bookings
			  WHERE user_id = $1
			  ORDER BY booked_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by user: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) ListBySchedule(ctx context.Context, scheduleID string) ([]*domain.Booking, error) {
	query := `SELECT id, schedule_id, user_id, seat_number, status, booked_at, cancelled_at, reminder_sent
			  FROM bookings
			  WHERE schedule_id = $1
			  ORDER BY booked_at, id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("list bookings by schedule: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func (r *BookingRepository) MarkDueReminders(ctx context.Context, lead time.Duration) ([]*domain.Booking, error) {
	query := `
        UPDATE bookings b
        SET reminder_sent = TRUE
        FROM schedules s
        WHERE b.schedule_id = s.id
          AND b.status = $1
          AND NOT b.reminder_sent
          AND s.departure_time > now()
          AND s.departure_time <= now() + make_interval(secs => $2)
        RETURNING b.id, b.schedule_id, b.user_id, b.seat_number,
                  b.status, b.booked_at, b.cancelled_at, b.reminder_sent`

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query,
		domain.BookingStatusConfirmed, lead.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("mark due reminders: %w", err)
	}
	defer rows.Close()

	return collectBookings(rows)
}

func scanBooking(scan func(dest ...any) error) (*domain.Booking, error) {
	var b domain.Booking
	var cancelledAt sql.NullTime
	if err := scan(
		&b.ID, &b.ScheduleID, &b.UserID, &b.SeatNumber,
		&b.Status, &b.BookedAt, &cancelledAt, &b.ReminderSent,
	); err != nil {
		return nil, err
	}
	if cancelledAt.Valid {
		b.CancelledAt = &cancelledAt.Time
	}
	return &b, nil
}

func collectBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	var res []*domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}
		res = append(res, b)
	}
	return res, rows.Err()
}
