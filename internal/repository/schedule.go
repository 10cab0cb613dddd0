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

type ScheduleRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewScheduleRepo(db *dbpg.DB) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *ScheduleRepository) Create(ctx context.Context, s *domain.Schedule) error {
	query := `INSERT INTO schedules (id, route_id, bus_id, departure_time, price, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.RouteID, s.BusID, s.DepartureTime, s.Price, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			switch pgErr.Constraint {
			case "schedules_route_id_fkey":
				return domain.ErrRouteNotFound
			case "schedules_bus_id_fkey":
				return domain.ErrBusNotFound
			}
		}
		return fmt.Errorf("insert schedule: %w", err)
	}

	return nil
}

func (r *ScheduleRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	query := `SELECT s.id, s.route_id, s.bus_id, s.departure_time, s.price,
					 bus.total_seats, s.created_at, s.updated_at
			  FROM schedules s
			  JOIN buses bus ON bus.id = s.bus_id
			  WHERE s.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	var s domain.Schedule
	if err = row.Scan(
		&s.ID, &s.RouteID, &s.BusID, &s.DepartureTime, &s.Price,
		&s.Capacity, &s.CreatedAt, &s.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule: %w", err)
	}

	return &s, nil
}

func (r *ScheduleRepository) List(ctx context.Context) ([]*domain.Schedule, error) {
	query := `SELECT s.id, s.route_id, s.bus_id, s.departure_time, s.price,
					 bus.total_seats, s.created_at, s.updated_at
			  FROM schedules s
			  JOIN buses bus ON bus.id = s.bus_id
			  ORDER BY s.departure_time`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var res []*domain.Schedule
	for rows.Next() {
		var s domain.Schedule
		if err = rows.Scan(
			&s.ID, &s.RouteID, &s.BusID, &s.DepartureTime, &s.Price,
			&s.Capacity, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan schedule: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *ScheduleRepository) GetDetails(ctx context.Context, id string) (*domain.ScheduleDetails, error) {
	query := `
		SELECT
			s.id, s.route_id, s.bus_id, s.departure_time, s.price,
			bus.total_seats, s.created_at, s.updated_at,
			rt.id, rt.from_location, rt.to_location, rt.distance_km, rt.created_at,
			bus.id, bus.number, bus.name, bus.total_seats, bus.created_at
		FROM schedules s
		JOIN routes rt ON rt.id = s.route_id
		JOIN buses bus ON bus.id = s.bus_id
		WHERE s.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get schedule details: %w", err)
	}

	var d domain.ScheduleDetails
	if err = row.Scan(
		&d.Schedule.ID, &d.Schedule.RouteID, &d.Schedule.BusID,
		&d.Schedule.DepartureTime, &d.Schedule.Price,
		&d.Schedule.Capacity, &d.Schedule.CreatedAt, &d.Schedule.UpdatedAt,
		&d.Route.ID, &d.Route.FromLocation, &d.Route.ToLocation,
		&d.Route.DistanceKM, &d.Route.CreatedAt,
		&d.Bus.ID, &d.Bus.Number, &d.Bus.Name,
		&d.Bus.TotalSeats, &d.Bus.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("scan schedule details: %w", err)
	}

	return &d, nil
}

// Delete removes a schedule unless bookings reference it. Cancelled bookings
// are retained history and block deletion just like confirmed ones. The check
// and the delete run in one transaction so a racing booking cannot slip in
// between them.
func (r *ScheduleRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	lockQuery := `SELECT 1 FROM schedules WHERE id = $1 FOR UPDATE`
	var one int
	if err = tx.QueryRowContext(ctx, lockQuery, id).Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrScheduleNotFound
		}
		return fmt.Errorf("lock schedule: %w", err)
	}

	refQuery := `SELECT COUNT(*) FROM bookings WHERE schedule_id = $1`
	var refs int
	if err = tx.QueryRowContext(ctx, refQuery, id).Scan(&refs); err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if refs > 0 {
		return domain.ErrScheduleHasBookings
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM schedules WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete schedule: %w", err)
	}

	return tx.Commit()
}
