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

type BusRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBusRepo(db *dbpg.DB) *BusRepository {
	return &BusRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *BusRepository) Create(ctx context.Context, b *domain.Bus) error {
	query := `INSERT INTO buses (id, number, name, total_seats, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		b.ID, b.Number, b.Name, b.TotalSeats, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert bus: %w", err)
	}

	return nil
}

func (r *BusRepository) GetByID(ctx context.Context, id string) (*domain.Bus, error) {
	query := `SELECT id, number, name, total_seats, created_at
			  FROM buses
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get bus: %w", err)
	}

	var b domain.Bus
	if err = row.Scan(&b.ID, &b.Number, &b.Name, &b.TotalSeats, &b.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBusNotFound
		}
		return nil, fmt.Errorf("scan bus: %w", err)
	}

	return &b, nil
}

func (r *BusRepository) List(ctx context.Context) ([]*domain.Bus, error) {
	query := `SELECT id, number, name, total_seats, created_at
			  FROM buses
			  ORDER BY number`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list buses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Bus
	for rows.Next() {
		var b domain.Bus
		if err = rows.Scan(&b.ID, &b.Number, &b.Name, &b.TotalSeats, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan bus: %w", err)
		}
		res = append(res, &b)
	}

	return res, rows.Err()
}

func (r *BusRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM buses WHERE id = $1`, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrBusInUse
		}
		return fmt.Errorf("delete bus: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("bus rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrBusNotFound
	}

	return nil
}
