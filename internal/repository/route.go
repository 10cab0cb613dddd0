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

type RouteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRouteRepo(db *dbpg.DB) *RouteRepository {
	return &RouteRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *RouteRepository) Create(ctx context.Context, route *domain.Route) error {
	query := `INSERT INTO routes (id, from_location, to_location, distance_km, created_at)
			  VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		route.ID, route.FromLocation, route.ToLocation, route.DistanceKM, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert route: %w", err)
	}

	return nil
}

func (r *RouteRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	query := `SELECT id, from_location, to_location, distance_km, created_at
			  FROM routes
			  WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get route: %w", err)
	}

	var route domain.Route
	if err = row.Scan(
		&route.ID, &route.FromLocation, &route.ToLocation,
		&route.DistanceKM, &route.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRouteNotFound
		}
		return nil, fmt.Errorf("scan route: %w", err)
	}

	return &route, nil
}

func (r *RouteRepository) List(ctx context.Context) ([]*domain.Route, error) {
	query := `SELECT id, from_location, to_location, distance_km, created_at
			  FROM routes
			  ORDER BY from_location, to_location`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}
	defer rows.Close()

	var res []*domain.Route
	for rows.Next() {
		var route domain.Route
		if err = rows.Scan(
			&route.ID, &route.FromLocation, &route.ToLocation,
			&route.DistanceKM, &route.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan route: %w", err)
		}
		res = append(res, &route)
	}

	return res, rows.Err()
}

func (r *RouteRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecWithRetry(ctx, r.strategy, `DELETE FROM routes WHERE id = $1`, id)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrRouteInUse
		}
		return fmt.Errorf("delete route: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("route rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRouteNotFound
	}

	return nil
}
