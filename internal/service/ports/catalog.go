package ports

import (
	"context"

	"github.com/stpnv0/BusBooker/internal/domain"
)

type RouteRepo interface {
	Create(ctx context.Context, r *domain.Route) error
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	List(ctx context.Context) ([]*domain.Route, error)
	Delete(ctx context.Context, id string) error
}

type BusRepo interface {
	Create(ctx context.Context, b *domain.Bus) error
	GetByID(ctx context.Context, id string) (*domain.Bus, error)
	List(ctx context.Context) ([]*domain.Bus, error)
	Delete(ctx context.Context, id string) error
}
