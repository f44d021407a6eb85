package ports

import (
	"context"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// CatalogService is the mock API's CRUD surface over one collection.
type CatalogService[T domain.Entity[T], P domain.Input[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Create(ctx context.Context, in P) (T, error)
	Update(ctx context.Context, id int64, in P) (T, error)
	Delete(ctx context.Context, id int64) error
}

// StatsService aggregates the dashboard counters.
type StatsService interface {
	Stats(ctx context.Context) (domain.DashboardStats, error)
}
