package ports

import (
	"context"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// Repository is the storage contract behind each mock API collection.
// Insert assigns the next id and returns the stored record.
type Repository[T domain.Entity[T]] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Insert(ctx context.Context, item T) (T, error)
	Replace(ctx context.Context, item T) (T, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
