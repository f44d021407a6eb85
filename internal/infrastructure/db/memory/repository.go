// Package memory provides in-process storage for the mock API and the
// console's default token store.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// Repository is a goroutine-safe, id-ordered collection of T. Insert assigns
// max(id)+1.
type Repository[T domain.Entity[T]] struct {
	mu     sync.RWMutex
	items  map[int64]T
	lastID int64
}

func NewRepository[T domain.Entity[T]](seed ...T) *Repository[T] {
	r := &Repository[T]{items: make(map[int64]T, len(seed))}
	for _, item := range seed {
		r.items[item.Key()] = item
		if item.Key() > r.lastID {
			r.lastID = item.Key()
		}
	}
	return r
}

// Seed loads items into an empty repository. A non-empty one is left alone.
func (r *Repository[T]) Seed(_ context.Context, items []T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.items) > 0 {
		return nil
	}
	for _, item := range items {
		r.items[item.Key()] = item
		if item.Key() > r.lastID {
			r.lastID = item.Key()
		}
	}
	return nil
}

func (r *Repository[T]) List(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

func (r *Repository[T]) Get(_ context.Context, id int64) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return item, nil
}

func (r *Repository[T]) Insert(_ context.Context, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	item = item.WithKey(r.lastID)
	r.items[r.lastID] = item
	return item, nil
}

func (r *Repository[T]) Replace(_ context.Context, item T) (T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.Key()]; !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	r.items[item.Key()] = item
	return item, nil
}

func (r *Repository[T]) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *Repository[T]) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
