package service

import (
	"context"
	"sort"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// ---- Stubs ----

type stubRepo[T domain.Entity[T]] struct {
	items  map[int64]T
	nextID int64
	err    error
}

func newStubRepo[T domain.Entity[T]](seed ...T) *stubRepo[T] {
	r := &stubRepo[T]{items: make(map[int64]T)}
	for _, item := range seed {
		r.items[item.Key()] = item
		if item.Key() > r.nextID {
			r.nextID = item.Key()
		}
	}
	return r
}

func (r *stubRepo[T]) List(_ context.Context) ([]T, error) {
	if r.err != nil {
		return nil, r.err
	}
	out := make([]T, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out, nil
}

func (r *stubRepo[T]) Get(_ context.Context, id int64) (T, error) {
	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	return item, nil
}

func (r *stubRepo[T]) Insert(_ context.Context, item T) (T, error) {
	if r.err != nil {
		var zero T
		return zero, r.err
	}
	r.nextID++
	item = item.WithKey(r.nextID)
	r.items[r.nextID] = item
	return item, nil
}

func (r *stubRepo[T]) Replace(_ context.Context, item T) (T, error) {
	if _, ok := r.items[item.Key()]; !ok {
		var zero T
		return zero, domain.ErrNotFound
	}
	r.items[item.Key()] = item
	return item, nil
}

func (r *stubRepo[T]) Delete(_ context.Context, id int64) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *stubRepo[T]) Count(_ context.Context) (int, error) {
	return len(r.items), r.err
}

type stubCredRepo struct {
	creds map[string]*domain.Credential
}

func newStubCredRepo() *stubCredRepo {
	return &stubCredRepo{creds: make(map[string]*domain.Credential)}
}

func (r *stubCredRepo) FindByUsername(_ context.Context, username string) (*domain.Credential, error) {
	c, ok := r.creds[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *c
	return &clone, nil
}

func (r *stubCredRepo) Save(_ context.Context, cred *domain.Credential) error {
	clone := *cred
	r.creds[cred.Username] = &clone
	return nil
}

func (r *stubCredRepo) DeleteByAdminID(_ context.Context, adminID int64) error {
	for username, c := range r.creds {
		if c.AdminID == adminID {
			delete(r.creds, username)
		}
	}
	return nil
}
