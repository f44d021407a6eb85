// Package store holds the client-side state of the dashboard: one store per
// API resource plus the session and dashboard statistics. Stores are safe for
// concurrent use; each guards its own state and never locks another store.
package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

// Config names a store and the endpoint it reads from.
type Config struct {
	// Name is the plural resource name used in messages, metrics and change events.
	Name string
	// Singular is used in per-record failure messages.
	Singular string
	// Path is the collection endpoint relative to the API base URL.
	Path string
}

func (c Config) itemPath(id int64) string {
	return c.Path + "/" + strconv.FormatInt(id, 10)
}

// Result is the outcome of a mutation, shaped for display: Message is always
// set on failure and Err keeps the underlying cause.
type Result[T any] struct {
	Success bool
	Data    T
	Message string
	Err     error
}

func succeeded[T any](data T) Result[T] {
	return Result[T]{Success: true, Data: data}
}

func failed[T any](err error, fallback string) Result[T] {
	return Result[T]{Message: messageOf(err, fallback), Err: err}
}

// messageOf picks the text shown to the operator for err.
func messageOf(err error, fallback string) string {
	if err == nil {
		return fallback
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return fallback
}

// unsuccessful turns a success=false envelope into an error whose text is the
// server message, or fallback when the server sent none.
func unsuccessful(message, fallback string) error {
	if message == "" {
		message = fallback
	}
	return &rejection{message: message}
}

type rejection struct{ message string }

func (r *rejection) Error() string        { return r.message }
func (r *rejection) Is(target error) bool { return target == domain.ErrUnsuccessful }

// flight tracks the newest in-flight fetch of a store. Callers hold the
// store's lock.
type flight struct {
	gen    uint64
	cancel context.CancelFunc
}

// start cancels the previous fetch and returns the context and generation of
// the new one.
func (f *flight) start(ctx context.Context) (context.Context, uint64) {
	if f.cancel != nil {
		f.cancel()
	}
	f.gen++
	ctx, cancel := context.WithCancel(ctx)
	f.cancel = cancel
	return ctx, f.gen
}

// finish reports whether gen is still the newest fetch, releasing it if so.
func (f *flight) finish(gen uint64) bool {
	if gen != f.gen {
		return false
	}
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	return true
}

// abort cancels the in-flight fetch, if any, and invalidates its generation.
func (f *flight) abort() {
	if f.cancel != nil {
		f.cancel()
		f.cancel = nil
	}
	f.gen++
}

type nopNotifier struct{}

func (nopNotifier) Changed(string) {}

func notifierOrNop(n ports.ChangeNotifier) ports.ChangeNotifier {
	if n == nil {
		return nopNotifier{}
	}
	return n
}

func fetchFallback(name string) string { return fmt.Sprintf("Failed to fetch %s", name) }
