package store

import (
	"context"
	"net/http"
	"sync"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
	"github.com/commutersec/admin-dashboard/internal/metrics"
)

// View is a point-in-time copy of a collection's state.
type View[T any] struct {
	Items     []T    `json:"items"`
	IsLoading bool   `json:"isLoading"`
	Error     string `json:"error,omitempty"`
}

// Collection is a read-only resource store: the list held in server order,
// a loading flag and the last fetch error.
type Collection[T domain.Keyed] struct {
	cfg    Config
	api    ports.Requester
	notify ports.ChangeNotifier
	logger zerolog.Logger

	mu      sync.RWMutex
	items   []T
	loading bool
	err     string
	loaded  bool
	flight  flight
}

func NewCollection[T domain.Keyed](cfg Config, api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *Collection[T] {
	return &Collection[T]{
		cfg:    cfg,
		api:    api,
		notify: notifierOrNop(notify),
		logger: logger.With().Str("store", cfg.Name).Logger(),
		items:  []T{},
	}
}

func (c *Collection[T]) Name() string { return c.cfg.Name }

// Config returns the endpoint configuration the store was built with.
func (c *Collection[T]) Config() Config { return c.cfg }

// FetchAll replaces the list with the server's. Failures are kept as the
// store's error message and leave the list untouched. Starting a fetch
// cancels the previous one; a superseded response never touches state.
func (c *Collection[T]) FetchAll(ctx context.Context) {
	c.mu.Lock()
	ctx, gen := c.flight.start(ctx)
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	var env domain.Envelope[[]T]
	err := c.api.Do(ctx, http.MethodGet, c.cfg.Path, nil, &env)

	c.mu.Lock()
	if !c.flight.finish(gen) {
		c.mu.Unlock()
		metrics.StoreStaleResponsesTotal.WithLabelValues(c.cfg.Name).Inc()
		c.logger.Debug().Uint64("generation", gen).Msg("discarded stale fetch")
		return
	}
	c.loading = false
	switch {
	case err != nil:
		c.err = messageOf(err, fetchFallback(c.cfg.Name))
	case !env.Success:
		c.err = unsuccessful(env.Message, fetchFallback(c.cfg.Name)).Error()
	default:
		c.items = env.Data
		if c.items == nil {
			c.items = []T{}
		}
		c.loaded = true
	}
	errMsg := c.err
	c.mu.Unlock()

	if errMsg != "" {
		metrics.StoreFetchErrorsTotal.WithLabelValues(c.cfg.Name).Inc()
		c.logger.Warn().Err(err).Str("message", errMsg).Msg("fetch failed")
	}
	c.notify.Changed(c.cfg.Name)
}

// GetByID loads one record without touching the store's state.
func (c *Collection[T]) GetByID(ctx context.Context, id int64) (T, error) {
	var zero T
	var env domain.Envelope[T]
	if err := c.api.Do(ctx, http.MethodGet, c.cfg.itemPath(id), nil, &env); err != nil {
		return zero, err
	}
	if !env.Success {
		return zero, unsuccessful(env.Message, "Failed to fetch "+c.cfg.Singular)
	}
	return env.Data, nil
}

// Items returns a copy of the list.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Collection[T]) IsLoading() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loading
}

// Err returns the last fetch error message, or "".
func (c *Collection[T]) Err() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.err
}

// Loaded reports whether a fetch has ever succeeded since the last Reset.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

func (c *Collection[T]) Snapshot() View[T] {
	c.mu.RLock()
	defer c.mu.RUnlock()
	items := make([]T, len(c.items))
	copy(items, c.items)
	return View[T]{Items: items, IsLoading: c.loading, Error: c.err}
}

// Reset drops all state and cancels any in-flight fetch.
func (c *Collection[T]) Reset() {
	c.mu.Lock()
	c.flight.abort()
	c.items = []T{}
	c.loading = false
	c.err = ""
	c.loaded = false
	c.mu.Unlock()

	c.notify.Changed(c.cfg.Name)
}

// remove drops every entry whose key is id, keeping the order of the rest.
func (c *Collection[T]) remove(id int64) {
	c.mu.Lock()
	kept := c.items[:0:0]
	for _, item := range c.items {
		if item.Key() != id {
			kept = append(kept, item)
		}
	}
	c.items = kept
	c.mu.Unlock()

	c.notify.Changed(c.cfg.Name)
}
