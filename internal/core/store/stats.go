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

const (
	StatsResource = "stats"

	statsPath     = "/dashboard/stats"
	statsFallback = "Failed to fetch dashboard statistics"
)

// StatsView is a point-in-time copy of the dashboard counters.
type StatsView struct {
	Stats     domain.DashboardStats `json:"stats"`
	IsLoading bool                  `json:"isLoading"`
	Error     string                `json:"error,omitempty"`
}

// Stats holds the dashboard counters. It follows the same fetch policy as
// Collection.
type Stats struct {
	api    ports.Requester
	notify ports.ChangeNotifier
	logger zerolog.Logger

	mu      sync.RWMutex
	stats   domain.DashboardStats
	loading bool
	err     string
	loaded  bool
	flight  flight
}

func NewStats(api ports.Requester, notify ports.ChangeNotifier, logger zerolog.Logger) *Stats {
	return &Stats{
		api:    api,
		notify: notifierOrNop(notify),
		logger: logger.With().Str("store", StatsResource).Logger(),
	}
}

func (s *Stats) FetchStats(ctx context.Context) {
	s.mu.Lock()
	ctx, gen := s.flight.start(ctx)
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	var env domain.Envelope[domain.DashboardStats]
	err := s.api.Do(ctx, http.MethodGet, statsPath, nil, &env)

	s.mu.Lock()
	if !s.flight.finish(gen) {
		s.mu.Unlock()
		metrics.StoreStaleResponsesTotal.WithLabelValues(StatsResource).Inc()
		return
	}
	s.loading = false
	switch {
	case err != nil:
		s.err = messageOf(err, statsFallback)
	case !env.Success:
		s.err = unsuccessful(env.Message, statsFallback).Error()
	default:
		s.stats = env.Data
		s.loaded = true
	}
	errMsg := s.err
	s.mu.Unlock()

	if errMsg != "" {
		metrics.StoreFetchErrorsTotal.WithLabelValues(StatsResource).Inc()
		s.logger.Warn().Err(err).Str("message", errMsg).Msg("fetch failed")
	}
	s.notify.Changed(StatsResource)
}

func (s *Stats) Stats() domain.DashboardStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

func (s *Stats) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

func (s *Stats) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *Stats) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Stats) Snapshot() StatsView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return StatsView{Stats: s.stats, IsLoading: s.loading, Error: s.err}
}

func (s *Stats) Reset() {
	s.mu.Lock()
	s.flight.abort()
	s.stats = domain.DashboardStats{}
	s.loading = false
	s.err = ""
	s.loaded = false
	s.mu.Unlock()

	s.notify.Changed(StatsResource)
}
