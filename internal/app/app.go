// Package app assembles the dashboard's client state: the resource stores,
// the session, and the UI state (sidebar, toasts, current page). The console
// process owns exactly one App.
package app

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
	"github.com/commutersec/admin-dashboard/internal/core/ports"
	"github.com/commutersec/admin-dashboard/internal/core/store"
)

// Deps are the collaborators an App is built from.
type Deps struct {
	API      ports.Requester
	Tokens   ports.TokenStore
	Notifier ports.ChangeNotifier
	// Queue runs the prefetch after login. Optional.
	Queue  ports.JobQueue
	Logger zerolog.Logger
}

type App struct {
	Auth       *store.Auth
	Admins     *store.AdminStore
	Drivers    *store.DriverStore
	Passengers *store.PassengerStore
	Rides      *store.RideStore
	Feedbacks  *store.FeedbackStore
	Stats      *store.Stats

	Sidebar *Sidebar
	Toasts  *Toasts
	Router  *Router

	queue  ports.JobQueue
	logger zerolog.Logger
}

func New(d Deps) *App {
	notify := d.Notifier
	if notify == nil {
		notify = nopNotifier{}
	}

	router := NewRouter(notify)
	return &App{
		Auth:       store.NewAuth(d.API, d.Tokens, router, notify, d.Logger),
		Admins:     store.NewAdminStore(d.API, notify, d.Logger),
		Drivers:    store.NewDriverStore(d.API, notify, d.Logger),
		Passengers: store.NewPassengerStore(d.API, notify, d.Logger),
		Rides:      store.NewRideStore(d.API, notify, d.Logger),
		Feedbacks:  store.NewFeedbackStore(d.API, notify, d.Logger),
		Stats:      store.NewStats(d.API, notify, d.Logger),
		Sidebar:    NewSidebar(notify),
		Toasts:     NewToasts(notify),
		Router:     router,
		queue:      d.Queue,
		logger:     d.Logger,
	}
}

// Init restores a persisted session. A token the API no longer accepts ends
// the session and clears all cached data.
func (a *App) Init(ctx context.Context) error {
	if err := a.Auth.InitAuth(ctx); err != nil {
		a.resetData()
		return err
	}
	return nil
}

// Login signs in and greets the operator with a toast, or shows the failure.
func (a *App) Login(ctx context.Context, username, password string) store.Result[*domain.Admin] {
	res := a.Auth.Login(ctx, username, password)
	if !res.Success {
		a.Toasts.Error(res.Message)
		return res
	}
	name := username
	if res.Data != nil && res.Data.FirstName != "" {
		name = res.Data.FirstName
	}
	a.Toasts.Success("Welcome back, " + name + "!")
	a.Prefetch()
	return res
}

// Prefetch queues a background load of the counters and every list. It is
// a no-op without a queue.
func (a *App) Prefetch() {
	if a.queue == nil {
		return
	}
	jobs := []ports.Job{
		{Resource: store.StatsResource, Run: a.Stats.FetchStats},
		{Resource: a.Admins.Name(), Run: a.Admins.FetchAll},
		{Resource: a.Drivers.Name(), Run: a.Drivers.FetchAll},
		{Resource: a.Passengers.Name(), Run: a.Passengers.FetchAll},
		{Resource: a.Rides.Name(), Run: a.Rides.FetchAll},
		{Resource: a.Feedbacks.Name(), Run: a.Feedbacks.FetchAll},
	}
	if n := a.queue.EnqueueBatch(jobs); n < len(jobs) {
		a.logger.Warn().
			Int("accepted", n).
			Int("queued", len(jobs)).
			Msg("prefetch partly skipped, pages will fetch on first visit")
	}
}

// Logout ends the session and drops every cached list, the dashboard
// counters and pending toasts. The sidebar preference is kept.
func (a *App) Logout(ctx context.Context) error {
	err := a.Auth.Logout(ctx)
	a.resetData()
	if err != nil {
		a.logger.Warn().Err(err).Msg("logout incomplete")
	}
	return err
}

func (a *App) resetData() {
	a.Admins.Reset()
	a.Drivers.Reset()
	a.Passengers.Reset()
	a.Rides.Reset()
	a.Feedbacks.Reset()
	a.Stats.Reset()
	a.Toasts.Clear()
}

type nopNotifier struct{}

func (nopNotifier) Changed(string) {}
