package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

const RouteResource = "route"

// Router records the page the operator is on. It is the redirect target of
// the auth store.
type Router struct {
	notify ports.ChangeNotifier

	mu      sync.RWMutex
	current string
}

func NewRouter(notify ports.ChangeNotifier) *Router {
	return &Router{notify: notify, current: "/"}
}

func (r *Router) Navigate(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !strings.HasPrefix(path, "/") {
		return fmt.Errorf("navigate to %q: path must be absolute", path)
	}

	r.mu.Lock()
	r.current = path
	r.mu.Unlock()

	r.notify.Changed(RouteResource)
	return nil
}

func (r *Router) Current() string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}
