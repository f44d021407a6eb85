package store

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/commutersec/admin-dashboard/internal/core/domain"
)

// ---- Stubs ----

type apiCall struct {
	method string
	path   string
	body   any
}

type stubAPI struct {
	mu    sync.Mutex
	calls []apiCall
	doFn  func(ctx context.Context, method, path string, body, out any) error
}

func (s *stubAPI) Do(ctx context.Context, method, path string, body, out any) error {
	s.mu.Lock()
	s.calls = append(s.calls, apiCall{method: method, path: path, body: body})
	fn := s.doFn
	s.mu.Unlock()
	return fn(ctx, method, path, body, out)
}

func (s *stubAPI) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// respond copies v into out through JSON, the way the real client decodes.
func respond(out, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

type stubTokens struct {
	mu    sync.Mutex
	token string
	err   error
}

func (s *stubTokens) Token(context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.err
}

func (s *stubTokens) SetToken(_ context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return s.err
}

func (s *stubTokens) RemoveToken(context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return s.err
}

type stubNavigator struct {
	mu    sync.Mutex
	paths []string
}

func (n *stubNavigator) Navigate(_ context.Context, path string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.paths = append(n.paths, path)
	return nil
}

func (n *stubNavigator) last() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.paths) == 0 {
		return ""
	}
	return n.paths[len(n.paths)-1]
}

type recordingNotifier struct {
	mu     sync.Mutex
	events []string
}

func (r *recordingNotifier) Changed(resource string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, resource)
}

func (r *recordingNotifier) count(resource string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e == resource {
			n++
		}
	}
	return n
}

// adminServer is an in-memory /admins endpoint speaking the envelope format.
type adminServer struct {
	mu     sync.Mutex
	admins []domain.Admin
	nextID int64
}

func newAdminServer(admins ...domain.Admin) *adminServer {
	s := &adminServer{admins: append([]domain.Admin(nil), admins...)}
	for _, a := range admins {
		if a.ID > s.nextID {
			s.nextID = a.ID
		}
	}
	return s
}

func (s *adminServer) Do(_ context.Context, method, path string, body, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, hasID := int64(0), false
	if rest := strings.TrimPrefix(path, "/admins/"); rest != path {
		n, err := strconv.ParseInt(rest, 10, 64)
		if err != nil {
			return &domain.APIError{Status: http.StatusBadRequest, Message: "Invalid id"}
		}
		id, hasID = n, true
	}

	switch {
	case method == http.MethodGet && !hasID:
		return respond(out, domain.Envelope[[]domain.Admin]{Success: true, Data: s.admins})
	case method == http.MethodPost && !hasID:
		in := body.(domain.AdminInput)
		s.nextID++
		created := in.Apply(domain.Admin{}, domain.MustTime("2024-01-01")).WithKey(s.nextID)
		s.admins = append(s.admins, created)
		return respond(out, domain.Envelope[domain.Admin]{Success: true, Data: created})
	case method == http.MethodPut && hasID:
		for i, a := range s.admins {
			if a.ID == id {
				s.admins[i] = body.(domain.AdminInput).Apply(a, domain.Time{}).WithKey(id)
				return respond(out, domain.Envelope[domain.Admin]{Success: true, Data: s.admins[i]})
			}
		}
	case method == http.MethodDelete && hasID:
		for i, a := range s.admins {
			if a.ID == id {
				s.admins = append(s.admins[:i:i], s.admins[i+1:]...)
				return respond(out, domain.Envelope[any]{Success: true, Message: "Admin deleted"})
			}
		}
	default:
		return fmt.Errorf("unexpected %s %s", method, path)
	}
	return &domain.APIError{Status: http.StatusNotFound, Message: "Admin not found"}
}

func (s *adminServer) snapshot() []domain.Admin {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Admin, len(s.admins))
	copy(out, s.admins)
	return out
}

func ids[T domain.Keyed](items []T) []int64 {
	out := make([]int64, len(items))
	for i, item := range items {
		out[i] = item.Key()
	}
	return out
}

func equalIDs(a, b []int64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
