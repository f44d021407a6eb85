package app

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

const (
	ToastsResource = "toasts"

	// DefaultToastDuration applies when Add is given a negative duration.
	DefaultToastDuration = 3 * time.Second
)

type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
	ToastWarning ToastType = "warning"
)

// Toast is a transient notification shown to the operator.
type Toast struct {
	ID         string        `json:"id"`
	Message    string        `json:"message"`
	Type       ToastType     `json:"type"`
	Duration   time.Duration `json:"-"`
	DurationMS int64         `json:"duration"`
	CreatedAt  time.Time     `json:"createdAt"`

	seq uint64
}

// Toasts is the notification queue. Toasts with a positive duration remove
// themselves once it elapses; a zero duration keeps the toast until Remove.
type Toasts struct {
	notify ports.ChangeNotifier
	now    func() time.Time

	mu     sync.Mutex
	seq    uint64
	toasts map[string]Toast
	timers map[string]*time.Timer
}

func NewToasts(notify ports.ChangeNotifier) *Toasts {
	return &Toasts{
		notify: notify,
		now:    time.Now,
		toasts: make(map[string]Toast),
		timers: make(map[string]*time.Timer),
	}
}

// Add queues a toast and returns its id.
func (q *Toasts) Add(message string, typ ToastType, duration time.Duration) string {
	if duration < 0 {
		duration = DefaultToastDuration
	}
	if typ == "" {
		typ = ToastInfo
	}

	toast := Toast{
		ID:         uuid.NewString(),
		Message:    message,
		Type:       typ,
		Duration:   duration,
		DurationMS: duration.Milliseconds(),
		CreatedAt:  q.now(),
	}

	q.mu.Lock()
	q.seq++
	toast.seq = q.seq
	q.toasts[toast.ID] = toast
	if duration > 0 {
		id := toast.ID
		q.timers[id] = time.AfterFunc(duration, func() { q.Remove(id) })
	}
	q.mu.Unlock()

	q.notify.Changed(ToastsResource)
	return toast.ID
}

func (q *Toasts) Success(message string) string {
	return q.Add(message, ToastSuccess, DefaultToastDuration)
}

func (q *Toasts) Error(message string) string {
	return q.Add(message, ToastError, DefaultToastDuration)
}

func (q *Toasts) Info(message string) string {
	return q.Add(message, ToastInfo, DefaultToastDuration)
}

func (q *Toasts) Warning(message string) string {
	return q.Add(message, ToastWarning, DefaultToastDuration)
}

// Remove drops a toast. It reports false when id is unknown.
func (q *Toasts) Remove(id string) bool {
	q.mu.Lock()
	_, ok := q.toasts[id]
	delete(q.toasts, id)
	if timer, found := q.timers[id]; found {
		timer.Stop()
		delete(q.timers, id)
	}
	q.mu.Unlock()

	if ok {
		q.notify.Changed(ToastsResource)
	}
	return ok
}

// List returns the queued toasts, oldest first.
func (q *Toasts) List() []Toast {
	q.mu.Lock()
	out := make([]Toast, 0, len(q.toasts))
	for _, t := range q.toasts {
		out = append(out, t)
	}
	q.mu.Unlock()

	sort.Slice(out, func(i, j int) bool { return out[i].seq < out[j].seq })
	return out
}

// Clear drops every toast and stops pending timers.
func (q *Toasts) Clear() {
	q.mu.Lock()
	for id, timer := range q.timers {
		timer.Stop()
		delete(q.timers, id)
	}
	q.toasts = make(map[string]Toast)
	q.mu.Unlock()

	q.notify.Changed(ToastsResource)
}
