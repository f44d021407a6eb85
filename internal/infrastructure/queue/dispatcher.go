// Package queue runs background jobs on a fixed pool of workers.
package queue

import (
	"context"
	"hash/fnv"

	"github.com/rs/zerolog"

	"github.com/commutersec/admin-dashboard/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 32
)

// Dispatcher routes jobs to workers by hashing the resource name, so jobs
// for one resource never run concurrently and keep their order.
type Dispatcher struct {
	workers []chan ports.Job
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.Job, numWorkers),
		log:     log.With().Str("component", "dispatcher").Logger(),
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.Job, channelBuffer)
	}
	return d
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled
// and jobs receive ctx.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands job to the worker owning its resource. It never blocks: a
// full shard drops the job and returns false.
func (d *Dispatcher) Enqueue(job ports.Job) bool {
	select {
	case d.workers[d.shardIndex(job.Resource)] <- job:
		return true
	default:
		d.log.Warn().Str("resource", job.Resource).Msg("worker queue full, job dropped")
		return false
	}
}

// EnqueueBatch enqueues jobs in order and returns how many were accepted.
func (d *Dispatcher) EnqueueBatch(jobs []ports.Job) int {
	n := 0
	for _, j := range jobs {
		if d.Enqueue(j) {
			n++
		}
	}
	return n
}

func (d *Dispatcher) shardIndex(resource string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(resource))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.Job) {
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-ch:
			d.run(ctx, id, job)
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, id int, job ports.Job) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Interface("panic", r).
				Str("resource", job.Resource).
				Int("worker_id", id).
				Msg("job panicked")
		}
	}()
	job.Run(ctx)
}
