package ports

import "context"

// Job is background work on one resource. Jobs for the same resource run
// in the order they were queued.
type Job struct {
	Resource string
	Run      func(ctx context.Context)
}

// JobQueue accepts jobs without blocking. Enqueue reports false when the job
// was dropped; EnqueueBatch returns how many of jobs were accepted.
type JobQueue interface {
	Enqueue(job Job) bool
	EnqueueBatch(jobs []Job) int
}
