package queue

import (
	"errors"
	"sync"

	"github.com/google/uuid"
)

// GenerationJob is the hand-off between order creation and the
// generation worker. The order id doubles as the job handle returned
// to the caller.
type GenerationJob struct {
	OrderID uuid.UUID
}

var (
	ErrQueueFull   = errors.New("generation queue is full")
	ErrQueueClosed = errors.New("generation queue is closed")
)

// GenerationQueue decouples order placement from the generation
// pipeline so failures are observable instead of fire-and-forget.
type GenerationQueue interface {
	// Enqueue never blocks; a full or closed queue is reported to the
	// caller.
	Enqueue(job GenerationJob) error

	// Jobs is consumed by the worker. Closed on shutdown.
	Jobs() <-chan GenerationJob

	Close()
}

type generationQueue struct {
	mu     sync.Mutex
	jobs   chan GenerationJob
	closed bool
}

func NewGenerationQueue(capacity int) GenerationQueue {
	if capacity <= 0 {
		capacity = 64
	}
	return &generationQueue{jobs: make(chan GenerationJob, capacity)}
}

func (q *generationQueue) Enqueue(job GenerationJob) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	// A send on the closed channel would panic; shutdown races with
	// in-flight handlers, so the closed state is checked under the
	// same lock Close takes.
	if q.closed {
		return ErrQueueClosed
	}

	select {
	case q.jobs <- job:
		return nil
	default:
		return ErrQueueFull
	}
}

func (q *generationQueue) Jobs() <-chan GenerationJob {
	return q.jobs
}

func (q *generationQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}
	q.closed = true
	close(q.jobs)
}
