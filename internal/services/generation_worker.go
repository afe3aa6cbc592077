package services

import (
	"context"
	"log"
	"time"

	"astroportal/pkg/queue"
	"astroportal/pkg/utils"
)

// jobTimeout bounds one generation run; there is no retry, the failure
// counter and logs are the follow-up surface.
const jobTimeout = 2 * time.Minute

// GenerationWorker drains the generation queue. Started and stopped
// through the fx lifecycle in cmd/app.
type GenerationWorker struct {
	genService GenerationServiceInterface
	genQueue   queue.GenerationQueue
	done       chan struct{}
}

func NewGenerationWorker(genService GenerationServiceInterface, genQueue queue.GenerationQueue) *GenerationWorker {
	return &GenerationWorker{
		genService: genService,
		genQueue:   genQueue,
		done:       make(chan struct{}),
	}
}

func (w *GenerationWorker) Start() {
	go w.run()
}

// Stop closes the queue and waits for the in-flight job to finish.
func (w *GenerationWorker) Stop() {
	w.genQueue.Close()
	<-w.done
}

func (w *GenerationWorker) run() {
	defer close(w.done)

	for job := range w.genQueue.Jobs() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		err := w.genService.BeginGeneration(ctx, job.OrderID)
		cancel()

		switch err {
		case nil:
			log.Printf("order %s: horoscope generated", job.OrderID)
		case utils.ErrOrderNotPending:
			// claimed elsewhere or cancelled before the worker got to it
		default:
			log.Printf("order %s: generation job failed: %v", job.OrderID, err)
		}
	}
}
