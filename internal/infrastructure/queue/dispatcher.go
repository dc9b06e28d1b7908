package queue

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/wms-console/internal/core/ports"
	"github.com/99minutos/wms-console/internal/pkg/metrics"
)

const (
	defaultWorkers = 4
	queueSize      = 256
)

// Dispatcher runs summary jobs on a fixed pool of workers pulling from one
// shared queue. A slow fetch occupies one worker and never delays another
// session's job while a worker is free.
type Dispatcher struct {
	jobs       chan ports.SummaryJob
	numWorkers int
	log        zerolog.Logger

	mu      sync.RWMutex
	stopped bool
	wg      sync.WaitGroup
}

// NewDispatcher creates a Dispatcher with numWorkers workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	return &Dispatcher{
		jobs:       make(chan ports.SummaryJob, queueSize),
		numWorkers: numWorkers,
		log:        log,
	}
}

var _ ports.SummaryScheduler = (*Dispatcher)(nil)

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i := 0; i < d.numWorkers; i++ {
		d.wg.Add(1)
		go d.runWorker(ctx, i)
	}
	go func() {
		<-ctx.Done()
		d.mu.Lock()
		d.stopped = true
		d.mu.Unlock()
	}()
}

// Wait blocks until every worker has returned.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// Schedule enqueues job. It never blocks: a full queue or a stopped
// dispatcher drops the job and reports false.
func (d *Dispatcher) Schedule(job ports.SummaryJob) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.stopped {
		return false
	}

	select {
	case d.jobs <- job:
		metrics.SummaryQueueDepth.Set(float64(len(d.jobs)))
		return true
	default:
		d.log.Warn().
			Str("session_id", job.SessionID).
			Int("queue_size", cap(d.jobs)).
			Msg("summary queue full, dropping job")
		return false
	}
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case job := <-d.jobs:
			metrics.SummaryQueueDepth.Set(float64(len(d.jobs)))
			if job.Ctx == nil {
				job.Ctx = context.Background()
			}
			if job.Ctx.Err() != nil {
				d.log.Debug().
					Str("session_id", job.SessionID).
					Int("worker_id", id).
					Msg("summary job cancelled before start")
				continue
			}
			d.run(id, job)
		}
	}
}

func (d *Dispatcher) run(id int, job ports.SummaryJob) {
	metrics.SummaryJobsInFlight.Inc()
	defer metrics.SummaryJobsInFlight.Dec()
	defer func() {
		if r := recover(); r != nil {
			d.log.Error().
				Interface("panic", r).
				Str("session_id", job.SessionID).
				Int("worker_id", id).
				Msg("summary job panicked")
		}
	}()
	job.Run(job.Ctx)
}
