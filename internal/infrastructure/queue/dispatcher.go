package queue

import (
	"context"
	"hash/fnv"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/competeconnect/competition-api/internal/api/metrics"
	"github.com/competeconnect/competition-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 64
)

// Dispatcher runs issued searches on a fixed set of workers. The workspace id
// picks the worker, so searches of one workspace run in issue order.
type Dispatcher struct {
	workers []chan ports.SearchJob
	runner  ports.SearchRunner
	log     zerolog.Logger
}

// NewDispatcher creates a Dispatcher with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewDispatcher(numWorkers int, runner ports.SearchRunner, log zerolog.Logger) *Dispatcher {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	d := &Dispatcher{
		workers: make([]chan ports.SearchJob, numWorkers),
		runner:  runner,
		log:     log,
	}
	for i := range d.workers {
		d.workers[i] = make(chan ports.SearchJob, channelBuffer)
	}
	return d
}

// Start launches the workers. They stop when ctx is cancelled.
func (d *Dispatcher) Start(ctx context.Context) {
	for i, ch := range d.workers {
		go d.runWorker(ctx, i, ch)
	}
}

// Enqueue hands job to the worker owning its workspace. It blocks while that
// worker's buffer is full and gives up when ctx is done.
func (d *Dispatcher) Enqueue(ctx context.Context, job ports.SearchJob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	idx := d.shardIndex(job.WorkspaceID)
	select {
	case d.workers[idx] <- job:
		metrics.SearchQueueDepth.WithLabelValues(strconv.Itoa(idx)).Set(float64(len(d.workers[idx])))
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *Dispatcher) shardIndex(workspaceID string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(workspaceID))
	return int(h.Sum32() % uint32(len(d.workers)))
}

func (d *Dispatcher) runWorker(ctx context.Context, id int, ch <-chan ports.SearchJob) {
	depth := metrics.SearchQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case job, ok := <-ch:
			if !ok {
				return
			}
			depth.Set(float64(len(ch)))
			d.run(ctx, id, job)
		}
	}
}

func (d *Dispatcher) run(ctx context.Context, workerID int, job ports.SearchJob) {
	start := time.Now()
	outcome, err := d.runner.RunSearch(ctx, job)

	metrics.SearchesTotal.WithLabelValues(string(outcome)).Inc()
	metrics.SearchDuration.WithLabelValues(string(outcome)).Observe(time.Since(start).Seconds())

	switch {
	case err != nil:
		d.log.Error().Err(err).
			Str("workspace", job.WorkspaceID).
			Uint64("seq", job.Seq).
			Str("outcome", string(outcome)).
			Int("worker_id", workerID).
			Msg("search failed")
	case outcome == ports.OutcomeStale:
		d.log.Debug().
			Str("workspace", job.WorkspaceID).
			Uint64("seq", job.Seq).
			Msg("stale search result dropped")
	}
}
