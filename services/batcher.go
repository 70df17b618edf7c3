package services

import (
	"context"
	"errors"
	"kucukaslan/timeapp/domain"
	"log"
	"sync"
	"sync/atomic"
	"time"
)

var (
	// ErrBufferFull is returned when the visit buffer channel is full
	ErrBufferFull = errors.New("visit buffer is full")
)

const flushTimeout = 30 * time.Second

// VisitSink persists a batch of visits
type VisitSink interface {
	SaveVisits(ctx context.Context, visits []domain.VisitEvent) error
}

var _ domain.VisitRecorder = &VisitBatcher{}

// VisitBatcher buffers visits on a channel and writes them to a VisitSink in
// batches. A batch is written when it reaches batchSize or when flushInterval
// passes, whichever comes first. The pending batch is owned by the worker
// goroutine; other goroutines only see it through the counters.
type VisitBatcher struct {
	visits        chan domain.VisitEvent
	batchSize     int
	flushInterval time.Duration
	sink          VisitSink

	mu      sync.Mutex
	running bool
	stopped bool
	stop    chan struct{}
	done    chan struct{}

	pending atomic.Int64
	flushed atomic.Int64
	dropped atomic.Int64
}

// NewVisitBatcher creates a new VisitBatcher instance
func NewVisitBatcher(capacity int, batchSize int, flushInterval time.Duration, sink VisitSink) *VisitBatcher {
	if batchSize < 1 {
		batchSize = 1
	}
	return &VisitBatcher{
		visits:        make(chan domain.VisitEvent, capacity),
		batchSize:     batchSize,
		flushInterval: flushInterval,
		sink:          sink,
		stop:          make(chan struct{}),
		done:          make(chan struct{}),
	}
}

// Start launches the background worker. It is a no-op when already running
// or after Shutdown.
func (b *VisitBatcher) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.running || b.stopped {
		return
	}
	b.running = true

	go b.run()
	log.Println("VisitBatcher started")
}

// Enqueue adds a visit to the buffer without blocking
func (b *VisitBatcher) Enqueue(visit domain.VisitEvent) error {
	select {
	case b.visits <- visit:
		return nil
	default:
		b.dropped.Add(1)
		return ErrBufferFull
	}
}

func (b *VisitBatcher) run() {
	defer close(b.done)

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	batch := b.newBatch()
	for {
		select {
		case <-b.stop:
			b.drain(batch)
			return

		case visit := <-b.visits:
			batch = b.add(batch, visit)

		case <-ticker.C:
			batch = b.flush(batch)
		}
	}
}

func (b *VisitBatcher) newBatch() []domain.VisitEvent {
	return make([]domain.VisitEvent, 0, b.batchSize)
}

func (b *VisitBatcher) add(batch []domain.VisitEvent, visit domain.VisitEvent) []domain.VisitEvent {
	batch = append(batch, visit)
	b.pending.Store(int64(len(batch)))
	if len(batch) >= b.batchSize {
		return b.flush(batch)
	}
	return batch
}

// flush hands batch to the sink and returns an empty batch. The sink may keep
// the slice, so a fresh one is allocated. A failed batch is counted as dropped.
func (b *VisitBatcher) flush(batch []domain.VisitEvent) []domain.VisitEvent {
	if len(batch) == 0 {
		return batch
	}

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := b.sink.SaveVisits(ctx, batch); err != nil {
		b.dropped.Add(int64(len(batch)))
		log.Printf("VisitBatcher: Failed to flush batch of %d visits: %v", len(batch), err)
	} else {
		b.flushed.Add(int64(len(batch)))
		log.Printf("VisitBatcher: Flushed batch of %d visits", len(batch))
	}
	b.pending.Store(0)
	return b.newBatch()
}

// drain empties the channel into batches after a stop request
func (b *VisitBatcher) drain(batch []domain.VisitEvent) {
	drained := 0
	for {
		select {
		case visit := <-b.visits:
			drained++
			batch = b.add(batch, visit)
		default:
			if drained > 0 {
				log.Printf("VisitBatcher: Drained %d visits from channel during shutdown", drained)
			}
			b.flush(batch)
			return
		}
	}
}

// Shutdown stops the worker after everything buffered has been flushed.
// It is a no-op when the batcher is not running.
func (b *VisitBatcher) Shutdown() error {
	b.mu.Lock()
	if !b.running {
		b.mu.Unlock()
		return nil
	}
	b.running = false
	b.stopped = true
	b.mu.Unlock()

	log.Println("VisitBatcher: Initiating graceful shutdown...")
	close(b.stop)
	<-b.done
	log.Println("VisitBatcher: Shutdown complete")
	return nil
}

// Stats is a point-in-time snapshot of the pipeline counters
func (b *VisitBatcher) Stats() domain.VisitPipelineStats {
	return domain.VisitPipelineStats{
		Buffered: len(b.visits),
		Pending:  int(b.pending.Load()),
		Flushed:  b.flushed.Load(),
		Dropped:  b.dropped.Load(),
	}
}
