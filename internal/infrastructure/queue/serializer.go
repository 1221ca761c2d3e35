package queue

import (
	"context"
	"fmt"
	"hash/fnv"
	"strconv"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/kajianrh/presensi-api/internal/api/metrics"
	"github.com/kajianrh/presensi-api/internal/core/ports"
)

const (
	defaultWorkers = 8
	channelBuffer  = 256
)

type job struct {
	ctx  context.Context
	key  string
	fn   func(ctx context.Context) error
	done chan error
	// claimed is set by whichever side owns the job first: the worker
	// running it or the caller abandoning it.
	claimed *atomic.Bool
}

// Serializer is an in-process AdmissionGuard. It routes each key to a fixed
// worker using consistent hashing, so calls sharing a key run one at a time
// in arrival order. Calls with different keys on the same worker also queue
// behind each other.
type Serializer struct {
	workers []chan job
	stopped chan struct{}
	log     zerolog.Logger
}

// NewSerializer creates a Serializer with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewSerializer(numWorkers int, log zerolog.Logger) *Serializer {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	s := &Serializer{
		workers: make([]chan job, numWorkers),
		stopped: make(chan struct{}),
		log:     log,
	}
	for i := range s.workers {
		s.workers[i] = make(chan job, channelBuffer)
	}
	return s
}

// Start launches all worker goroutines. Workers stop when ctx is cancelled.
// A job a worker already started still runs to completion; queued jobs and
// later calls get ports.ErrGuardUnavailable.
func (s *Serializer) Start(ctx context.Context) {
	for i, ch := range s.workers {
		go s.runWorker(ctx, i, ch)
	}
	go func() {
		<-ctx.Done()
		close(s.stopped)
	}()
}

// Do queues fn on the worker owning key and waits for it to finish.
// ports.ErrGuardUnavailable is returned only when fn never started.
func (s *Serializer) Do(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	select {
	case <-s.stopped:
		return errStopped
	default:
	}

	idx := s.shardIndex(key)
	j := job{ctx: ctx, key: key, fn: fn, done: make(chan error, 1), claimed: new(atomic.Bool)}

	select {
	case <-s.stopped:
		return errStopped
	case <-ctx.Done():
		return ctx.Err()
	case s.workers[idx] <- j:
		metrics.GuardQueueDepth.WithLabelValues(strconv.Itoa(idx)).Inc()
	}

	select {
	case err := <-j.done:
		return err
	case <-ctx.Done():
		if j.claimed.CompareAndSwap(false, true) {
			return ctx.Err()
		}
	case <-s.stopped:
		if j.claimed.CompareAndSwap(false, true) {
			return errStopped
		}
	}
	// A worker owns the job; its result is the answer.
	return <-j.done
}

var errStopped = fmt.Errorf("%w: serializer stopped", ports.ErrGuardUnavailable)

// shardIndex maps a key deterministically to a worker index.
func (s *Serializer) shardIndex(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(s.workers)))
}

func (s *Serializer) runWorker(ctx context.Context, id int, ch <-chan job) {
	depth := metrics.GuardQueueDepth.WithLabelValues(strconv.Itoa(id))
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-ch:
			depth.Dec()
			if ctx.Err() != nil {
				return
			}
			if !j.claimed.CompareAndSwap(false, true) {
				continue
			}
			if err := j.ctx.Err(); err != nil {
				j.done <- err
				continue
			}
			j.done <- s.run(j)
		}
	}
}

func (s *Serializer) run(j job) (err error) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error().
				Interface("panic", r).
				Str("key", j.key).
				Msg("admission panicked")
			err = fmt.Errorf("admission %s panicked: %v", j.key, r)
		}
	}()
	return j.fn(j.ctx)
}
