package audit

import (
	"context"
	"log/slog"

	"paylens/pkg/platform/circuit"
)

// probeInterval is how many events are dropped between persistence probes
// while the store circuit is open. Probes are what eventually close it again.
const probeInterval = 16

// Worker consumes audit events from a channel and persists them. A store
// failure is logged and the worker moves on; one bad event must not stall
// the trail. With a breaker configured, a persistently failing store trips
// the circuit and events are dropped instead of hammering it.
type Worker struct {
	store   Appender
	inbox   <-chan Event
	logger  *slog.Logger
	metrics *Metrics
	breaker *circuit.Breaker

	skipped int
}

type WorkerOption func(*Worker)

func WithWorkerLogger(logger *slog.Logger) WorkerOption {
	return func(w *Worker) {
		if logger != nil {
			w.logger = logger
		}
	}
}

func WithWorkerMetrics(m *Metrics) WorkerOption {
	return func(w *Worker) {
		w.metrics = m
	}
}

func WithWorkerBreaker(b *circuit.Breaker) WorkerOption {
	return func(w *Worker) {
		w.breaker = b
	}
}

func NewWorker(store Appender, inbox <-chan Event, opts ...WorkerOption) *Worker {
	w := &Worker{store: store, inbox: inbox, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run drains the inbox until ctx is cancelled or the inbox is closed and
// empty. On cancellation, events already buffered are still flushed.
func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.drain(ctx)
			return ctx.Err()
		case event, ok := <-w.inbox:
			if !ok {
				return nil
			}
			w.append(ctx, event)
		}
	}
}

func (w *Worker) drain(ctx context.Context) {
	for {
		select {
		case event, ok := <-w.inbox:
			if !ok {
				return
			}
			w.append(ctx, event)
		default:
			return
		}
	}
}

func (w *Worker) append(ctx context.Context, event Event) {
	if w.breaker != nil && w.breaker.IsOpen() {
		w.skipped++
		if w.skipped < probeInterval {
			if w.metrics != nil {
				w.metrics.IncBreakerDropped()
			}
			return
		}
		w.skipped = 0
	}

	if err := w.store.Append(context.WithoutCancel(ctx), event); err != nil {
		w.logger.Error("failed to persist audit event",
			"action", event.Action,
			"event_id", event.ID,
			"error", err.Error(),
		)
		if w.metrics != nil {
			w.metrics.IncPersistFailures()
		}
		w.recordFailure()
		return
	}

	if w.metrics != nil {
		w.metrics.IncPersisted()
	}
	w.recordSuccess()
}

func (w *Worker) recordFailure() {
	if w.breaker == nil {
		return
	}
	if _, change := w.breaker.RecordFailure(); change.Opened {
		w.logger.Warn("audit store unhealthy, circuit opened", "breaker", w.breaker.Name())
		if w.metrics != nil {
			w.metrics.SetBreakerState(true)
		}
	}
}

func (w *Worker) recordSuccess() {
	if w.breaker == nil {
		return
	}
	if _, change := w.breaker.RecordSuccess(); change.Closed {
		w.logger.Info("audit store recovered, circuit closed", "breaker", w.breaker.Name())
		if w.metrics != nil {
			w.metrics.SetBreakerState(false)
		}
	}
}
