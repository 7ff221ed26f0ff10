package audit

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrBufferFull reports a dropped event. Callers log it at most; they never
// fail the business operation over it.
var ErrBufferFull = errors.New("audit buffer full")

// Publisher fans audit events into a buffered channel drained by a Worker.
// Report access auditing is fail-open: Emit never blocks the calling query,
// and a full buffer drops the event with a warning rather than stalling.
type Publisher struct {
	events    chan Event
	logger    *slog.Logger
	metrics   *Metrics
	closeOnce sync.Once
}

type PublisherOption func(*Publisher)

func WithPublisherLogger(logger *slog.Logger) PublisherOption {
	return func(p *Publisher) {
		if logger != nil {
			p.logger = logger
		}
	}
}

func WithPublisherMetrics(m *Metrics) PublisherOption {
	return func(p *Publisher) {
		p.metrics = m
	}
}

// NewPublisher creates a publisher with the given buffer capacity.
func NewPublisher(buffer int, opts ...PublisherOption) *Publisher {
	if buffer <= 0 {
		buffer = 256
	}
	p := &Publisher{
		events: make(chan Event, buffer),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit enqueues the event for background persistence. It returns an error
// only for bookkeeping; callers treat emission as best-effort.
func (p *Publisher) Emit(ctx context.Context, event Event) error {
	select {
	case p.events <- event:
		if p.metrics != nil {
			p.metrics.IncPublished()
		}
		return nil
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", event.Action,
			"subject", event.Subject,
		)
		if p.metrics != nil {
			p.metrics.IncDropped()
		}
		return ErrBufferFull
	}
}

// Events exposes the inbox for the Worker.
func (p *Publisher) Events() <-chan Event {
	return p.events
}

// Close stops accepting events. The Worker drains what is already buffered.
func (p *Publisher) Close() {
	p.closeOnce.Do(func() { close(p.events) })
}
