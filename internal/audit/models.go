package audit

import (
	"context"
	"time"

	"github.com/google/uuid"

	"paylens/pkg/requestcontext"
)

// Actions recorded by the reporting gateway.
const (
	ActionReportViewed      = "report_viewed"
	ActionStatementExported = "statement_exported"
	ActionPaymentRecorded   = "payment_recorded"
)

// Event is emitted from domain logic to capture who accessed which report.
// Keep it transport-agnostic so stores and sinks can fan out.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor,omitempty"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	ClientIP  string    `json:"client_ip,omitempty"`
	Client    string    `json:"client,omitempty"`
}

// NewEvent builds an event stamped with the request-scoped metadata carried
// in ctx. The caller supplies the time so the whole operation shares one now.
func NewEvent(ctx context.Context, action, subject string, now time.Time) Event {
	return Event{
		ID:        uuid.New(),
		Timestamp: now,
		Actor:     requestcontext.UserID(ctx),
		Action:    action,
		Subject:   subject,
		RequestID: requestcontext.RequestID(ctx),
		ClientIP:  requestcontext.ClientIP(ctx),
		Client:    DescribeClient(requestcontext.UserAgent(ctx)),
	}
}

// Appender is the write side every audit sink implements.
type Appender interface {
	Append(ctx context.Context, event Event) error
}

// Store adds the read side used by the access-trail endpoint. The Kafka sink
// is write-only; reads there belong to whatever consumes the topic.
type Store interface {
	Appender
	ListByActions(ctx context.Context, actions []string, limit int) ([]Event, error)
}
