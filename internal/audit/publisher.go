package audit

import (
	"context"
	"log/slog"

	"gatekeep/pkg/attrs"
	"gatekeep/pkg/requestcontext"
)

const defaultBuffer = 256

// Publisher accepts events from domain services and hands them to the worker
// over a buffered channel. Emit never blocks: when the buffer is full the
// event is dropped and counted against the log instead.
type Publisher struct {
	inbox  chan Event
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{
		inbox:  make(chan Event, defaultBuffer),
		logger: logger,
	}
}

// Emit records an action with optional key/value detail. Recognized keys are
// "user_id", "email" and "reason"; anything else is ignored. The event
// timestamp and correlation id come from the request context.
func (p *Publisher) Emit(ctx context.Context, action Action, kv ...any) {
	event := Event{
		Timestamp:     requestcontext.Now(ctx),
		Action:        action,
		UserID:        attrs.String(kv, "user_id"),
		Email:         attrs.String(kv, "email"),
		Reason:        attrs.String(kv, "reason"),
		CorrelationID: requestcontext.CorrelationID(ctx),
	}

	select {
	case p.inbox <- event:
	default:
		p.logger.WarnContext(ctx, "audit buffer full, dropping event",
			"action", string(action),
			"request_id", event.CorrelationID,
		)
	}
}

// Events exposes the inbox to the worker.
func (p *Publisher) Events() <-chan Event {
	return p.inbox
}
