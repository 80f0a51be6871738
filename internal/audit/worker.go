package audit

import (
	"context"
	"log/slog"
	"time"
)

const appendTimeout = 5 * time.Second

// Worker drains the publisher inbox into a store. Run blocks until the
// context is cancelled, then flushes whatever is already buffered before
// returning.
type Worker struct {
	events <-chan Event
	store  Store
	logger *slog.Logger
}

func NewWorker(publisher *Publisher, store Store, logger *slog.Logger) *Worker {
	return &Worker{
		events: publisher.Events(),
		store:  store,
		logger: logger,
	}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case event := <-w.events:
			w.append(event)
		case <-ctx.Done():
			w.drain()
			return ctx.Err()
		}
	}
}

func (w *Worker) drain() {
	for {
		select {
		case event := <-w.events:
			w.append(event)
		default:
			return
		}
	}
}

func (w *Worker) append(event Event) {
	ctx, cancel := context.WithTimeout(context.Background(), appendTimeout)
	defer cancel()

	if err := w.store.Append(ctx, event); err != nil {
		w.logger.ErrorContext(ctx, "failed to append audit event",
			"error", err,
			"action", string(event.Action),
			"request_id", event.CorrelationID,
		)
	}
}
