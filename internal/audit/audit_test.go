package audit

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"gatekeep/pkg/requestcontext"
)

type AuditSuite struct {
	suite.Suite
	publisher *Publisher
	store     *MemoryStore
}

func TestAuditSuite(t *testing.T) {
	suite.Run(t, new(AuditSuite))
}

func (s *AuditSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.publisher = NewPublisher(logger)
	s.store = NewMemoryStore()
}

func (s *AuditSuite) TestEmitCapturesRequestContext() {
	now := time.Date(2026, 6, 2, 10, 30, 0, 0, time.UTC)
	ctx := requestcontext.WithTime(context.Background(), now)
	ctx = requestcontext.WithCorrelationID(ctx, "req-123")

	s.publisher.Emit(ctx, ActionRegistrationRejected,
		"email", "eve@example.com",
		"reason", "risk score above threshold",
	)

	event := <-s.publisher.Events()
	s.Equal(ActionRegistrationRejected, event.Action)
	s.Equal("eve@example.com", event.Email)
	s.Equal("risk score above threshold", event.Reason)
	s.Equal("req-123", event.CorrelationID)
	s.Equal(now, event.Timestamp)
}

func (s *AuditSuite) TestEmitDefaultsTimestamp() {
	s.publisher.Emit(context.Background(), ActionSignInFailed, "email", "eve@example.com")

	event := <-s.publisher.Events()
	s.False(event.Timestamp.IsZero())
}

func (s *AuditSuite) TestEmitNeverBlocksWhenBufferFull() {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < defaultBuffer+10; i++ {
			s.publisher.Emit(context.Background(), ActionSignInSucceeded)
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		s.Fail("emit blocked on a full buffer")
	}
}

func (s *AuditSuite) TestWorkerDrainsIntoStore() {
	worker := NewWorker(s.publisher, s.store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	ran := make(chan error, 1)
	go func() { ran <- worker.Run(ctx) }()

	s.publisher.Emit(context.Background(), ActionRegistrationApproved, "user_id", "u-1")
	s.publisher.Emit(context.Background(), ActionBasketMerged, "user_id", "u-1")

	s.Eventually(func() bool {
		return len(s.store.Events()) == 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	s.ErrorIs(<-ran, context.Canceled)

	events := s.store.Events()
	s.Equal(ActionRegistrationApproved, events[0].Action)
	s.Equal("u-1", events[0].UserID)
	s.Equal(ActionBasketMerged, events[1].Action)
}

func (s *AuditSuite) TestWorkerFlushesBufferedEventsOnShutdown() {
	worker := NewWorker(s.publisher, s.store, slog.New(slog.NewTextHandler(io.Discard, nil)))

	s.publisher.Emit(context.Background(), ActionSignInSucceeded, "user_id", "u-9")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s.ErrorIs(worker.Run(ctx), context.Canceled)

	s.Len(s.store.Events(), 1)
}
