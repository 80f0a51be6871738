// Package session wires post-authentication bootstrap: whenever a visitor
// becomes an authenticated customer (fresh registration or sign-in), any
// basket they built anonymously is folded into their account basket.
package session

import (
	"context"
	"log/slog"

	"gatekeep/internal/audit"
	"gatekeep/internal/basket"
	"gatekeep/internal/platform/metrics"
)

// Marker is the client-side reference to an anonymous basket. The transport
// layer adapts its cookie (or header) to this interface so the bootstrap
// logic stays free of HTTP concerns. Clear must only be called after a
// successful merge; a retained marker lets the next authenticated request
// retry the merge.
type Marker interface {
	// Ref returns the anonymous basket reference and whether one is present.
	Ref() (string, bool)
	// Clear discards the marker so subsequent requests carry no reference.
	Clear()
}

// Bootstrap runs the post-authentication steps for a new session.
type Bootstrap struct {
	baskets basket.Merger
	audit   *audit.Publisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewBootstrap(baskets basket.Merger, auditor *audit.Publisher, m *metrics.Metrics, logger *slog.Logger) *Bootstrap {
	return &Bootstrap{
		baskets: baskets,
		audit:   auditor,
		metrics: m,
		logger:  logger,
	}
}

// OnAuthenticated merges the anonymous basket named by marker into the
// authenticated customer's basket, then clears the marker. A merge failure is
// deliberately non-fatal: the session is already established, so the failure
// is logged and counted and the marker is kept for a later retry. The
// customer ends up signed in with their anonymous basket still pending.
func (b *Bootstrap) OnAuthenticated(ctx context.Context, identityKey string, marker Marker) {
	if marker == nil {
		return
	}
	ref, ok := marker.Ref()
	if !ok || ref == "" {
		return
	}

	if err := b.baskets.MergeBasket(ctx, ref, identityKey); err != nil {
		b.metrics.BasketMergeFailures.Inc()
		b.logger.WarnContext(ctx, "anonymous basket merge failed, marker retained",
			"error", err,
			"identity_key", identityKey,
		)
		b.audit.Emit(ctx, audit.ActionBasketMergeFailed,
			"user_id", identityKey,
			"reason", err.Error(),
		)
		return
	}

	marker.Clear()
	b.metrics.BasketMerges.Inc()
	b.audit.Emit(ctx, audit.ActionBasketMerged, "user_id", identityKey)
}
