package audit

import "context"

// Store is a sink for audit events. Implementations must be safe for
// concurrent use; the worker is the only writer in practice but tests
// append directly.
type Store interface {
	Append(ctx context.Context, event Event) error
}
