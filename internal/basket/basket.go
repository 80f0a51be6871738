// Package basket reconciles anonymous shopping baskets into named baskets
// after authentication. Merges are idempotent: re-merging an absent or
// already-merged anonymous basket is a safe no-op, which lets the session
// bootstrap retry freely.
package basket

import "context"

// Item is a basket line.
type Item struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Merger merges an anonymous basket into the basket owned by identityKey.
// Implementations must treat a missing anonymous basket as success.
type Merger interface {
	MergeBasket(ctx context.Context, anonymousRef, identityKey string) error
}
