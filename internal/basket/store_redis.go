package basket

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Key layout: baskets are hashes of productID -> quantity.
const (
	anonymousKeyPrefix = "basket:anon:"
	namedKeyPrefix     = "basket:user:"

	// anonymousTTL bounds abandoned guest baskets.
	anonymousTTL = 14 * 24 * time.Hour

	// watchRetries bounds optimistic locking attempts when another request
	// touches the anonymous basket mid-merge.
	watchRetries = 3
)

// RedisStore implements Merger on Redis. The merge runs under WATCH on the
// anonymous key so a concurrent merge of the same reference cannot double the
// quantities: the loser's transaction aborts and its retry sees the basket
// already gone.
type RedisStore struct {
	client *redis.Client
}

func NewRedis(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// AddAnonymousItem records an item against an anonymous basket reference.
func (s *RedisStore) AddAnonymousItem(ctx context.Context, ref string, item Item) error {
	key := anonymousKeyPrefix + ref
	pipe := s.client.TxPipeline()
	pipe.HIncrBy(ctx, key, item.ProductID, int64(item.Quantity))
	pipe.Expire(ctx, key, anonymousTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("add anonymous basket item: %w", err)
	}
	return nil
}

// MergeBasket moves the anonymous basket into the named basket and deletes
// the anonymous key, all inside one transaction.
func (s *RedisStore) MergeBasket(ctx context.Context, anonymousRef, identityKey string) error {
	anonKey := anonymousKeyPrefix + anonymousRef
	namedKey := namedKeyPrefix + identityKey

	merge := func(tx *redis.Tx) error {
		items, err := tx.HGetAll(ctx, anonKey).Result()
		if err != nil {
			return err
		}
		if len(items) == 0 {
			// Absent or already merged: idempotent success.
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for productID, raw := range items {
				quantity, convErr := strconv.ParseInt(raw, 10, 64)
				if convErr != nil {
					return fmt.Errorf("corrupt quantity %q for product %s: %w", raw, productID, convErr)
				}
				pipe.HIncrBy(ctx, namedKey, productID, quantity)
			}
			pipe.Del(ctx, anonKey)
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < watchRetries; attempt++ {
		err = s.client.Watch(ctx, merge, anonKey)
		if err != redis.TxFailedErr {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("merge basket %s: %w", anonymousRef, err)
	}
	return nil
}

// NamedItems returns the contents of a named basket.
func (s *RedisStore) NamedItems(ctx context.Context, identityKey string) ([]Item, error) {
	raw, err := s.client.HGetAll(ctx, namedKeyPrefix+identityKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read named basket: %w", err)
	}

	items := make([]Item, 0, len(raw))
	for productID, value := range raw {
		quantity, convErr := strconv.Atoi(value)
		if convErr != nil {
			return nil, fmt.Errorf("corrupt quantity %q for product %s: %w", value, productID, convErr)
		}
		items = append(items, Item{ProductID: productID, Quantity: quantity})
	}
	return items, nil
}
