//go:build integration

package basket_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"gatekeep/internal/basket"
	"gatekeep/pkg/testutil/containers"
)

type RedisStoreSuite struct {
	suite.Suite
	redis *containers.RedisContainer
	store *basket.RedisStore
}

func TestRedisStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RedisStoreSuite))
}

func (s *RedisStoreSuite) SetupSuite() {
	s.redis = containers.NewRedisContainer(s.T())
	s.store = basket.NewRedis(s.redis.Client)
}

func (s *RedisStoreSuite) SetupTest() {
	s.Require().NoError(s.redis.FlushAll(context.Background()))
}

func (s *RedisStoreSuite) TestMergeMovesItemsAndConsumesReference() {
	ctx := context.Background()

	s.Require().NoError(s.store.AddAnonymousItem(ctx, "b1", basket.Item{ProductID: "sku-1", Quantity: 2}))
	s.Require().NoError(s.store.AddAnonymousItem(ctx, "b1", basket.Item{ProductID: "sku-2", Quantity: 1}))

	s.Require().NoError(s.store.MergeBasket(ctx, "b1", "user@example.com"))

	items, err := s.store.NamedItems(ctx, "user@example.com")
	s.Require().NoError(err)
	s.ElementsMatch([]basket.Item{
		{ProductID: "sku-1", Quantity: 2},
		{ProductID: "sku-2", Quantity: 1},
	}, items)

	// Reference consumed: a second merge must not double quantities.
	s.Require().NoError(s.store.MergeBasket(ctx, "b1", "user@example.com"))
	items, err = s.store.NamedItems(ctx, "user@example.com")
	s.Require().NoError(err)
	s.Len(items, 2)
}

func (s *RedisStoreSuite) TestMergeAbsentReferenceIsNoOp() {
	ctx := context.Background()
	s.Require().NoError(s.store.MergeBasket(ctx, "ghost", "user@example.com"))

	items, err := s.store.NamedItems(ctx, "user@example.com")
	s.Require().NoError(err)
	s.Empty(items)
}

// TestConcurrentMergeNeverDoubles drives concurrent merges of the same
// reference through the WATCH transaction: total quantity must equal the
// anonymous basket's contents exactly once.
func (s *RedisStoreSuite) TestConcurrentMergeNeverDoubles() {
	ctx := context.Background()
	s.Require().NoError(s.store.AddAnonymousItem(ctx, "race", basket.Item{ProductID: "sku-7", Quantity: 5}))

	const goroutines = 10
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.store.MergeBasket(ctx, "race", "racer@example.com")
		}()
	}
	wg.Wait()

	items, err := s.store.NamedItems(ctx, "racer@example.com")
	s.Require().NoError(err)
	s.Equal([]basket.Item{{ProductID: "sku-7", Quantity: 5}}, items)
}
