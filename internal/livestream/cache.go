package livestream

import (
	"context"
	"sync"
	"time"

	"auction-engine/utils"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
)

// BidCache tracks each watcher's own highest bid per auction so the outbid
// decision never needs a ledger round-trip. It is a read-through cache seeded
// at subscribe time and updated from the event stream; never authoritative.
type BidCache interface {
	OwnHighest(auctionID, userID string) (decimal.Decimal, bool)
	SetOwnHighest(auctionID, userID string, amount decimal.Decimal)
	Forget(auctionID, userID string)
}

// MemoryBidCache is the in-process BidCache used by single-instance
// deployments and tests.
type MemoryBidCache struct {
	mu      sync.RWMutex
	highest map[string]decimal.Decimal // key: auctionID|userID
}

// NewMemoryBidCache creates an empty in-memory cache
func NewMemoryBidCache() *MemoryBidCache {
	return &MemoryBidCache{highest: make(map[string]decimal.Decimal)}
}

func cacheKey(auctionID, userID string) string {
	return auctionID + "|" + userID
}

// OwnHighest returns the cached highest own bid, if any
func (c *MemoryBidCache) OwnHighest(auctionID, userID string) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.highest[cacheKey(auctionID, userID)]
	return v, ok
}

// SetOwnHighest records a new highest own bid
func (c *MemoryBidCache) SetOwnHighest(auctionID, userID string, amount decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.highest[cacheKey(auctionID, userID)] = amount
}

// Forget drops the cache entry when a watcher disconnects
func (c *MemoryBidCache) Forget(auctionID, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.highest, cacheKey(auctionID, userID))
}

// RedisBidCache shares the highest-bid cache across instances. All failures
// are logged and treated as cache misses; the ledger stays the source of truth.
type RedisBidCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisBidCache creates a cache backed by the given Redis address.
func NewRedisBidCache(addr string) *RedisBidCache {
	return &RedisBidCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		ttl:    24 * time.Hour,
	}
}

func (c *RedisBidCache) redisKey(auctionID, userID string) string {
	return "bidcache:" + auctionID + ":" + userID
}

// OwnHighest returns the cached highest own bid, if any
func (c *RedisBidCache) OwnHighest(auctionID, userID string) (decimal.Decimal, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	val, err := c.client.Get(ctx, c.redisKey(auctionID, userID)).Result()
	if err == redis.Nil {
		return decimal.Zero, false
	}
	if err != nil {
		utils.Warn("bid cache read failed", map[string]any{
			"auction_id": auctionID, "user_id": userID, "error": err.Error(),
		})
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(val)
	if err != nil {
		return decimal.Zero, false
	}
	return amount, true
}

// SetOwnHighest records a new highest own bid
func (c *RedisBidCache) SetOwnHighest(auctionID, userID string, amount decimal.Decimal) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.client.Set(ctx, c.redisKey(auctionID, userID), amount.String(), c.ttl).Err(); err != nil {
		utils.Warn("bid cache write failed", map[string]any{
			"auction_id": auctionID, "user_id": userID, "error": err.Error(),
		})
	}
}

// Forget drops the cache entry
func (c *RedisBidCache) Forget(auctionID, userID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := c.client.Del(ctx, c.redisKey(auctionID, userID)).Err(); err != nil {
		utils.Warn("bid cache delete failed", map[string]any{
			"auction_id": auctionID, "user_id": userID, "error": err.Error(),
		})
	}
}
