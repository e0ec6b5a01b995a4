package cache

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a best-effort Redis store for serialized API responses. Every
// operation is advisory: a transport failure is treated as a miss and never
// surfaces to callers. A Cache with no client (see NewDisabled) is valid and
// always misses.
type Cache struct {
	client *redis.Client
	logger *log.Logger
}

// New connects to Redis with a short dial timeout and verifies the
// connection with a ping. On failure the caller should fall back to
// NewDisabled rather than treating cache availability as fatal.
func New(redisURL string) (*Cache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	opt.DialTimeout = 5 * time.Second

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, err
	}

	return &Cache{
		client: client,
		logger: log.New(log.Writer(), "[cache] ", log.LstdFlags),
	}, nil
}

// NewDisabled returns a cache whose operations all no-op (get always misses).
func NewDisabled() *Cache {
	return &Cache{logger: log.New(log.Writer(), "[cache] ", log.LstdFlags)}
}

// Enabled reports whether a Redis connection is available.
func (c *Cache) Enabled() bool {
	return c.client != nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// HealthCheck pings Redis to verify connection
func (c *Cache) HealthCheck(ctx context.Context) error {
	if c.client == nil {
		return nil
	}
	return c.client.Ping(ctx).Err()
}

// Get retrieves a cached value. The second return reports a hit; any error,
// including redis.Nil, is a miss.
func (c *Cache) Get(ctx context.Context, key string) (string, bool) {
	if c.client == nil {
		return "", false
	}

	data, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		c.logger.Printf("get error for %s: %v", key, err)
		return "", false
	}

	return data, true
}

// Set stores a value with a TTL. Best-effort: failures are logged, never
// propagated.
func (c *Cache) Set(ctx context.Context, key, value string, ttl time.Duration) {
	if c.client == nil {
		return
	}

	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		c.logger.Printf("set error for %s: %v", key, err)
	}
}

// Delete removes keys. Best-effort.
func (c *Cache) Delete(ctx context.Context, keys ...string) {
	if c.client == nil || len(keys) == 0 {
		return
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.logger.Printf("delete error: %v", err)
	}
}

// ClearPattern deletes all keys matching a glob pattern and returns the
// number removed. Used for administrative invalidation after ETL loads.
func (c *Cache) ClearPattern(ctx context.Context, pattern string) int {
	if c.client == nil {
		return 0
	}

	var removed int
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.logger.Printf("clear pattern delete error for %s: %v", iter.Val(), err)
			continue
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		c.logger.Printf("clear pattern scan error for %s: %v", pattern, err)
	}

	if removed > 0 {
		c.logger.Printf("cleared %d keys matching %s", removed, pattern)
	}

	return removed
}
