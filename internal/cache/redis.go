package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache keys for the list endpoints.
const (
	ItemsKey      = "items:all"
	CategoriesKey = "categories:all"
	SuppliersKey  = "suppliers:all"
)

func InitRedis(addr, password string) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return redisClient, nil
}

// Cache is a read-through cache for list responses. A nil *Cache or a Cache
// without a client is a no-op, so the server keeps serving from the database
// when Redis is down.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// Get returns the cached body for key, or false on a miss or any Redis error.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	cached, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return cached, true
}

// Set stores body under key with the configured TTL. Failures are ignored;
// the cache never blocks a response.
func (c *Cache) Set(ctx context.Context, key string, body []byte) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Set(ctx, key, body, c.ttl).Err()
}

// Invalidate drops the given keys after a mutation.
func (c *Cache) Invalidate(ctx context.Context, keys ...string) {
	if c == nil || c.client == nil {
		return
	}
	_ = c.client.Del(ctx, keys...).Err()
}
