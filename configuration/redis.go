package configuration

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var ctx = context.Background()

// Client caches upstream responses; nil when Redis is not configured or
// unreachable.
var Client *redis.Client

// InitRedis connects to the cache when REDIS_ADDR is set. The service runs
// fine without it, every lookup just goes upstream.
func InitRedis() {
	if Cfg.RedisAddr == "" {
		log.Println("REDIS_ADDR not set, response cache disabled")
		return
	}

	Client = redis.NewClient(&redis.Options{
		Network: "tcp",
		Addr:    Cfg.RedisAddr,
	})
	if _, err := Client.Ping(ctx).Result(); err != nil {
		log.Println("redis unreachable, response cache disabled:", err)
		Client = nil
	}
}

// SetRedis stores a key with a TTL. No-op without a cache connection.
func SetRedis(key string, value any, expirationTime time.Duration) error {
	if Client == nil {
		return nil
	}
	return Client.Set(ctx, key, value, expirationTime).Err()
}

// GetRedis returns the cached value for key.
func GetRedis(key string) (string, error) {
	if Client == nil {
		return "", redis.Nil
	}
	return Client.Get(ctx, key).Result()
}
