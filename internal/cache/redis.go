// Package cache keeps fetched response bodies in Redis so repeated runs do not
// hit the remote sites again.
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix namespaces every response key.
const KeyPrefix = "rb70:http:"

// RedisCache stores response bodies keyed by URL.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to redisURL and pings it.
func NewRedisCache(redisURL string) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse redis url")
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}

	return &RedisCache{client: client}, nil
}

// NewFromClient wraps an existing client.
func NewFromClient(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Client returns the underlying Redis client
func (rc *RedisCache) Client() *redis.Client {
	return rc.client
}

// Get returns the cached body for url. A miss is (nil, false, nil).
func (rc *RedisCache) Get(ctx context.Context, url string) ([]byte, bool, error) {
	body, err := rc.client.Get(ctx, Key(url)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "redis get")
	}
	return body, true, nil
}

// Set stores body for url with ttl.
func (rc *RedisCache) Set(ctx context.Context, url string, body []byte, ttl time.Duration) error {
	if err := rc.client.Set(ctx, Key(url), body, ttl).Err(); err != nil {
		return errors.Wrap(err, "redis set")
	}
	return nil
}

// Delete removes cached urls.
func (rc *RedisCache) Delete(ctx context.Context, urls ...string) error {
	keys := make([]string, len(urls))
	for i, u := range urls {
		keys[i] = Key(u)
	}
	return rc.client.Del(ctx, keys...).Err()
}

// Key is the Redis key for a URL.
func Key(url string) string {
	sum := sha1.Sum([]byte(url))
	return KeyPrefix + hex.EncodeToString(sum[:])
}
