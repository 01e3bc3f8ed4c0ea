// Package ratelimit throttles the public redemption endpoint with a
// fixed-window counter in Redis, shared across instances.
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
local ttl = redis.call("PTTL", KEYS[1])
if ttl < 0 then
  ttl = tonumber(ARGV[1])
end
return {current, ttl}
`)

type RedisLimiter struct {
	client redis.UniversalClient
	prefix string
	limit  int
	window time.Duration
}

func NewRedisLimiter(client redis.UniversalClient, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		prefix: "digitalmarket:rate",
		limit:  limit,
		window: window,
	}
}

// Allow counts one attempt for the subject and reports whether it is within
// the window limit. Fails open on Redis errors: the quota in the entitlement
// ledger is the hard limit, this is only abuse dampening.
func (l *RedisLimiter) Allow(ctx context.Context, scope string, subject string) (bool, error) {
	if l == nil || l.client == nil || l.limit <= 0 || l.window <= 0 {
		return true, nil
	}

	key := fmt.Sprintf("%s:%s:%s", l.prefix, scope, subject)
	raw, err := fixedWindowScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return true, err
	}

	values, ok := raw.([]interface{})
	if !ok || len(values) != 2 {
		return true, fmt.Errorf("unexpected limiter response shape: %T", raw)
	}
	count, ok := values[0].(int64)
	if !ok {
		return true, fmt.Errorf("unexpected limiter count type: %T", values[0])
	}

	return count <= int64(l.limit), nil
}
