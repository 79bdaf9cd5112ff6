package middleware

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// tokenBucketScript refills and takes one token atomically.
// KEYS[1] bucket hash, ARGV[1] tokens per second, ARGV[2] capacity.
// Returns {allowed, retry_after_ms}.
const tokenBucketScript = `
local key  = KEYS[1]
local rate = tonumber(ARGV[1])
local cap  = tonumber(ARGV[2])

local t = redis.call('TIME')
local now_ms = tonumber(t[1]) * 1000 + math.floor(tonumber(t[2]) / 1000)

local data = redis.call('HMGET', key, 'tokens', 'ts')
local tokens = tonumber(data[1])
local ts = tonumber(data[2])
if tokens == nil then
  tokens = cap
  ts = now_ms
end

tokens = math.min(cap, tokens + (now_ms - ts) / 1000 * rate)

local allowed = 0
local retry_ms = 0
if tokens >= 1 then
  allowed = 1
  tokens = tokens - 1
else
  retry_ms = math.ceil((1 - tokens) / rate * 1000)
end

redis.call('HSET', key, 'tokens', tokens, 'ts', now_ms)
redis.call('PEXPIRE', key, math.ceil(cap / rate * 1000) + 1000)
return {allowed, retry_ms}
`

var errUnexpectedReply = errors.New("unexpected token bucket reply")

// RedisTokenBucket is a per-IP token bucket shared by every replica that talks to
// the same Redis.
type RedisTokenBucket struct {
	rdb    redis.Scripter
	prefix string
	keyFn  KeyFunc
	rps    float64
	burst  int
	script *redis.Script
}

// NewRedisTokenBucket creates a limiter whose keys are "<prefix>:<keyFn(r)>".
func NewRedisTokenBucket(rdb redis.Scripter, prefix string, rps float64, burst int, keyFn KeyFunc) *RedisTokenBucket {
	if keyFn == nil {
		keyFn = PeerIP
	}
	return &RedisTokenBucket{
		rdb:    rdb,
		prefix: prefix,
		keyFn:  keyFn,
		rps:    rps,
		burst:  burst,
		script: redis.NewScript(tokenBucketScript),
	}
}

func (b *RedisTokenBucket) key(r *http.Request) string {
	return b.prefix + ":" + b.keyFn(r)
}

// Allow takes a token for key and reports the wait before the next one otherwise.
func (b *RedisTokenBucket) Allow(ctx context.Context, key string) (bool, time.Duration, error) {
	res, err := b.script.Run(ctx, b.rdb, []string{key}, b.rps, b.burst).Int64Slice()
	if err != nil {
		return false, 0, err
	}
	if len(res) != 2 {
		return false, 0, errUnexpectedReply
	}
	return res[0] == 1, time.Duration(res[1]) * time.Millisecond, nil
}

// Middleware rejects requests over budget with 429 and a Retry-After header. When Redis
// is unreachable the request is let through.
func (b *RedisTokenBucket) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, retry, err := b.Allow(r.Context(), b.key(r))
		if err != nil {
			slog.Warn("redis rate limit unavailable", "error", err)
			next.ServeHTTP(w, r)
			return
		}
		if !allowed {
			w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(retry.Seconds()))))
			writeJSONError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}
