package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// RateLimitPolicy define la ventana fija de una ruta.
type RateLimitPolicy struct {
	Route  string
	Window time.Duration
	Limit  int
}

// RateLimitDecision es el resultado de consultar el limitador.
// Remaining es -1 cuando no se pudo consultar redis.
type RateLimitDecision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// RequestRateLimiter limita requests por clave (IP del cliente o sujeto del token).
type RequestRateLimiter interface {
	Allow(ctx context.Context, key string) RateLimitDecision
}

// Devuelve {contador, ms restantes de la ventana}.
const redisRateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return {current, redis.call("PTTL", KEYS[1])}
`

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

type redisRateLimiter struct {
	client redisEvaler
	policy RateLimitPolicy
}

func NewRedisRateLimiter(client *redis.Client, policy RateLimitPolicy) RequestRateLimiter {
	if client == nil {
		return nil
	}
	return newRedisRateLimiter(client, policy)
}

func newRedisRateLimiter(client redisEvaler, policy RateLimitPolicy) *redisRateLimiter {
	if policy.Window <= 0 {
		policy.Window = time.Minute
	}
	if policy.Limit <= 0 {
		policy.Limit = 1
	}
	policy.Route = strings.TrimSpace(policy.Route)
	if policy.Route == "" {
		policy.Route = "default"
	}
	return &redisRateLimiter{client: client, policy: policy}
}

func (l *redisRateLimiter) redisKey(key string) string {
	return "insight:rl:" + l.policy.Route + ":" + key
}

// Allow falla abierto ante errores de redis: el limite protege la cuota del LLM.
func (l *redisRateLimiter) Allow(ctx context.Context, key string) RateLimitDecision {
	unknown := RateLimitDecision{Allowed: true, Limit: l.policy.Limit, Remaining: -1}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return RateLimitDecision{Limit: l.policy.Limit, RetryAfter: l.policy.Window}
	}

	ctx, cancel := context.WithTimeout(ctx, 500*time.Millisecond)
	defer cancel()

	res, err := l.client.Eval(ctx, redisRateLimitScript,
		[]string{l.redisKey(normalizedKey)},
		l.policy.Window.Milliseconds(),
	).Int64Slice()
	if err != nil || len(res) != 2 {
		return unknown
	}

	count, ttl := int(res[0]), time.Duration(res[1])*time.Millisecond
	if ttl < 0 {
		ttl = l.policy.Window
	}
	decision := RateLimitDecision{
		Allowed:   count <= l.policy.Limit,
		Limit:     l.policy.Limit,
		Remaining: max(l.policy.Limit-count, 0),
	}
	if !decision.Allowed {
		decision.RetryAfter = ttl
	}
	return decision
}
