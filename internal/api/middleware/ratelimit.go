package middleware

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonBooking/internal/api/handlers"
)

const msgRateLimited = "слишком много запросов, попробуйте позже"

// фиксированное окно: INCR + PEXPIRE на первом запросе
var rateLimitScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RedisRateLimiter ограничивает число запросов с одного адреса за окно
type RedisRateLimiter struct {
	client   redis.Scripter
	limit    int
	window   time.Duration
	prefix   string
	failOpen bool

	// trustProxy: адрес клиента берётся из X-Forwarded-For, который дописал прокси
	trustProxy bool

	logger Logger
}

func NewRedisRateLimiter(client redis.Scripter, limit int, window time.Duration, prefix string, trustProxy bool, logger Logger) *RedisRateLimiter {
	return &RedisRateLimiter{
		client:     client,
		limit:      limit,
		window:     window,
		prefix:     prefix,
		failOpen:   true,
		trustProxy: trustProxy,
		logger:     logger,
	}
}

// Middleware отвечает 429 при превышении лимита
// При недоступности Redis запрос пропускается
func (l *RedisRateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := l.prefix + ":" + clientKey(r, l.trustProxy)

		count, err := l.incr(r.Context(), key)
		if err != nil {
			l.logger.Error("%s %s - Rate limiter unavailable: %v", r.Method, r.URL.Path, err)
			if l.failOpen {
				next.ServeHTTP(w, r)
				return
			}
			handlers.RespondInternalError(w)
			return
		}

		if count > int64(l.limit) {
			l.logger.Warn("%s %s - Rate limit exceeded: key=%s, count=%d", r.Method, r.URL.Path, key, count)
			w.Header().Set("Retry-After", strconv.Itoa(int(l.window.Seconds())))
			handlers.RespondTooManyRequests(w, msgRateLimited)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (l *RedisRateLimiter) incr(ctx context.Context, key string) (int64, error) {
	res, err := rateLimitScript.Run(ctx, l.client, []string{key}, l.window.Milliseconds()).Result()
	if err != nil {
		return 0, err
	}

	switch v := res.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case string:
		return strconv.ParseInt(v, 10, 64)
	default:
		return 0, fmt.Errorf("unexpected rate limit result type %T", res)
	}
}

// clientKey адрес клиента для ключа лимита
// Без доверенного прокси заголовок X-Forwarded-For игнорируется: его задаёт клиент.
// За прокси берётся последний адрес цепочки, его дописывает сам прокси
func clientKey(r *http.Request, trustProxy bool) string {
	if fwd := r.Header.Get("X-Forwarded-For"); trustProxy && fwd != "" {
		hops := strings.Split(fwd, ",")
		last := strings.TrimSpace(hops[len(hops)-1])
		if last != "" {
			return last
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
