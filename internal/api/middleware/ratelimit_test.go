package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

func TestClientKey(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		trustProxy bool
		want       string
	}{
		{name: "remote addr", want: "10.0.0.7"},
		{name: "forwarded ignored without proxy", forwarded: "203.0.113.9", want: "10.0.0.7"},
		{name: "spoofed chain ignored without proxy", forwarded: "203.0.113.9, 10.0.0.1", want: "10.0.0.7"},
		{name: "proxy appended address", forwarded: "198.51.100.1, 203.0.113.9", trustProxy: true, want: "203.0.113.9"},
		{name: "single hop behind proxy", forwarded: "203.0.113.9", trustProxy: true, want: "203.0.113.9"},
		{name: "empty header behind proxy", trustProxy: true, want: "10.0.0.7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/book", nil)
			req.RemoteAddr = "10.0.0.7:5555"
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.want, clientKey(req, tt.trustProxy))
		})
	}
}

func TestRedisRateLimiter_FailOpen(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	limiter := NewRedisRateLimiter(rdb, 1, time.Minute, "rl:test", false, logger.NewNop())
	called := false
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusCreated)
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/book", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestRedisRateLimiter_FailClosed(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	limiter := NewRedisRateLimiter(rdb, 1, time.Minute, "rl:test", false, logger.NewNop())
	limiter.failOpen = false
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not be called")
	}))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/book", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
