package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/config"
)

func newContext(method, path string) echo.Context {
	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)
	return c
}

func TestRateLimiterPassesThroughWhenDisabled(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: false, Limit: 1, Window: time.Minute}
	mw := NewRateLimiter(cfg, nil)

	called := 0
	handler := mw(func(c echo.Context) error {
		called++
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 5; i++ {
		if err := handler(newContext(http.MethodGet, "/v1/rooms")); err != nil {
			t.Fatalf("handler: %v", err)
		}
	}
	if called != 5 {
		t.Errorf("handler called %d times, want 5", called)
	}
}

func TestRateLimiterPassesThroughWithoutRedis(t *testing.T) {
	cfg := config.RateLimitConfig{Enabled: true, Limit: 1, Window: time.Minute}
	mw := NewRateLimiter(cfg, nil)

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})
	if err := handler(newContext(http.MethodGet, "/v1/rooms")); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !called {
		t.Error("handler not reached with nil Redis client")
	}
}

func TestBuildRateKeyStrategies(t *testing.T) {
	c := newContext(http.MethodPost, "/v1/bookings")
	ip := c.RealIP()

	for _, tc := range []struct {
		strategy string
		want     string
	}{
		{"ip", "rl:ip:" + ip},
		{"route", "rl:route:POST /v1/bookings"},
		{"ip_route", "rl:ip:" + ip + ":route:POST /v1/bookings"},
		{"bogus", "rl:ip:" + ip + ":route:POST /v1/bookings"},
	} {
		cfg := config.RateLimitConfig{Prefix: "rl", KeyStrategy: tc.strategy}
		if got := buildRateKey(cfg, c); got != tc.want {
			t.Errorf("strategy %q: key = %q, want %q", tc.strategy, got, tc.want)
		}
	}
}
