package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func fixedClock(rl *RateLimiter) *time.Time {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	return &now
}

func TestRateLimiter_RefillsOverWindow(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	defer rl.Stop()
	now := fixedClock(rl)

	if !rl.Allow("a", "/plan") || !rl.Allow("a", "/plan") {
		t.Fatal("expected first two requests to pass")
	}
	if rl.Allow("a", "/plan") {
		t.Error("expected third request to be limited")
	}
	if !rl.Allow("b", "/plan") {
		t.Error("expected other clients to be unaffected")
	}

	// Half a window regains half the capacity.
	*now = now.Add(30 * time.Second)
	if !rl.Allow("a", "/plan") {
		t.Error("expected one token after half the window")
	}
	if rl.Allow("a", "/plan") {
		t.Error("expected only one token after half the window")
	}

	*now = now.Add(10 * time.Minute)
	if !rl.Allow("a", "/plan") || !rl.Allow("a", "/plan") {
		t.Error("expected a full bucket after a long pause")
	}
	if rl.Allow("a", "/plan") {
		t.Error("expected refill to stop at capacity")
	}
}

func TestRateLimiter_RouteLimits(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)
	defer rl.Stop()
	fixedClock(rl)
	rl.SetRouteLimits(map[string]int{"/projection": 1, "/plan": 0})

	if !rl.Allow("a", "/projection") {
		t.Fatal("expected first projection to pass")
	}
	if rl.Allow("a", "/projection") {
		t.Error("expected projection route to use its own limit")
	}
	for i := 0; i < 3; i++ {
		if !rl.Allow("a", "/plan") {
			t.Errorf("request %d: expected default limit for /plan", i+1)
		}
	}
	if rl.Allow("a", "/plan") {
		t.Error("expected /plan to be limited after the default capacity")
	}
}

func TestRateLimiter_Cleanup(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	defer rl.Stop()
	now := fixedClock(rl)

	rl.Allow("stale", "/plan")
	*now = now.Add(2 * time.Hour)
	rl.cleanup()
	if len(rl.buckets) != 0 {
		t.Errorf("expected stale bucket to be removed, got %d", len(rl.buckets))
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(1, time.Hour)
	defer rl.Stop()
	h := RateLimitMiddleware(rl, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	serve := func(path string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.RemoteAddr = "10.0.0.1:1234"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr.Code
	}
	if code := serve("/plan"); code != http.StatusOK {
		t.Fatalf("expected 200, got %d", code)
	}
	if code := serve("/plan"); code != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", code)
	}
	if code := serve("/healthz"); code != http.StatusOK {
		t.Errorf("expected separate bucket per path, got %d", code)
	}
}
