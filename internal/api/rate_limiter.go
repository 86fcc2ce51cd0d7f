package api

import (
	"sync"
	"time"
)

const (
	bucketCleanupThreshold = 1 * time.Hour
	cleanupInterval        = 30 * time.Minute
)

type bucket struct {
	tokens   float64
	capacity int
	last     time.Time
}

// RateLimiter keeps one token bucket per client and route. A bucket holds up
// to its route's capacity and regains that many tokens evenly over window.
// Routes without an explicit limit share the default capacity.
type RateLimiter struct {
	mu          sync.Mutex
	capacity    int
	window      time.Duration
	routeLimits map[string]int
	buckets     map[string]*bucket
	stopCleanup chan struct{}
	stopOnce    sync.Once
	now         func() time.Time
}

func NewRateLimiter(capacity int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		capacity:    capacity,
		window:      window,
		routeLimits: make(map[string]int),
		buckets:     make(map[string]*bucket),
		stopCleanup: make(chan struct{}),
		now:         time.Now,
	}
	go rl.cleanupLoop()
	return rl
}

// SetRouteLimits overrides the capacity for the given paths. Non-positive
// values are ignored.
func (r *RateLimiter) SetRouteLimits(limits map[string]int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for route, n := range limits {
		if n > 0 {
			r.routeLimits[route] = n
		}
	}
}

func (r *RateLimiter) limitFor(route string) int {
	if n, ok := r.routeLimits[route]; ok {
		return n
	}
	return r.capacity
}

func (r *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			r.cleanup()
		case <-r.stopCleanup:
			return
		}
	}
}

func (r *RateLimiter) cleanup() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for key, b := range r.buckets {
		if now.Sub(b.last) > bucketCleanupThreshold {
			delete(r.buckets, key)
		}
	}
}

// Stop ends the background cleanup. Safe to call more than once.
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stopCleanup) })
}

// Allow takes one token from the client's bucket for route.
func (r *RateLimiter) Allow(client, route string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	key := client + " " + route
	b, ok := r.buckets[key]
	if !ok {
		limit := r.limitFor(route)
		b = &bucket{tokens: float64(limit), capacity: limit, last: now}
		r.buckets[key] = b
	} else if elapsed := now.Sub(b.last); elapsed > 0 {
		refill := float64(b.capacity) * float64(elapsed) / float64(r.window)
		b.tokens = min(float64(b.capacity), b.tokens+refill)
		b.last = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}
