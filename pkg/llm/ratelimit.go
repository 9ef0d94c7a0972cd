package llm

import (
	"sync"
	"time"
)

// RateLimiter is a sliding-window request counter, safe for concurrent use
type RateLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu       sync.Mutex
	requests []time.Time // ordered, oldest first
}

// Usage is a snapshot of rate limiter state
type Usage struct {
	RequestsInLastMinute int `json:"requestsInLastMinute"`
	RemainingRequests    int `json:"remainingRequests"`
	Limit                int `json:"limit"`
}

// NewRateLimiter makes a limiter allowing limit requests per minute
func NewRateLimiter(limit int) *RateLimiter {
	return &RateLimiter{limit: limit, window: time.Minute, now: time.Now}
}

// TryAcquire reports whether another request fits into the window. It does not record anything.
func (r *RateLimiter) TryAcquire() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	return len(r.requests) < r.limit
}

// Record registers a request made now
func (r *RateLimiter) Record() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requests = append(r.requests, r.now())
}

// Take checks and records under a single lock, returns false if the window is full
func (r *RateLimiter) Take() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	if len(r.requests) >= r.limit {
		return false
	}
	r.requests = append(r.requests, r.now())
	return true
}

// Usage returns current window stats
func (r *RateLimiter) Usage() Usage {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.prune()
	return Usage{
		RequestsInLastMinute: len(r.requests),
		RemainingRequests:    max(0, r.limit-len(r.requests)),
		Limit:                r.limit,
	}
}

// prune drops requests older than the window, must be called under lock
func (r *RateLimiter) prune() {
	cutoff := r.now().Add(-r.window)
	idx := 0
	for idx < len(r.requests) && !r.requests[idx].After(cutoff) {
		idx++
	}
	if idx > 0 {
		r.requests = append(r.requests[:0], r.requests[idx:]...)
	}
}
