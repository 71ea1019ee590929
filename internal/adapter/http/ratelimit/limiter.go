package ratelimit

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"
)

type AttemptRecord struct {
	Count        int
	LastAttempt  time.Time
	BlockedUntil time.Time
}

// Limiter allows maxAttempts requests per client inside a sliding window and
// blocks the client for blockDuration once the budget is exceeded.
type Limiter struct {
	mu             sync.Mutex
	attempts       map[string]*AttemptRecord
	maxAttempts    int
	windowDuration time.Duration
	blockDuration  time.Duration
	lastSweep      time.Time
	now            func() time.Time
}

func NewLimiter(maxAttempts int, windowDuration, blockDuration time.Duration) *Limiter {
	return &Limiter{
		attempts:       make(map[string]*AttemptRecord),
		maxAttempts:    maxAttempts,
		windowDuration: windowDuration,
		blockDuration:  blockDuration,
		now:            time.Now,
	}
}

// Check records one attempt for clientID. When the client is blocked it
// returns false and how long the block still lasts.
func (l *Limiter) Check(clientID string) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	record, exists := l.attempts[clientID]
	if !exists {
		record = &AttemptRecord{LastAttempt: now}
		l.attempts[clientID] = record
	}

	if now.Before(record.BlockedUntil) {
		return false, record.BlockedUntil.Sub(now)
	}

	if now.Sub(record.LastAttempt) > l.windowDuration {
		record.Count = 0
	}

	record.Count++
	record.LastAttempt = now

	if record.Count > l.maxAttempts {
		record.BlockedUntil = now.Add(l.blockDuration)
		return false, l.blockDuration
	}

	return true, 0
}

func (l *Limiter) Reset(clientID string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.attempts, clientID)
}

// sweep drops idle clients at most once per window. Caller holds mu.
func (l *Limiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.windowDuration {
		return
	}
	l.lastSweep = now
	for clientID, record := range l.attempts {
		if now.Sub(record.LastAttempt) > l.windowDuration*2 && now.After(record.BlockedUntil) {
			delete(l.attempts, clientID)
		}
	}
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.attempts)
}

// Middleware rejects blocked clients with 429 and a Retry-After header.
func (l *Limiter) Middleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		allowed, wait := l.Check(ClientIP(r))
		if !allowed {
			seconds := int(wait.Round(time.Second) / time.Second)
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"detail":"Too many uploads, try again later"}`))
			return
		}
		next(w, r)
	}
}

// ClientIP prefers the first X-Forwarded-For hop, then X-Real-IP, then the
// connection's remote address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
