package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestLimiter(maxAttempts int, window, block time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
	l := NewLimiter(maxAttempts, window, block)
	l.now = clock.now
	return l, clock
}

func TestLimiter_Check_FirstAttempt(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute, 5*time.Minute)

	allowed, wait := l.Check("client1")

	assert.True(t, allowed)
	assert.Equal(t, time.Duration(0), wait)
}

func TestLimiter_Check_BlocksAfterMaxAttempts(t *testing.T) {
	l, _ := newTestLimiter(3, time.Minute, 5*time.Minute)

	for range 3 {
		allowed, _ := l.Check("client1")
		assert.True(t, allowed)
	}

	allowed, wait := l.Check("client1")
	assert.False(t, allowed)
	assert.Equal(t, 5*time.Minute, wait)
}

func TestLimiter_Check_RemainingBlockDuration(t *testing.T) {
	l, clock := newTestLimiter(1, time.Minute, 10*time.Minute)

	l.Check("client1")
	l.Check("client1")
	clock.advance(time.Minute)

	allowed, wait := l.Check("client1")
	assert.False(t, allowed)
	assert.Equal(t, 9*time.Minute, wait)
}

func TestLimiter_Check_ResetsAfterWindow(t *testing.T) {
	l, clock := newTestLimiter(2, time.Minute, 5*time.Minute)

	l.Check("client1")
	l.Check("client1")
	clock.advance(2 * time.Minute)

	allowed, _ := l.Check("client1")
	assert.True(t, allowed)
}

func TestLimiter_Check_UnblocksAfterBlockDuration(t *testing.T) {
	l, clock := newTestLimiter(1, time.Minute, 5*time.Minute)

	l.Check("client1")
	allowed, _ := l.Check("client1")
	assert.False(t, allowed)

	clock.advance(6 * time.Minute)
	allowed, _ = l.Check("client1")
	assert.True(t, allowed)
}

func TestLimiter_Check_ClientsAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute, 5*time.Minute)

	l.Check("client1")
	blocked, _ := l.Check("client1")
	other, _ := l.Check("client2")

	assert.False(t, blocked)
	assert.True(t, other)
}

func TestLimiter_Reset(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute, 5*time.Minute)

	l.Check("client1")
	l.Check("client1")
	l.Reset("client1")

	allowed, _ := l.Check("client1")
	assert.True(t, allowed)
}

func TestLimiter_SweepsIdleClients(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute, time.Minute)

	l.Check("client1")
	l.Check("client2")
	assert.Equal(t, 2, l.size())

	clock.advance(3 * time.Minute)
	l.Check("client3")

	assert.Equal(t, 1, l.size())
}

func TestLimiter_Middleware(t *testing.T) {
	l, _ := newTestLimiter(1, time.Minute, 90*time.Second)
	calls := 0
	handler := l.Middleware(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusCreated)
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/upload-video", nil)
		req.RemoteAddr = "203.0.113.7:51000"
		rec := httptest.NewRecorder()
		handler(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusCreated, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "90", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many uploads")
	assert.Equal(t, 1, calls)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr", "198.51.100.4:4242", nil, "198.51.100.4"},
		{"forwarded chain", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"}, "203.0.113.9"},
		{"real ip", "10.0.0.1:80", map[string]string{"X-Real-IP": "203.0.113.10"}, "203.0.113.10"},
		{"no port", "198.51.100.4", nil, "198.51.100.4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			assert.Equal(t, tt.want, ClientIP(req))
		})
	}
}
