package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_Duration(t *testing.T) {
	tests := []struct {
		name    string
		attempt int
		want    time.Duration
	}{
		{"attempt 0 returns min", 0, 100 * time.Millisecond},
		{"attempt 1", 1, 100 * time.Millisecond},
		{"attempt 2 doubles", 2, 200 * time.Millisecond},
		{"attempt 3", 3, 400 * time.Millisecond},
		{"caps at max", 10, 2 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(100*time.Millisecond, 2*time.Second, 2.0)
			b.Jitter = false
			assert.Equal(t, tt.want, b.Duration(tt.attempt))
		})
	}
}

func TestBackoff_Duration_WithJitter(t *testing.T) {
	b := New(100*time.Millisecond, 2*time.Second, 2.0)

	for i := 0; i < 100; i++ {
		d := b.Duration(3)
		assert.GreaterOrEqual(t, d, 200*time.Millisecond)
		assert.LessOrEqual(t, d, 400*time.Millisecond)
	}
}

func TestPoller_WakeShortensWait(t *testing.T) {
	p := NewPoller(&Backoff{Min: time.Minute, Max: time.Minute, Factor: 1})
	p.Wake()
	p.Wake() // coalesced

	start := time.Now()
	assert.NoError(t, p.Wait(context.Background(), 1))
	assert.Less(t, time.Since(start), time.Second)
}

func TestPoller_ContextCancel(t *testing.T) {
	p := NewPoller(&Backoff{Min: time.Minute, Max: time.Minute, Factor: 1})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := p.Wait(ctx, 1)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestPoller_TimerElapses(t *testing.T) {
	p := NewPoller(&Backoff{Min: 10 * time.Millisecond, Max: 10 * time.Millisecond, Factor: 1})

	assert.NoError(t, p.Wait(context.Background(), 0))
}
