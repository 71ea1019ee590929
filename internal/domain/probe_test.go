package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "00:00:00"},
		{-5, "00:00:00"},
		{59.9, "00:00:59"},
		{100, "00:01:40"},
		{3600, "01:00:00"},
		{3723.4, "01:02:03"},
		{360000, "100:00:00"},
		{math.NaN(), "00:00:00"},
		{math.Inf(1), "168:00:00"},
		{1e300, "168:00:00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds), "seconds=%v", tt.seconds)
	}
}

func TestThumbnailTimestamp(t *testing.T) {
	tests := []struct {
		name     string
		duration float64
		want     float64
	}{
		{"100 seconds", 100, 10},
		{"short clip", 0.5, 0.05},
		{"zero", 0, 0},
		{"negative", -3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ThumbnailTimestamp(tt.duration)
			assert.InDelta(t, tt.want, got, 1e-9)
			if tt.duration > 0 {
				assert.GreaterOrEqual(t, got, 0.0)
				assert.Less(t, got, tt.duration)
			}
		})
	}
}

func TestProbeResult_DurationSeconds(t *testing.T) {
	tests := []struct {
		name  string
		probe ProbeResult
		want  float64
	}{
		{
			name:  "format duration",
			probe: ProbeResult{Format: ProbeFormat{Duration: "12.5"}},
			want:  12.5,
		},
		{
			name: "stream fallback",
			probe: ProbeResult{
				Format: ProbeFormat{Duration: "N/A"},
				Streams: []ProbeStream{
					{CodecType: "audio", Duration: "99"},
					{CodecType: "video", Duration: "7.25"},
				},
			},
			want: 7.25,
		},
		{
			name:  "no duration",
			probe: ProbeResult{Streams: []ProbeStream{{CodecType: "audio", Duration: "3"}}},
			want:  0,
		},
		{
			name:  "garbage",
			probe: ProbeResult{Format: ProbeFormat{Duration: "abc"}},
			want:  0,
		},
		{
			name:  "infinite",
			probe: ProbeResult{Format: ProbeFormat{Duration: "Inf"}},
			want:  0,
		},
		{
			name:  "not a number",
			probe: ProbeResult{Format: ProbeFormat{Duration: "NaN"}},
			want:  0,
		},
		{
			name:  "absurdly long",
			probe: ProbeResult{Format: ProbeFormat{Duration: "1e300"}},
			want:  0,
		},
		{
			name: "out of range container falls back to stream",
			probe: ProbeResult{
				Format:  ProbeFormat{Duration: "1e300"},
				Streams: []ProbeStream{{CodecType: "video", Duration: "42"}},
			},
			want: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.probe.DurationSeconds())
		})
	}
}
