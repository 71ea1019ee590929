package domain

import (
	"fmt"
	"math"
	"strconv"
)

// MaxDurationSeconds bounds a parsed duration. Anything longer is treated as
// a corrupt header rather than a real video.
const MaxDurationSeconds = 7 * 24 * 60 * 60

type ProbeFormat struct {
	FormatName string `json:"format_name"`
	Duration   string `json:"duration"`
	Size       string `json:"size"`
	NbStreams  int    `json:"nb_streams"`
}

type ProbeStream struct {
	Index     int    `json:"index"`
	CodecType string `json:"codec_type"`
	CodecName string `json:"codec_name"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Duration  string `json:"duration"`
}

// ProbeResult is the subset of ffprobe's JSON output the pipeline reads.
type ProbeResult struct {
	Format  ProbeFormat   `json:"format"`
	Streams []ProbeStream `json:"streams"`
}

func (p *ProbeResult) VideoStream() *ProbeStream {
	for i := range p.Streams {
		if p.Streams[i].CodecType == "video" {
			return &p.Streams[i]
		}
	}
	return nil
}

// DurationSeconds prefers the container duration and falls back to the first
// video stream. Zero means no usable duration.
func (p *ProbeResult) DurationSeconds() float64 {
	if d := ParseDuration(p.Format.Duration); d > 0 {
		return d
	}
	if vs := p.VideoStream(); vs != nil {
		return ParseDuration(vs.Duration)
	}
	return 0
}

// ParseDuration reads an ffprobe duration field. Unparseable, non-finite and
// out-of-range values all yield 0.
func ParseDuration(durationStr string) float64 {
	if durationStr == "" || durationStr == "N/A" {
		return 0
	}
	duration, err := strconv.ParseFloat(durationStr, 64)
	if err != nil || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0
	}
	if duration <= 0 || duration > MaxDurationSeconds {
		return 0
	}
	return duration
}

// FormatDuration renders whole seconds as HH:MM:SS, truncating fractions.
func FormatDuration(seconds float64) string {
	if !(seconds > 0) {
		return "00:00:00"
	}
	total := int64(math.Min(seconds, MaxDurationSeconds))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

// ThumbnailTimestamp picks the frame 10% into the video, kept inside [0, duration).
func ThumbnailTimestamp(duration float64) float64 {
	if duration <= 0 {
		return 0
	}
	ts := 0.1 * duration
	if ts >= duration {
		ts = duration - 0.001
	}
	if ts < 0 {
		ts = 0
	}
	return ts
}
