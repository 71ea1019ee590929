package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
)

// Inspector reads container metadata with ffprobe.
type Inspector struct {
	bin     string
	timeout time.Duration
}

func NewInspector(bin string, timeout time.Duration) *Inspector {
	if bin == "" {
		bin = "ffprobe"
	}
	return &Inspector{bin: bin, timeout: timeout}
}

func (i *Inspector) Probe(ctx context.Context, path string) (float64, error) {
	if err := validatePath(path); err != nil {
		return 0, fmt.Errorf("%w: invalid input path: %v", domain.ErrMediaUnreadable, err)
	}
	if _, err := os.Stat(path); err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMediaUnreadable, err)
	}

	out, err := run(ctx, i.timeout, i.bin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	if err != nil {
		logger.Debug.Printf("ffprobe %s: %s", logger.SanitizeForLog(path), logger.Truncate(err.Error(), 300))
		return 0, fmt.Errorf("%w: %v", domain.ErrMediaUnreadable, err)
	}

	probe, err := parseProbeOutput(out)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", domain.ErrMediaUnreadable, err)
	}

	duration := probe.DurationSeconds()
	if duration <= 0 {
		return 0, fmt.Errorf("%w: no usable duration", domain.ErrMediaUnreadable)
	}
	return duration, nil
}

func parseProbeOutput(out []byte) (*domain.ProbeResult, error) {
	var probe domain.ProbeResult
	if err := json.Unmarshal(out, &probe); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}
	return &probe, nil
}

var _ port.MediaInspector = (*Inspector)(nil)
