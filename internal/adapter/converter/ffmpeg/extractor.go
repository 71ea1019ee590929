package ffmpeg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/bnema/vidqueue/internal/domain"
	"github.com/bnema/vidqueue/internal/infrastructure/logger"
	"github.com/bnema/vidqueue/internal/port"
)

// Extractor grabs single frames with ffmpeg.
type Extractor struct {
	bin     string
	timeout time.Duration
	width   int
}

// NewExtractor returns an Extractor that scales frames to width pixels,
// keeping the aspect ratio. A width of 0 keeps the source size.
func NewExtractor(bin string, timeout time.Duration, width int) *Extractor {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &Extractor{bin: bin, timeout: timeout, width: width}
}

func (e *Extractor) ExtractFrame(ctx context.Context, path string, timestamp float64, outputPath string) error {
	if err := validatePath(path); err != nil {
		return fmt.Errorf("%w: invalid input path: %v", domain.ErrFrameExtractionFailed, err)
	}
	if err := validatePath(outputPath); err != nil {
		return fmt.Errorf("%w: invalid output path: %v", domain.ErrFrameExtractionFailed, err)
	}
	if timestamp < 0 {
		return fmt.Errorf("%w: negative timestamp %v", domain.ErrFrameExtractionFailed, timestamp)
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("%w: create output dir: %v", domain.ErrFrameExtractionFailed, err)
	}
	// A frame left by an earlier attempt must not count as this run's output.
	if err := os.Remove(outputPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("%w: remove stale frame: %v", domain.ErrFrameExtractionFailed, err)
	}

	args := []string{
		"-i", path,
		"-ss", strconv.FormatFloat(timestamp, 'f', 3, 64),
		"-frames:v", "1",
		"-q:v", "2",
	}
	if e.width > 0 {
		args = append(args, "-vf", fmt.Sprintf("scale=%d:-2", e.width))
	}
	args = append(args, "-y", outputPath)

	if _, err := run(ctx, e.timeout, e.bin, args...); err != nil {
		logger.Debug.Printf("ffmpeg %s: %s", logger.SanitizeForLog(path), logger.Truncate(err.Error(), 300))
		return fmt.Errorf("%w: %v", domain.ErrFrameExtractionFailed, err)
	}

	info, err := os.Stat(outputPath)
	if err != nil || info.Size() == 0 {
		return fmt.Errorf("%w: no frame written to %s", domain.ErrFrameExtractionFailed, outputPath)
	}
	return nil
}

var _ port.FrameExtractor = (*Extractor)(nil)
