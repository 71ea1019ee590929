package port

import "context"

type MediaInspector interface {
	// Probe returns the media duration in seconds. Failures wrap domain.ErrMediaUnreadable.
	Probe(ctx context.Context, path string) (float64, error)
}

type FrameExtractor interface {
	// ExtractFrame writes a single frame taken at timestamp seconds to outputPath,
	// overwriting it. Failures wrap domain.ErrFrameExtractionFailed.
	ExtractFrame(ctx context.Context, path string, timestamp float64, outputPath string) error
}
