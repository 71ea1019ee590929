package domain

import "errors"

var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrLeaseLost         = errors.New("task lease lost")

	// Processing failures. Only ErrMediaUnreadable and ErrFrameExtractionFailed are retried.
	ErrRecordNotFound        = errors.New("job record not found")
	ErrSourceFileMissing     = errors.New("source file missing")
	ErrMediaUnreadable       = errors.New("media unreadable")
	ErrFrameExtractionFailed = errors.New("frame extraction failed")
	ErrRetriesExhausted      = errors.New("retries exhausted")
)

// IsRetryable reports whether a processing error is worth another attempt.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSourceFileMissing) || errors.Is(err, ErrRecordNotFound) || errors.Is(err, ErrRetriesExhausted) {
		return false
	}
	return true
}
