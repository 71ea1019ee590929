package domain

import "time"

type OutcomeKind int

const (
	OutcomeOK OutcomeKind = iota
	OutcomeRetry
	OutcomeFatal
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeOK:
		return "ok"
	case OutcomeRetry:
		return "retry"
	case OutcomeFatal:
		return "fatal"
	}
	return "unknown"
}

// Outcome is what one processing attempt tells the worker pool to do with its task.
type Outcome struct {
	Kind   OutcomeKind
	Result *ProcessedResult
	Err    error
	Delay  time.Duration
}

func Ok(result *ProcessedResult) Outcome {
	return Outcome{Kind: OutcomeOK, Result: result}
}

func Retry(err error, delay time.Duration) Outcome {
	return Outcome{Kind: OutcomeRetry, Err: err, Delay: delay}
}

func Fatal(err error) Outcome {
	return Outcome{Kind: OutcomeFatal, Err: err}
}
