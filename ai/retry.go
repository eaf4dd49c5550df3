package ai

import (
	"log"
	"time"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = 1 * time.Second
)

// Retrier re-runs a failing operation a fixed number of times with a growing
// pause between attempts (attempt x base delay, no jitter). Only the final
// error survives. The policy assumes the operation is idempotent - it is used
// for remote generation calls and must not wrap side-effecting writes.
type Retrier struct {
	Attempts  int
	BaseDelay time.Duration
}

func (r Retrier) Do(op func() (string, error)) (string, error) {
	attempts := r.Attempts
	if attempts <= 0 {
		attempts = defaultMaxAttempts
	}
	delay := r.BaseDelay
	if delay <= 0 {
		delay = defaultBaseDelay
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			time.Sleep(time.Duration(attempt-1) * delay)
		}
		out, err := op()
		if err == nil {
			return out, nil
		}
		lastErr = err
		log.Printf("generation attempt %d/%d failed: %v", attempt, attempts, err)
	}
	return "", lastErr
}
