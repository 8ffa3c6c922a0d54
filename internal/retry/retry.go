package retry

import (
	"context"
	"fmt"
	"time"

	retrylib "github.com/sethvargo/go-retry"
)

const (
	defaultMaxAttempts = 3
	defaultBaseDelay   = time.Second
)

// Policy bounds an operation to MaxAttempts executions with exponential
// backoff between them: BaseDelay, 2*BaseDelay, 4*BaseDelay, ...
type Policy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = defaultMaxAttempts
	}
	if p.BaseDelay <= 0 {
		p.BaseDelay = defaultBaseDelay
	}
	return p
}

// Do runs op until it succeeds or the attempt budget is exhausted. The first
// success is returned immediately. Only failures accepted by the transient
// classifier are retried; anything else aborts on the spot. The returned
// error wraps the last underlying failure, so errors.Is keeps working.
func Do[T any](ctx context.Context, p Policy, transient func(error) bool, op func(context.Context) (T, error)) (T, error) {
	p = p.normalized()

	var out T
	attempts := 0
	backoff := retrylib.WithMaxRetries(uint64(p.MaxAttempts-1), retrylib.NewExponential(p.BaseDelay))

	err := retrylib.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		v, opErr := op(ctx)
		if opErr != nil {
			if transient != nil && transient(opErr) {
				return retrylib.RetryableError(opErr)
			}
			return opErr
		}
		out = v
		return nil
	})
	if err != nil {
		var zero T
		return zero, fmt.Errorf("after %d attempt(s): %w", attempts, err)
	}
	return out, nil
}
