package util

import (
	"context"
	"time"
)

// CtxWithTimeout runs fn with a context that expires after dur.
// A non-positive dur runs fn with ctx unchanged.
func CtxWithTimeout(ctx context.Context, dur time.Duration, fn func(context.Context) error) error {
	if ctx == nil {
		ctx = context.Background()
	}

	if dur <= 0 {
		return fn(ctx)
	}

	timeoutCtx, cancelTimeout := context.WithTimeout(ctx, dur)
	defer cancelTimeout()

	return fn(timeoutCtx)
}
