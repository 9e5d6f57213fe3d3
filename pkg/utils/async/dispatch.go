package async

import (
	"context"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/curbside/pkg/utils/logging"
)

var pending sync.WaitGroup

// Dispatch runs handler in a new goroutine. The handler receives a background
// context carrying the caller's logger tagged with job, so it outlives the
// request that triggered it. Errors and panics are logged, never returned.
func Dispatch(ctx context.Context, job string, handler func(ctx context.Context) error) {
	logger := logging.From(ctx).With("job", job)
	bgCtx := logging.With(context.Background(), logger)

	pending.Add(1)
	go func() {
		defer pending.Done()
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic in async job", "panic", r)
			}
		}()

		if err := handler(bgCtx); err != nil {
			logger.Error("async job failed", "error", goerr.Unwrap(err))
		}
	}()
}

// Wait blocks until every dispatched job has returned or ctx is done
func Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return goerr.Wrap(ctx.Err(), "async jobs still running")
	}
}
