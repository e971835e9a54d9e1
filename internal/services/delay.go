package services

import (
	"context"
	"time"

	"acsd/internal/structures"
)

// delays simulates the latency of a remote backend. Every service operation
// waits for its configured duration before touching storage, so callers see
// the same timing profile the production API would have. The wait is
// context-aware; a cancelled caller gets ctx.Err back and no storage access
// happens.
type delays struct {
	conf structures.LatencyConfig
}

func (d delays) wait(ctx context.Context, dur time.Duration) error {
	if !d.conf.Enabled || dur <= 0 {
		return nil
	}
	t := time.NewTimer(dur)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
