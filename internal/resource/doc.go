// Package resource implements the resource controller shared by clustering
// runs and dump sinks.
//
// The controller manages three resource types:
//
//   - Memory: kernel scratch space reserved per run (non-blocking, fail-fast)
//   - Concurrency: the number of runs executing at the same time
//   - IO: token-bucket rate limit for dump writes
//
// # Memory
//
//	rc := resource.NewController(resource.Config{
//	    MemoryLimitBytes: 64 << 20,
//	})
//
//	if err := rc.AcquireMemory(scratch); err != nil {
//	    // ErrMemoryLimitExceeded - caller decides retry/backoff
//	}
//	defer rc.ReleaseMemory(scratch)
//
// # Concurrent runs
//
//	if err := rc.AcquireRun(ctx); err != nil {
//	    return err
//	}
//	defer rc.ReleaseRun()
//
// # IO Rate Limiting
//
//	rc := resource.NewController(resource.Config{
//	    IOLimitBytesPerSec: 1 << 20,
//	})
//	w := resource.NewRateLimitedWriter(ctx, blob, rc)
//
// # Nil Safety
//
// All methods handle a nil Controller gracefully - they become no-ops.
// This allows optional resource limiting without nil checks everywhere.
package resource
