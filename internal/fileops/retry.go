// Package fileops implements atomic, crash-safe file mutation primitives.
//
// Atomicity is achieved purely through the temp-file-then-rename pattern:
// a concurrent reader of a target path observes either the complete old
// content or the complete new content, never a partial write. No advisory
// locks are taken; correctness depends only on the filesystem's rename
// syscall being atomic.
package fileops

import "time"

// RetryPolicy bounds the retry loop applied to transient lock failures
// during the atomic swap step. Immutable per operation.
type RetryPolicy struct {
	MaxRetries uint          // Additional attempts after the first (0 = try once)
	RetryDelay time.Duration // Fixed delay between attempts
}

// DefaultRetryPolicy returns the engine defaults: 3 retries at 100ms.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: 3,
		RetryDelay: 100 * time.Millisecond,
	}
}
