package fileops

import (
	"os"
	"time"
)

// ReadRetry reads a file, retrying when the failure classifies as Locked.
// Windows editors and scanners briefly hold exclusive handles on files they
// touch; a bounded retry rides out that window. Fatal errors return at once.
func ReadRetry(path string, policy RetryPolicy) ([]byte, error) {
	var attempts uint
	for {
		attempts++
		content, err := os.ReadFile(path)
		if err == nil {
			return content, nil
		}
		if Classify(err) == Locked && attempts <= policy.MaxRetries {
			time.Sleep(policy.RetryDelay)
			continue
		}
		return nil, NewFileOperationError("read", path, err).WithAttempts(attempts)
	}
}
