package fs

import (
	"fmt"
	"os"
	"time"
)

// WaitForFile waits for a file to exist and be non-empty, backing off exponentially
// up to 500ms between checks.
func WaitForFile(filePath string, maxWait time.Duration) error {
	start := time.Now()
	delay := 50 * time.Millisecond

	for {
		if info, err := os.Stat(filePath); err == nil && info.Size() > 0 {
			return nil
		}

		if time.Since(start) >= maxWait {
			return fmt.Errorf("timeout waiting for file %s after %v", filePath, maxWait)
		}

		time.Sleep(delay)
		delay = min(2*delay, 500*time.Millisecond)
	}
}
