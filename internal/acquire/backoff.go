// internal/acquire/backoff.go
package acquire

import "time"

// backoff returns the wait before reconnect attempt n (1-based): the initial
// delay doubled per attempt, capped at max.
func backoff(initial, max time.Duration, attempt int) time.Duration {
	d := initial
	for i := 1; i < attempt; i++ {
		d *= 2
		if d >= max {
			return max
		}
	}
	if d > max {
		return max
	}
	return d
}
