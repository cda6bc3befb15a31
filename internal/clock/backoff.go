package clock

import "time"

// Backoff returns the delay before retry number attempt (1-based): base doubled per attempt, capped at limit when limit is positive.
func Backoff(base, limit time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	delay := base
	for i := 1; i < attempt; i++ {
		if limit > 0 && delay >= limit/2 {
			return limit
		}
		delay *= 2
	}
	if limit > 0 && delay > limit {
		return limit
	}
	return delay
}
