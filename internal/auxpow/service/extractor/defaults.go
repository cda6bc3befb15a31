package extractor

import "time"

const (
	defaultPageSize     uint64 = 500
	defaultMaxAttempts         = 5
	defaultRetryDelay          = 2 * time.Second
	defaultPollInterval        = 30 * time.Second

	maxRetryDelay = 1 * time.Minute
)

// DefaultConfig returns the settings used when none are given.
func DefaultConfig() Config {
	return Config{
		PageSize:     defaultPageSize,
		MaxAttempts:  defaultMaxAttempts,
		RetryDelay:   defaultRetryDelay,
		PollInterval: defaultPollInterval,
	}
}
