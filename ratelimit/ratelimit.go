package ratelimit

import (
	"time"
)

const logPrefix = "ratelimit"

const (
	DefaultPerMinute = 30
	DefaultBurst     = 10
)

// Limiter decides whether the holder of key may do one more action now
type Limiter interface {
	Allow(key string) (bool, error)
}

// Config of a limiter. PerMinute is the sustained rate and Burst how many
// actions may happen back to back.
type Config struct {
	PerMinute int
	Burst     int
}

func (c Config) withDefaults() Config {
	if c.PerMinute <= 0 {
		c.PerMinute = DefaultPerMinute
	}
	if c.Burst <= 0 {
		c.Burst = DefaultBurst
	}
	return c
}

// window of the redis limiter
const window = time.Minute
