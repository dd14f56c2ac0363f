package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryLimiterBurst(t *testing.T) {
	l := NewMemoryLimiter(Config{PerMinute: 60, Burst: 3})
	defer l.Close()

	now := time.Now()
	assert.True(t, l.allowAt("alice", now))
	assert.True(t, l.allowAt("alice", now))
	assert.True(t, l.allowAt("alice", now))
	assert.False(t, l.allowAt("alice", now))

	// other keys have their own bucket
	assert.True(t, l.allowAt("bob", now))

	// one token per second comes back
	assert.True(t, l.allowAt("alice", now.Add(time.Second)))
	assert.False(t, l.allowAt("alice", now.Add(time.Second)))
}

func TestMemoryLimiterDefaults(t *testing.T) {
	l := NewMemoryLimiter(Config{})
	defer l.Close()

	now := time.Now()
	for i := 0; i < DefaultBurst; i++ {
		assert.True(t, l.allowAt("alice", now))
	}
	assert.False(t, l.allowAt("alice", now))
}

func TestMemoryLimiterSweep(t *testing.T) {
	l := NewMemoryLimiter(Config{PerMinute: 60, Burst: 1})
	defer l.Close()

	now := time.Now()
	l.allowAt("alice", now)
	l.allowAt("bob", now.Add(20*time.Minute))

	assert.Equal(t, 1, l.sweep(now.Add(40*time.Minute)))
	assert.Len(t, l.entries, 1)
	assert.Contains(t, l.entries, "bob")

	// a forgotten key starts with a full bucket
	assert.True(t, l.allowAt("alice", now.Add(40*time.Minute)))
}
