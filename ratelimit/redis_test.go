package ratelimit

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisLimiterTestSuite struct {
	suite.Suite
	client *redis.Client
}

func (s *RedisLimiterTestSuite) SetupSuite() {
	s.client = redis.NewClient(&redis.Options{Addr: "127.0.0.1:6379", DB: 15})
	if err := s.client.Ping(context.Background()).Err(); err != nil {
		s.T().Skipf("redis is not available: %s", err)
	}
}

func (s *RedisLimiterTestSuite) SetupTest() {
	s.NoError(s.client.FlushDB(context.Background()).Err())
}

func (s *RedisLimiterTestSuite) TearDownSuite() {
	_ = s.client.Close()
}

func (s *RedisLimiterTestSuite) TestAllowWithinWindow() {
	l := NewRedisLimiter(s.client, Config{PerMinute: 2, Burst: 1})
	start := time.Unix(1588320000, 0)
	l.now = func() time.Time { return start }

	for i := 0; i < 3; i++ {
		ok, err := l.Allow("alice")
		s.NoError(err)
		s.True(ok)
	}

	ok, err := l.Allow("alice")
	s.NoError(err)
	s.False(ok)

	ok, err = l.Allow("bob")
	s.NoError(err)
	s.True(ok)

	// the next window starts over
	l.now = func() time.Time { return start.Add(time.Minute) }
	ok, err = l.Allow("alice")
	s.NoError(err)
	s.True(ok)

	ttl, err := s.client.TTL(context.Background(), l.windowKey("alice")).Result()
	s.NoError(err)
	s.True(ttl > 0 && ttl <= time.Minute)
}

func TestRedisLimiterTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLimiterTestSuite))
}
