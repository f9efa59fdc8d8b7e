package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	assert.Equal(t, "activity:detail:123", ActivityDetailKey(123))
	assert.Equal(t, "activity:registration:limiter", RegistrationLimiterKey())
	assert.Equal(t, "token:blacklist:access:abc", TokenBlacklistKey("abc"))
}

func TestRandomTTL(t *testing.T) {
	base := 5 * time.Minute
	for i := 0; i < 100; i++ {
		ttl := RandomTTL(base)
		// 抖动范围 ±10%
		assert.GreaterOrEqual(t, ttl, time.Duration(float64(base)*0.89))
		assert.LessOrEqual(t, ttl, time.Duration(float64(base)*1.11))
	}
}

func TestRandomTTLSeconds(t *testing.T) {
	secs := RandomTTLSeconds(time.Minute)
	assert.GreaterOrEqual(t, secs, 53)
	assert.LessOrEqual(t, secs, 67)
}
