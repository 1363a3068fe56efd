package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// RateLimiterCache holds one *rate.Limiter per client IP. Idle limiters
// expire so the map does not grow without bound.
var RateLimiterCache = cache.New(10*time.Minute, 20*time.Minute)
