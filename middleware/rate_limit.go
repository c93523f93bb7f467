package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/cppla/travelquest/utils"
)

const limiterIdle = 5 * time.Minute

type rateLimiter struct {
	limiter *rate.Limiter
	expires time.Time
}

// limiterSet holds one token bucket per key.
type limiterSet struct {
	mu       sync.Mutex
	limit    rate.Limit
	burst    int
	limiters map[string]*rateLimiter
}

func newLimiterSet(perMinute int) *limiterSet {
	perMinute = max(perMinute, 1)
	return &limiterSet{
		limit:    rate.Every(time.Minute / time.Duration(perMinute)),
		burst:    max(perMinute/2, 1),
		limiters: map[string]*rateLimiter{},
	}
}

func (s *limiterSet) allow(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	for k, l := range s.limiters {
		if now.After(l.expires) {
			delete(s.limiters, k)
		}
	}

	l, ok := s.limiters[key]
	if !ok {
		l = &rateLimiter{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[key] = l
	}
	l.expires = now.Add(limiterIdle)
	return l.limiter.Allow()
}

// RateLimitMiddleware applies an IP based token bucket.
func RateLimitMiddleware(perMinute int) gin.HandlerFunc {
	set := newLimiterSet(perMinute)
	return func(ctx *gin.Context) {
		if !set.allow(ctx.ClientIP()) {
			utils.Error(ctx, http.StatusTooManyRequests, 42901, "rate limit exceeded")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}

// UserRateLimit limits an authenticated route per user. It must run after AuthRequired.
func UserRateLimit(perMinute int) gin.HandlerFunc {
	set := newLimiterSet(perMinute)
	return func(ctx *gin.Context) {
		key := ctx.ClientIP()
		if uid := ctx.GetUint(ContextUserIDKey); uid != 0 {
			key = "u:" + strconv.FormatUint(uint64(uid), 10)
		}
		if !set.allow(key) {
			utils.Error(ctx, http.StatusTooManyRequests, 42902, "too many check-ins, slow down")
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
