package middleware

import (
	"fmt"
	"net/http"
	"sync"

	"stayhub-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// RateLimiter keeps one token bucket per caller. Keyed by user id when
// authenticated, client IP otherwise.
type RateLimiter struct {
	limiters sync.Map
	rps      rate.Limit
	burst    int
}

func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst <= 0 {
		burst = 5
	}
	return &RateLimiter{rps: rate.Limit(rps), burst: burst}
}

func (l *RateLimiter) getLimiter(key string) *rate.Limiter {
	if v, ok := l.limiters.Load(key); ok {
		if lim, ok := v.(*rate.Limiter); ok {
			return lim
		}
	}

	lim := rate.NewLimiter(l.rps, l.burst)
	actual, loaded := l.limiters.LoadOrStore(key, lim)
	if loaded {
		if actualLim, ok := actual.(*rate.Limiter); ok {
			return actualLim
		}
	}
	return lim
}

// Limit rejects callers that exceed their bucket with 429.
func (l *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()
		if uid := CurrentUserID(c); uid != 0 {
			key = fmt.Sprintf("user:%d", uid)
		}

		if !l.getLimiter(key).Allow() {
			utils.JSONError(c, http.StatusTooManyRequests, "too many requests, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
