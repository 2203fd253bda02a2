package handler

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimit returns a middleware enforcing a fixed request-per-minute
// ceiling per caller IP. Windows reset a minute after their first request;
// exceeding the ceiling inside a window yields 429.
func RateLimit(perMinute int) gin.HandlerFunc {
	type window struct {
		start time.Time
		count int
	}

	var mu sync.Mutex
	windows := make(map[string]*window)

	return func(c *gin.Context) {
		now := time.Now()
		ip := c.ClientIP()

		mu.Lock()
		w, ok := windows[ip]
		if !ok || now.Sub(w.start) >= time.Minute {
			w = &window{start: now}
			windows[ip] = w
		}
		w.count++
		exceeded := w.count > perMinute
		mu.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
