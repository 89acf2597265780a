package middleware

import (
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

type rateLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientWindow
	limit   int
	window  time.Duration
}

type clientWindow struct {
	count   int
	resetAt time.Time
}

var limiter *rateLimiter

func init() {
	limit := 120
	if v, err := strconv.Atoi(os.Getenv("RATE_LIMIT_PER_MINUTE")); err == nil && v > 0 {
		limit = v
	}
	limiter = &rateLimiter{
		clients: make(map[string]*clientWindow),
		limit:   limit,
		window:  time.Minute,
	}

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			limiter.cleanup()
		}
	}()
}

// RateLimiter caps requests per client IP per minute.
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		limiter.mu.Lock()
		defer limiter.mu.Unlock()

		now := time.Now()
		win, exists := limiter.clients[ip]
		if !exists || now.After(win.resetAt) {
			limiter.clients[ip] = &clientWindow{count: 1, resetAt: now.Add(limiter.window)}
			c.Next()
			return
		}

		if win.count >= limiter.limit {
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"retry_after": win.resetAt.Sub(now).Seconds(),
			})
			c.Abort()
			return
		}

		win.count++
		c.Next()
	}
}

func (rl *rateLimiter) cleanup() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	for ip, win := range rl.clients {
		if now.After(win.resetAt) {
			delete(rl.clients, ip)
		}
	}
}
