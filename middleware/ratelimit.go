package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// loginLimiter 按客户端 IP 记录窗口内的登录尝试时间
type loginLimiter struct {
	mu          sync.Mutex
	attempts    map[string][]time.Time
	maxAttempts int
	window      time.Duration
	now         func() time.Time
	// done 在清理协程退出后关闭
	done chan struct{}
}

func newLoginLimiter(ctx context.Context, maxAttempts int, window, cleanupEvery time.Duration) *loginLimiter {
	l := &loginLimiter{
		attempts:    make(map[string][]time.Time),
		maxAttempts: maxAttempts,
		window:      window,
		now:         time.Now,
		done:        make(chan struct{}),
	}
	go l.cleanupLoop(ctx, cleanupEvery)
	return l
}

// cleanupLoop 定期清理过期记录，ctx 结束时退出
func (l *loginLimiter) cleanupLoop(ctx context.Context, every time.Duration) {
	defer close(l.done)
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.mu.Lock()
			cutoff := l.now().Add(-l.window)
			for ip, ts := range l.attempts {
				if kept := pruneBefore(ts, cutoff); len(kept) == 0 {
					delete(l.attempts, ip)
				} else {
					l.attempts[ip] = kept
				}
			}
			l.mu.Unlock()
		}
	}
}

// allow 记录一次尝试，超过上限时返回 false 且不计数
func (l *loginLimiter) allow(ip string) bool {
	now := l.now()
	l.mu.Lock()
	defer l.mu.Unlock()

	ts := pruneBefore(l.attempts[ip], now.Add(-l.window))
	if len(ts) >= l.maxAttempts {
		l.attempts[ip] = ts
		return false
	}
	l.attempts[ip] = append(ts, now)
	return true
}

func pruneBefore(ts []time.Time, cutoff time.Time) []time.Time {
	kept := ts[:0]
	for _, t := range ts {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// LoginRateLimit 登录接口限流中间件
// 每个 IP 在 window 内最多 maxAttempts 次尝试，超过则返回 429；清理协程随 ctx 结束
func LoginRateLimit(ctx context.Context, maxAttempts int, window time.Duration) gin.HandlerFunc {
	l := newLoginLimiter(ctx, maxAttempts, window, time.Minute)
	return func(c *gin.Context) {
		if !l.allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many sign-in attempts, please try again later",
			})
			return
		}
		c.Next()
	}
}
