package core

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// HostRateLimiter 按域名限流的请求限流器
// 每个图床域名单独维护一个令牌桶，互不影响
type HostRateLimiter struct {
	perSecond float64
	burst     int

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewHostRateLimiter 创建按域名限流器
// perSecond <= 0 时返回 nil，表示不限流
func NewHostRateLimiter(perSecond float64, burst int) *HostRateLimiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &HostRateLimiter{
		perSecond: perSecond,
		burst:     burst,
		limiters:  make(map[string]*rate.Limiter),
	}
}

func (l *HostRateLimiter) limiter(host string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	lim, ok := l.limiters[host]
	if !ok {
		lim = rate.NewLimiter(rate.Limit(l.perSecond), l.burst)
		l.limiters[host] = lim
	}
	return lim
}

// Wait 等待直到可以向 host 发起请求
func (l *HostRateLimiter) Wait(ctx context.Context, host string) error {
	if l == nil {
		return nil
	}
	return l.limiter(host).Wait(ctx)
}

// Allow 检查是否可以立即向 host 发起请求（不等待）
func (l *HostRateLimiter) Allow(host string) bool {
	if l == nil {
		return true
	}
	return l.limiter(host).Allow()
}
