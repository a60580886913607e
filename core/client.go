package core

import (
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// UserAgent 默认请求头 User-Agent
const UserAgent = AppName + "/2.0"

// NewHTTPClient 创建一次运行内所有图床共享的HTTP客户端
// transport 为 nil 时使用默认连接池；limiter 为 nil 时不限流
func NewHTTPClient(timeout time.Duration, transport http.RoundTripper, limiter *HostRateLimiter) *http.Client {
	if transport == nil {
		transport = http.DefaultTransport.(*http.Transport).Clone()
	}
	return &http.Client{
		Timeout: timeout,
		Transport: &limitedTransport{
			base:    transport,
			limiter: limiter,
		},
	}
}

// limitedTransport 在每次请求前等待限流许可，并补充默认 User-Agent
type limitedTransport struct {
	base    http.RoundTripper
	limiter *HostRateLimiter
}

func (t *limitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, errors.New("nil request")
	}
	if err := t.limiter.Wait(req.Context(), req.URL.Host); err != nil {
		return nil, errors.Wrap(err, "限流等待失败")
	}
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", UserAgent)
	}
	return t.base.RoundTrip(req)
}

// CloseIdleConnections 释放底层连接池
func (t *limitedTransport) CloseIdleConnections() {
	type closeIdler interface {
		CloseIdleConnections()
	}
	if c, ok := t.base.(closeIdler); ok {
		c.CloseIdleConnections()
	}
}
