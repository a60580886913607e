// Package imgbedtest 提供图床测试替身
// Host 是一个进程内的 http.RoundTripper，对任意地址按顺序返回预设响应并记录收到的请求，
// 因此图床实现在测试中可以保留真实的接口地址
package imgbedtest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/gin-gonic/gin"
)

// Response 预设响应
type Response struct {
	Status      int
	ContentType string
	Body        string
	Header      map[string]string // 附加响应头
}

// Text 200 文本响应
func Text(body string) Response {
	return Response{Status: http.StatusOK, ContentType: "text/plain; charset=utf-8", Body: body}
}

// JSON 200 JSON 响应
func JSON(body string) Response {
	return Response{Status: http.StatusOK, ContentType: "application/json", Body: body}
}

// Status 指定状态码的响应
func Status(code int, body string) Response {
	return Response{Status: code, ContentType: "text/plain; charset=utf-8", Body: body}
}

// File 请求中的文件字段
type File struct {
	Filename    string
	ContentType string
	Size        int64
}

// Request 收到的请求
type Request struct {
	Method string
	URL    string
	Header http.Header
	Fields map[string]string // multipart 普通字段
	Files  map[string]File   // multipart 文件字段
	Body   []byte            // 非 multipart 请求体
}

// Host 假图床
type Host struct {
	engine *gin.Engine

	mu        sync.Mutex
	responses []Response
	requests  []Request
}

// New 创建假图床，依次返回给定响应，用完后重复最后一个
func New(responses ...Response) *Host {
	gin.SetMode(gin.TestMode)

	h := &Host{responses: responses}
	h.engine = gin.New()
	h.engine.NoRoute(h.handle)
	return h
}

func (h *Host) handle(c *gin.Context) {
	rec := Request{
		Method: c.Request.Method,
		URL:    c.Request.URL.String(),
		Header: c.Request.Header.Clone(),
		Fields: make(map[string]string),
		Files:  make(map[string]File),
	}

	if strings.HasPrefix(c.ContentType(), "multipart/") {
		if form, err := c.MultipartForm(); err == nil {
			for name, values := range form.Value {
				if len(values) > 0 {
					rec.Fields[name] = values[0]
				}
			}
			for name, files := range form.File {
				if len(files) > 0 {
					rec.Files[name] = File{
						Filename:    files[0].Filename,
						ContentType: files[0].Header.Get("Content-Type"),
						Size:        files[0].Size,
					}
				}
			}
		}
	} else if c.Request.Body != nil {
		rec.Body, _ = io.ReadAll(c.Request.Body)
	}

	h.mu.Lock()
	h.requests = append(h.requests, rec)
	resp := Response{Status: http.StatusOK}
	if len(h.responses) > 0 {
		resp = h.responses[0]
		if len(h.responses) > 1 {
			h.responses = h.responses[1:]
		}
	}
	h.mu.Unlock()

	for k, v := range resp.Header {
		c.Header(k, v)
	}
	c.Data(resp.Status, resp.ContentType, []byte(resp.Body))
}

// RoundTrip 实现 http.RoundTripper
func (h *Host) RoundTrip(req *http.Request) (*http.Response, error) {
	rec := httptest.NewRecorder()
	h.engine.ServeHTTP(rec, req)

	resp := rec.Result()
	resp.Request = req
	return resp, nil
}

// Client 使用假图床作为传输层的HTTP客户端
func (h *Host) Client() *http.Client {
	return core.NewHTTPClient(5*time.Second, h, nil)
}

// Requests 返回收到的请求
func (h *Host) Requests() []Request {
	h.mu.Lock()
	defer h.mu.Unlock()

	return append([]Request(nil), h.requests...)
}

// Last 返回最后一个请求
func (h *Host) Last() Request {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.requests) == 0 {
		return Request{}
	}
	return h.requests[len(h.requests)-1]
}
