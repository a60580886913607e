// Package imgbed - 上传失败的错误类型与日志
package imgbed

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pkg/errors"
)

// StatusError 图床返回了非 2xx 状态码
type StatusError struct {
	URL        string // 请求地址
	StatusCode int    // 状态码
	Status     string // 状态行，例如 "500 Internal Server Error"
	Body       []byte // 响应内容
}

// Class 状态码类别描述
func (e *StatusError) Class() string {
	switch e.StatusCode / 100 {
	case 1:
		return "信息响应"
	case 3:
		return "重定向响应"
	case 4:
		return "客户端错误"
	case 5:
		return "服务器错误"
	}
	return "无效状态码"
}

func (e *StatusError) Error() string {
	status := e.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("%s '%s'，请求地址 '%s'", e.Class(), status, e.URL)
}

// LinkNotFoundError 响应成功但无法从中解析出图片链接
type LinkNotFoundError struct {
	URL     string // 请求地址（可为空）
	Hosting string // 图床名，URL 为空时用于提示
	Body    []byte // 响应内容
	Cause   error  // 解析错误（可为空）
}

func (e *LinkNotFoundError) Error() string {
	var msg string
	if e.URL != "" {
		msg = fmt.Sprintf("未能在 '%s' 的响应中找到图片链接", e.URL)
	} else {
		msg = fmt.Sprintf("图床 '%s' 未返回图片链接", e.Hosting)
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *LinkNotFoundError) Unwrap() error {
	return e.Cause
}

// IsUploadFailure 判断是否为单张图片级别的上传失败（可跳过继续下一张）
func IsUploadFailure(err error) bool {
	var statusErr *StatusError
	var linkErr *LinkNotFoundError
	return errors.As(err, &statusErr) || errors.As(err, &linkErr)
}

// LogUploadError 记录上传失败
// 错误级别输出状态码类别、状态行和请求地址，调试级别输出响应内容
func LogUploadError(logger *slog.Logger, hosting string, err error) {
	var statusErr *StatusError
	var linkErr *LinkNotFoundError

	switch {
	case errors.As(err, &statusErr):
		logger.Error(statusErr.Error(), "hosting", hosting)
		logger.Debug("响应内容:\n\n" + string(statusErr.Body))
	case errors.As(err, &linkErr):
		logger.Error(linkErr.Error(), "hosting", hosting)
		logger.Debug("响应内容:\n\n" + string(linkErr.Body))
	default:
		logger.Error("上传失败", "hosting", hosting, "error", err.Error())
	}
}
