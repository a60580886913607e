package imgbed

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestStatusErrorClass(t *testing.T) {
	cases := map[int]string{
		101: "信息响应",
		301: "重定向响应",
		404: "客户端错误",
		502: "服务器错误",
		700: "无效状态码",
	}
	for code, want := range cases {
		assert.Equal(t, want, (&StatusError{StatusCode: code}).Class(), code)
	}
}

func TestStatusErrorMessage(t *testing.T) {
	err := &StatusError{URL: "https://api.imgur.com/3/image", StatusCode: 429, Status: "429 Too Many Requests"}
	assert.Equal(t, "客户端错误 '429 Too Many Requests'，请求地址 'https://api.imgur.com/3/image'", err.Error())

	err = &StatusError{URL: "https://x.example", StatusCode: 500}
	assert.Contains(t, err.Error(), "'500 Internal Server Error'")
}

func TestLinkNotFoundErrorMessage(t *testing.T) {
	err := &LinkNotFoundError{URL: "https://imagebin.ca/upload.php"}
	assert.Equal(t, "未能在 'https://imagebin.ca/upload.php' 的响应中找到图片链接", err.Error())

	err = &LinkNotFoundError{Hosting: "imgur"}
	assert.Equal(t, "图床 'imgur' 未返回图片链接", err.Error())
}

func TestIsUploadFailure(t *testing.T) {
	assert.True(t, IsUploadFailure(errors.Wrap(&StatusError{StatusCode: 500}, "ctx")))
	assert.True(t, IsUploadFailure(&LinkNotFoundError{URL: "u"}))
	assert.False(t, IsUploadFailure(&core.ConfigError{Variable: "X"}))
	assert.False(t, IsUploadFailure(errors.New("dial tcp: timeout")))
}

func TestLogUploadError(t *testing.T) {
	var buf bytes.Buffer
	logger, tracker := core.NewLogger(slog.LevelDebug, &buf)

	LogUploadError(logger, "imgur", &StatusError{
		URL:        "https://api.imgur.com/3/image",
		StatusCode: 500,
		Status:     "500 Internal Server Error",
		Body:       []byte("upstream down"),
	})

	out := buf.String()
	assert.Contains(t, out, "服务器错误 '500 Internal Server Error'")
	assert.Contains(t, out, "hosting=imgur")
	assert.Contains(t, out, "DEBUG")
	assert.Contains(t, out, "upstream down")
	assert.Equal(t, int64(1), tracker.Count())
}

func TestLogUploadErrorHidesBodyAtInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, _ := core.NewLogger(slog.LevelInfo, &buf)

	LogUploadError(logger, "catbox", &LinkNotFoundError{URL: "https://catbox.moe/user/api.php", Body: []byte("secret body")})

	assert.Contains(t, buf.String(), "未能在 'https://catbox.moe/user/api.php' 的响应中找到图片链接")
	assert.NotContains(t, buf.String(), "secret body")
}
