// Package imgbed - fastpic.org 图床实现
package imgbed

import (
	"context"
	"net/http"
	"regexp"
)

// fastpicPattern 响应为 XML，从 imagepath 标签中提取链接
var fastpicPattern = regexp.MustCompile(`<imagepath>(.+?)</imagepath>`)

// FastpicPlatform fastpic.org
type FastpicPlatform struct{}

// GetName 获取平台名称
func (p *FastpicPlatform) GetName() string {
	return "fastpic"
}

// Upload 上传图片
func (p *FastpicPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://fastpic.org/upload?api=1", nil,
		[]field{
			{"method", "file"},
			{"check_thumb", "no"},
			{"uploading", "1"},
		},
		fileField("file1", buffer))
	if err != nil {
		return "", err
	}
	return resp.search(fastpicPattern)
}
