// Package imgbed - imagebin.ca 图床实现
package imgbed

import (
	"context"
	"net/http"
	"regexp"
)

// imagebinPattern 响应为 key:value 文本，取 url 一行
var imagebinPattern = regexp.MustCompile(`(?m)url:(.+?)\s*$`)

// ImagebinPlatform imagebin.ca
type ImagebinPlatform struct{}

// GetName 获取平台名称
func (p *ImagebinPlatform) GetName() string {
	return "imagebin"
}

// Upload 上传图片
func (p *ImagebinPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://imagebin.ca/upload.php", nil, nil,
		fileField("file", buffer))
	if err != nil {
		return "", err
	}
	return resp.search(imagebinPattern)
}
