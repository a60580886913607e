// Package imgbed - pixeldrain.com 图床实现
package imgbed

import (
	"context"
	"net/http"
)

// PixeldrainPlatform pixeldrain.com
type PixeldrainPlatform struct{}

// GetName 获取平台名称
func (p *PixeldrainPlatform) GetName() string {
	return "pixeldrain"
}

// Upload 上传图片，链接由返回的文件ID拼接
func (p *PixeldrainPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://pixeldrain.com/api/file", nil, nil,
		fileField("file", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		ID string `json:"id"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if body.ID == "" {
		return resp.link("")
	}
	return resp.link("https://pixeldrain.com/api/file/" + body.ID)
}
