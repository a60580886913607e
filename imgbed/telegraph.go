// Package imgbed - telegra.ph 图床实现
package imgbed

import (
	"context"
	"net/http"
)

// TelegraphPlatform telegra.ph
type TelegraphPlatform struct{}

// GetName 获取平台名称
func (p *TelegraphPlatform) GetName() string {
	return "telegraph"
}

// Upload 上传图片，返回的 src 为站内路径
func (p *TelegraphPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://telegra.ph/upload", nil, nil,
		fileField("file", buffer))
	if err != nil {
		return "", err
	}

	var body []struct {
		Src string `json:"src"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if len(body) == 0 || body[0].Src == "" {
		return resp.link("")
	}
	return resp.link("https://telegra.ph" + body[0].Src)
}
