// Package imgbed - pixhost.to 图床实现
package imgbed

import (
	"context"
	"net/http"
)

// PixhostPlatform pixhost.to
// 上传接口只返回展示页地址，需要再请求一次展示页解析出直链
type PixhostPlatform struct{}

// GetName 获取平台名称
func (p *PixhostPlatform) GetName() string {
	return "pixhost"
}

// Upload 上传图片
func (p *PixhostPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://api.pixhost.to/images", nil,
		[]field{{"content_type", "0"}},
		fileField("img", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		ShowURL string `json:"show_url"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	showURL, err := resp.link(body.ShowURL)
	if err != nil {
		return "", err
	}

	return resolveDirectLink(ctx, client, showURL), nil
}
