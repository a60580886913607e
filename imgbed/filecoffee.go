// Package imgbed - file.coffee 图床实现
package imgbed

import (
	"context"
	"net/http"
)

// FilecoffeePlatform file.coffee
type FilecoffeePlatform struct{}

// GetName 获取平台名称
func (p *FilecoffeePlatform) GetName() string {
	return "filecoffee"
}

// Upload 上传图片
func (p *FilecoffeePlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://file.coffee/api/file/upload", nil, nil,
		fileField("file", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		URL string `json:"url"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	return resp.link(body.URL)
}
