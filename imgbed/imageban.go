// Package imgbed - imageban.ru 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// ImagebanPlatform imageban.ru
type ImagebanPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *ImagebanPlatform) GetName() string {
	return "imageban"
}

// Upload 上传图片
func (p *ImagebanPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	token, err := p.config.Require("IMAGEBAN_TOKEN")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://api.imageban.ru/v1",
		headers{"Authorization": "TOKEN " + token}, nil,
		fileField("image", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Data struct {
			Link string `json:"link"`
		} `json:"data"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	return resp.link(body.Data.Link)
}
