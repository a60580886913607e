// Package imgbed - imgbb.com 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// ImgbbPlatform imgbb.com
type ImgbbPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *ImgbbPlatform) GetName() string {
	return "imgbb"
}

// Upload 上传图片
func (p *ImgbbPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("IMGBB_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://api.imgbb.com/1/upload", nil,
		[]field{{"key", key}},
		fileField("image", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	return resp.link(body.Data.URL)
}
