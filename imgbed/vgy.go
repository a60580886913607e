// Package imgbed - vgy.me 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// VgyPlatform vgy.me
type VgyPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *VgyPlatform) GetName() string {
	return "vgy"
}

// Upload 上传图片
func (p *VgyPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("VGY_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://vgy.me/upload", nil,
		[]field{{"userkey", key}},
		namedFileField("file[]", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Image string `json:"image"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	return resp.link(body.Image)
}
