// Package imgbed - gyazo.com 图床实现
package imgbed

import (
	"context"
	"net/http"
	"net/url"

	"github.com/Wsine/images-upload-cli/core"
)

// GyazoPlatform gyazo.com
type GyazoPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *GyazoPlatform) GetName() string {
	return "gyazo"
}

// Upload 上传图片，令牌通过查询参数传递
func (p *GyazoPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	token, err := p.config.Require("GYAZO_TOKEN")
	if err != nil {
		return "", err
	}

	endpoint := "https://upload.gyazo.com/api/upload?access_token=" + url.QueryEscape(token)
	resp, err := postForm(ctx, client, endpoint, nil, nil, fileField("imagedata", buffer))
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
