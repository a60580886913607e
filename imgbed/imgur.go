// Package imgbed - imgur.com 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// imgurDefaultClientID 未配置 IMGUR_CLIENT_ID 时使用的公共客户端ID
const imgurDefaultClientID = "dd32dd3c6aaa9a0"

// ImgurPlatform imgur.com，匿名上传
type ImgurPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *ImgurPlatform) GetName() string {
	return "imgur"
}

// Upload 上传图片
func (p *ImgurPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	clientID := p.config.GetOr("IMGUR_CLIENT_ID", imgurDefaultClientID)

	resp, err := postForm(ctx, client, "https://api.imgur.com/3/image",
		headers{"Authorization": "Client-ID " + clientID}, nil,
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
