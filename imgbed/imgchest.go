// Package imgbed - imgchest.com 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// ImgchestPlatform imgchest.com，每次上传创建一个只含一张图片的帖子
type ImgchestPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *ImgchestPlatform) GetName() string {
	return "imgchest"
}

// Upload 上传图片
func (p *ImgchestPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("IMGCHEST_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://api.imgchest.com/v1/post",
		headers{"Authorization": "Bearer " + key}, nil,
		namedFileField("images[]", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Data struct {
			Images []struct {
				Link string `json:"link"`
			} `json:"images"`
		} `json:"data"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if len(body.Data.Images) == 0 {
		return resp.link("")
	}
	return resp.link(body.Data.Images[0].Link)
}
