// Package imgbed - sm.ms 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// smmsRepeatedCode 图片已存在时 sm.ms 返回的 code，此时链接在 images 字段
const smmsRepeatedCode = "image_repeated"

// SmmsPlatform sm.ms
type SmmsPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *SmmsPlatform) GetName() string {
	return "smms"
}

// Upload 上传图片
func (p *SmmsPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("SMMS_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://sm.ms/api/v2/upload",
		headers{"Authorization": key}, nil,
		fileField("smfile", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Code   string `json:"code"`
		Images string `json:"images"`
		Data   struct {
			URL string `json:"url"`
		} `json:"data"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if body.Code == smmsRepeatedCode {
		return resp.link(body.Images)
	}
	return resp.link(body.Data.URL)
}
