// Package imgbed - tixte.com 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// TixtePlatform tixte.com
type TixtePlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *TixtePlatform) GetName() string {
	return "tixte"
}

// Upload 上传图片，使用随机文件名
func (p *TixtePlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("TIXTE_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://api.tixte.com/v1/upload",
		headers{"Authorization": key},
		[]field{{"payload_json", `{"random":true}`}},
		namedFileField("file", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Data struct {
			DirectURL string `json:"direct_url"`
		} `json:"data"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	return resp.link(body.Data.DirectURL)
}
