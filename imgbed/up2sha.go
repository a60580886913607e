// Package imgbed - up2sha.re 图床实现
package imgbed

import (
	"context"
	"net/http"
	"strings"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
)

// Up2shaPlatform up2sha.re
type Up2shaPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *Up2shaPlatform) GetName() string {
	return "up2sha"
}

// Upload 上传图片，将分享页地址改写为原图地址
func (p *Up2shaPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("UP2SHA_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://api.up2sha.re/files",
		headers{"X-Api-Key": key}, nil,
		namedFileField("file", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		PublicURL string `json:"public_url"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if body.PublicURL == "" {
		return resp.link("")
	}
	link := strings.Replace(body.PublicURL, "file?f=", "media/raw/", 1)
	return resp.link(link + "." + utils.ImageExt(buffer))
}
