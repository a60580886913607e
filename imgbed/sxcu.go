// Package imgbed - sxcu.net 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/utils"
)

// sxcuUserAgent sxcu.net 会拒绝未知客户端，使用其认可的UA
const sxcuUserAgent = "python-https/1.0.0"

// SxcuPlatform sxcu.net
type SxcuPlatform struct{}

// GetName 获取平台名称
func (p *SxcuPlatform) GetName() string {
	return "sxcu"
}

// Upload 上传图片，返回的链接需补上图片扩展名
func (p *SxcuPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://sxcu.net/api/files/create",
		headers{"User-Agent": sxcuUserAgent}, nil,
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
	if body.URL == "" {
		return resp.link("")
	}
	return resp.link(body.URL + "." + utils.ImageExt(buffer))
}
