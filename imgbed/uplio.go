// Package imgbed - upl.io 图床实现
package imgbed

import (
	"context"
	"net/http"
	"strings"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
)

// UplioPlatform upl.io
type UplioPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *UplioPlatform) GetName() string {
	return "uplio"
}

// Upload 上传图片，响应体为 host/uid，直链为 host/i/uid.ext
func (p *UplioPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("UPLIO_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://upl.io", nil,
		[]field{{"key", key}},
		namedFileField("file", buffer))
	if err != nil {
		return "", err
	}

	text := strings.TrimSpace(resp.text())
	idx := strings.LastIndex(text, "/")
	if !strings.HasPrefix(text, "http") || idx <= 0 || idx == len(text)-1 {
		return resp.link("")
	}
	host, uid := text[:idx], text[idx+1:]
	return resp.link(host + "/i/" + uid + "." + utils.ImageExt(buffer))
}
