// Package imgbed - ptpimg.me 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// PtpimgPlatform ptpimg.me
type PtpimgPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *PtpimgPlatform) GetName() string {
	return "ptpimg"
}

// Upload 上传图片，链接由返回的 code 和 ext 拼接
func (p *PtpimgPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("PTPIMG_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://ptpimg.me/upload.php", nil,
		[]field{{"api_key", key}},
		fileField("file-upload[0]", buffer))
	if err != nil {
		return "", err
	}

	var body []struct {
		Code string `json:"code"`
		Ext  string `json:"ext"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if len(body) == 0 || body[0].Code == "" || body[0].Ext == "" {
		return resp.link("")
	}
	return resp.link("https://ptpimg.me/" + body[0].Code + "." + body[0].Ext)
}
