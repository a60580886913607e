// Package imgbed - uploadcare.com 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
)

// UploadcarePlatform uploadcare.com
type UploadcarePlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *UploadcarePlatform) GetName() string {
	return "uploadcare"
}

// Upload 上传图片，CDN 链接由文件UUID和上传时的文件名拼接
func (p *UploadcarePlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("UPLOADCARE_KEY")
	if err != nil {
		return "", err
	}

	name := utils.ImageName(buffer)
	resp, err := postForm(ctx, client, "https://upload.uploadcare.com/base/", nil,
		[]field{
			{"UPLOADCARE_PUB_KEY", key},
			{"UPLOADCARE_STORE", "1"},
		},
		namedFileField("filename", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Filename string `json:"filename"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if body.Filename == "" {
		return resp.link("")
	}
	return resp.link("https://ucarecdn.com/" + body.Filename + "/" + name)
}
