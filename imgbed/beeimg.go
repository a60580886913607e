// Package imgbed - beeimg.com 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/utils"
)

// BeeimgPlatform beeimg.com
type BeeimgPlatform struct{}

// GetName 获取平台名称
func (p *BeeimgPlatform) GetName() string {
	return "beeimg"
}

// Upload 上传图片，返回的链接不带协议头，需要补上 https:
func (p *BeeimgPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	ext := utils.ImageExt(buffer)
	file := namedFileField("file", buffer)
	file.contentType = "image/" + ext

	resp, err := postForm(ctx, client, "https://beeimg.com/api/upload/file/json/", nil, nil, file)
	if err != nil {
		return "", err
	}

	var body struct {
		Files struct {
			URL string `json:"url"`
		} `json:"files"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	if body.Files.URL == "" {
		return resp.link("")
	}
	return resp.link("https:" + body.Files.URL)
}
