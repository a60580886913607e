// Package imgbed - catbox.moe 图床实现
package imgbed

import (
	"context"
	"net/http"
	"strings"
)

// CatboxPlatform catbox.moe
type CatboxPlatform struct{}

// GetName 获取平台名称
func (p *CatboxPlatform) GetName() string {
	return "catbox"
}

// Upload 上传图片，响应体即为图片链接
func (p *CatboxPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	resp, err := postForm(ctx, client, "https://catbox.moe/user/api.php", nil,
		[]field{{"reqtype", "fileupload"}},
		fileField("fileToUpload", buffer))
	if err != nil {
		return "", err
	}

	link := strings.TrimSpace(resp.text())
	if !strings.HasPrefix(link, "http") {
		return resp.link("")
	}
	return resp.link(link)
}
