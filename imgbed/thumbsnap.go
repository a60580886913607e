// Package imgbed - thumbsnap.com 图床实现
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// ThumbsnapPlatform thumbsnap.com
type ThumbsnapPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *ThumbsnapPlatform) GetName() string {
	return "thumbsnap"
}

// Upload 上传图片
func (p *ThumbsnapPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key, err := p.config.Require("THUMBSNAP_KEY")
	if err != nil {
		return "", err
	}

	resp, err := postForm(ctx, client, "https://thumbsnap.com/api/upload", nil,
		[]field{{"key", key}},
		fileField("media", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Data struct {
			Media string `json:"media"`
		} `json:"data"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	return resp.link(body.Data.Media)
}
