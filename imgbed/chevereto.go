// Package imgbed - Chevereto 系图床实现（anh.moe、freeimage.host、lensdump.com）
package imgbed

import (
	"context"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
)

// anhmoePublicKey anh.moe 公开的API密钥
const anhmoePublicKey = "anh.moe_public_api"

// CheveretoPlatform 基于 Chevereto 的图床，接口为 /api/1/upload
type CheveretoPlatform struct {
	name     string
	endpoint string
	keyEnv   string // 密钥环境变量名，为空时使用 fixedKey
	fixedKey string
	config   *core.Config
}

// NewAnhmoePlatform 创建 anh.moe 平台实例
func NewAnhmoePlatform(cfg *core.Config) *CheveretoPlatform {
	return &CheveretoPlatform{
		name:     "anhmoe",
		endpoint: "https://anh.moe/api/1/upload",
		fixedKey: anhmoePublicKey,
		config:   cfg,
	}
}

// NewFreeimagePlatform 创建 freeimage.host 平台实例
func NewFreeimagePlatform(cfg *core.Config) *CheveretoPlatform {
	return &CheveretoPlatform{
		name:     "freeimage",
		endpoint: "https://freeimage.host/api/1/upload",
		keyEnv:   "FREEIMAGE_KEY",
		config:   cfg,
	}
}

// NewLensdumpPlatform 创建 lensdump.com 平台实例
func NewLensdumpPlatform(cfg *core.Config) *CheveretoPlatform {
	return &CheveretoPlatform{
		name:     "lensdump",
		endpoint: "https://lensdump.com/api/1/upload",
		keyEnv:   "LENSDUMP_KEY",
		config:   cfg,
	}
}

// GetName 获取平台名称
func (p *CheveretoPlatform) GetName() string {
	return p.name
}

// Upload 上传图片
func (p *CheveretoPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	key := p.fixedKey
	if p.keyEnv != "" {
		var err error
		if key, err = p.config.Require(p.keyEnv); err != nil {
			return "", err
		}
	}

	resp, err := postForm(ctx, client, p.endpoint, nil,
		[]field{{"key", key}},
		fileField("source", buffer))
	if err != nil {
		return "", err
	}

	var body struct {
		Image struct {
			URL string `json:"url"`
		} `json:"image"`
	}
	if err := resp.decodeJSON(&body); err != nil {
		return "", err
	}
	return resp.link(body.Image.URL)
}
