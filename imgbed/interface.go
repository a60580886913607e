// Package imgbed 提供图床上传功能
// 支持多种公共图床（imgur、catbox、fastpic 等）以及对象存储（阿里云OSS、腾讯云COS、AWS S3）
package imgbed

import (
	"context"
	"net/http"
)

// Platform 图床平台接口
type Platform interface {
	// GetName 获取平台名称（即命令行中的图床名）
	GetName() string

	// Upload 上传图片到图床
	// client: 本次运行共享的HTTP客户端
	// buffer: 图片二进制数据（不做大小/格式校验，由图床自行拒绝）
	// 成功返回可直接用作 <img> 地址的绝对URL；失败返回错误，不会同时返回空URL和nil错误
	Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error)
}

// UploadResult 单张图片的上传结果
type UploadResult struct {
	ImageURL string // 原图URL
	ThumbURL string // 缩略图URL，未生成缩略图时为空
}

// HasThumb 是否带有缩略图链接
func (r UploadResult) HasThumb() bool {
	return r.ThumbURL != ""
}
