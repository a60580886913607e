// Package imgbed - 阿里云OSS图床实现
package imgbed

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
	"github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/pkg/errors"
)

// ossEnv 阿里云OSS必需的环境变量
var ossEnv = bucketEnv("OSS", "SECRET_ID", "SECRET_KEY")

// OSSPlatform 阿里云OSS平台
type OSSPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *OSSPlatform) GetName() string {
	return "oss"
}

// Upload 上传图片到OSS
// 配置在上传时才读取，未配置的变量以 ConfigError 报告
func (p *OSSPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	cfg, err := loadBucketConfig(p.config, "OSS", "SECRET_ID", "SECRET_KEY")
	if err != nil {
		return "", err
	}

	endpoint := p.config.GetOr("OSS_ENDPOINT", fmt.Sprintf("https://oss-%s.aliyuncs.com", cfg.Region))
	ossClient, err := oss.New(endpoint, cfg.SecretID, cfg.SecretKey, oss.HTTPClient(client))
	if err != nil {
		return "", errors.Wrap(err, "创建OSS客户端失败")
	}
	bucket, err := ossClient.Bucket(cfg.Bucket)
	if err != nil {
		return "", errors.Wrap(err, "获取Bucket失败")
	}

	objectKey := cfg.objectKey(buffer)
	options := []oss.Option{oss.WithContext(ctx)}
	if ext := utils.ImageExt(buffer); ext != "" {
		options = append(options, oss.ContentType("image/"+ext))
	}
	if err := bucket.PutObject(objectKey, bytes.NewReader(buffer), options...); err != nil {
		return "", errors.Wrapf(err, "上传 %s 到OSS失败", objectKey)
	}

	return cfg.objectURL(fmt.Sprintf("%s.oss-%s.aliyuncs.com", cfg.Bucket, cfg.Region), objectKey), nil
}
