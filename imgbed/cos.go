// Package imgbed - 腾讯云COS图床实现
package imgbed

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
	"github.com/pkg/errors"
	"github.com/tencentyun/cos-go-sdk-v5"
)

// cosEnv 腾讯云COS必需的环境变量
var cosEnv = bucketEnv("COS", "SECRET_ID", "SECRET_KEY")

// COSPlatform 腾讯云COS平台
type COSPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *COSPlatform) GetName() string {
	return "cos"
}

// Upload 上传图片到COS
func (p *COSPlatform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	cfg, err := loadBucketConfig(p.config, "COS", "SECRET_ID", "SECRET_KEY")
	if err != nil {
		return "", err
	}

	// 构建Bucket URL
	bucketHost := fmt.Sprintf("%s.cos.%s.myqcloud.com", cfg.Bucket, cfg.Region)
	u, err := url.Parse("https://" + bucketHost)
	if err != nil {
		return "", errors.Wrap(err, "解析Bucket URL失败")
	}

	// 签名包装在共享客户端的传输层之上，沿用其超时和限流
	cosClient := cos.NewClient(&cos.BaseURL{BucketURL: u}, &http.Client{
		Timeout: client.Timeout,
		Transport: &cos.AuthorizationTransport{
			SecretID:  cfg.SecretID,
			SecretKey: cfg.SecretKey,
			Transport: client.Transport,
		},
	})

	objectKey := cfg.objectKey(buffer)
	var opt *cos.ObjectPutOptions
	if ext := utils.ImageExt(buffer); ext != "" {
		opt = &cos.ObjectPutOptions{
			ObjectPutHeaderOptions: &cos.ObjectPutHeaderOptions{ContentType: "image/" + ext},
		}
	}
	if _, err := cosClient.Object.Put(ctx, objectKey, bytes.NewReader(buffer), opt); err != nil {
		return "", wrapStorageError(err, "上传 %s 到COS失败", objectKey)
	}

	return cfg.objectURL(bucketHost, objectKey), nil
}

// wrapStorageError 将 SDK 返回的HTTP错误转换为 StatusError，其余错误附加说明
func wrapStorageError(err error, format string, args ...any) error {
	var cosErr *cos.ErrorResponse
	if errors.As(err, &cosErr) && cosErr.Response != nil {
		statusErr := &StatusError{
			StatusCode: cosErr.Response.StatusCode,
			Status:     cosErr.Response.Status,
			Body:       []byte(cosErr.Message),
		}
		if cosErr.Response.Request != nil {
			statusErr.URL = cosErr.Response.Request.URL.String()
		}
		return statusErr
	}
	return errors.Wrapf(err, format, args...)
}
