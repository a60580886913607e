// Package imgbed - AWS S3（及兼容服务）图床实现
package imgbed

import (
	"bytes"
	"context"
	"net/http"
	"strings"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
)

// s3Env S3必需的环境变量
var s3Env = bucketEnv("S3", "ACCESS_KEY", "SECRET_KEY")

// S3Platform AWS S3 平台，配置 S3_ENDPOINT 后可用于 MinIO、R2 等兼容服务
type S3Platform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *S3Platform) GetName() string {
	return "s3"
}

// Upload 上传图片到S3
// 配置了 S3_PUBLIC_URL 时链接为 S3_PUBLIC_URL/对象键，否则使用上传返回的 Location
func (p *S3Platform) Upload(ctx context.Context, client *http.Client, buffer []byte) (string, error) {
	cfg, err := loadBucketConfig(p.config, "S3", "ACCESS_KEY", "SECRET_KEY")
	if err != nil {
		return "", err
	}

	// 显式构造客户端，不读取 ~/.aws 配置和 AWS_* 环境变量
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.SecretID, cfg.SecretKey, ""),
		HTTPClient:  client,
	}
	if endpoint := p.config.Get("S3_ENDPOINT"); endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	uploader := manager.NewUploader(s3.New(opts))

	objectKey := cfg.objectKey(buffer)
	input := &s3.PutObjectInput{
		Bucket: aws.String(cfg.Bucket),
		Key:    aws.String(objectKey),
		Body:   bytes.NewReader(buffer),
	}
	if ext := utils.ImageExt(buffer); ext != "" {
		input.ContentType = aws.String("image/" + ext)
	}
	result, err := uploader.Upload(ctx, input)
	if err != nil {
		return "", errors.Wrapf(err, "上传 %s 到S3失败", objectKey)
	}

	if publicURL := p.config.Get("S3_PUBLIC_URL"); publicURL != "" {
		return strings.TrimSuffix(publicURL, "/") + "/" + objectKey, nil
	}
	if result.Location == "" {
		return "", &LinkNotFoundError{Hosting: "s3"}
	}
	return result.Location, nil
}
