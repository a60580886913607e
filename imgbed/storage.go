// Package imgbed - 对象存储图床公共逻辑
package imgbed

import (
	"fmt"
	"path"
	"strings"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
)

// bucketConfig 对象存储配置，从 <前缀>_SECRET_ID 等环境变量读取
type bucketConfig struct {
	SecretID  string
	SecretKey string
	Bucket    string
	Region    string
	Host      string // 自定义域名（可选）
	PrefixKey string // 对象键路径前缀（可选）
}

// bucketEnv 对象存储必需的环境变量
func bucketEnv(prefix string, idName, keyName string) []string {
	return []string{
		prefix + "_" + idName,
		prefix + "_" + keyName,
		prefix + "_BUCKET",
		prefix + "_REGION",
	}
}

// loadBucketConfig 读取对象存储配置，缺少任一必需变量时返回 ConfigError
func loadBucketConfig(cfg *core.Config, prefix string, idName, keyName string) (*bucketConfig, error) {
	values := make([]string, 0, 4)
	for _, name := range bucketEnv(prefix, idName, keyName) {
		v, err := cfg.Require(name)
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return &bucketConfig{
		SecretID:  values[0],
		SecretKey: values[1],
		Bucket:    values[2],
		Region:    values[3],
		Host:      cfg.Get(prefix + "_HOST"),
		PrefixKey: cfg.Get(prefix + "_PREFIX"),
	}, nil
}

// objectKey 对象键：前缀/内容哈希前16位.扩展名，相同图片得到相同的键
func (c *bucketConfig) objectKey(buffer []byte) string {
	name := utils.ContentHash(buffer)[:16]
	if ext := utils.ImageExt(buffer); ext != "" {
		name += "." + ext
	}
	if c.PrefixKey != "" {
		return path.Join(c.PrefixKey, name)
	}
	return name
}

// objectURL 对象URL，配置了自定义域名时使用自定义域名，否则使用 defaultHost
func (c *bucketConfig) objectURL(defaultHost, objectKey string) string {
	host := defaultHost
	if c.Host != "" {
		host = strings.TrimPrefix(c.Host, "https://")
		host = strings.TrimPrefix(host, "http://")
		host = strings.TrimSuffix(host, "/")
	}
	return fmt.Sprintf("https://%s/%s", host, objectKey)
}
