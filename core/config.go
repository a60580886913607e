// Package core 为 images-upload-cli 提供核心配置、日志和HTTP客户端功能
// 此文件处理配置管理，包括从环境变量文件和CLI参数加载配置
package core

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// AppName 应用名称，同时用作配置目录名
const AppName = "images-upload-cli"

// Config 表示 images-upload-cli 的完整配置
type Config struct {
	Upload UploadConfig // 上传配置
	Output OutputConfig // 输出配置

	// EnvFile 实际加载的环境变量文件路径
	EnvFile string

	env map[string]string
}

// UploadConfig 包含上传行为设置
type UploadConfig struct {
	Hosting     string        // 图床名称
	Thumbnail   bool          // 是否生成带说明文字的缩略图
	Jobs        int           // 并发上传数，1 表示顺序上传
	Timeout     time.Duration // 单个HTTP请求超时
	RateLimit   float64       // 每个域名每秒最多请求数，0 表示不限制
	CaptionFont string        // 缩略图说明文字字体路径
	Cache       bool          // 是否启用上传缓存
	CacheFile   string        // 上传缓存文件路径
}

// OutputConfig 包含链接输出设置
type OutputConfig struct {
	Format    string // plain, bbcode, html, markdown
	Clipboard bool   // 复制到剪贴板
	Notify    bool   // 发送桌面通知
	Preview   string // HTML预览文件路径（可选）
}

// NewConfig 使用默认设置创建新配置
func NewConfig() *Config {
	return &Config{
		Upload: UploadConfig{
			Hosting:   "imgur",
			Jobs:      1,
			Timeout:   60 * time.Second,
			CacheFile: DefaultCachePath(),
		},
		Output: OutputConfig{
			Format:    "plain",
			Clipboard: true,
		},
		EnvFile: DefaultConfigPath(),
		env:     make(map[string]string),
	}
}

// NewConfigFromMap 使用给定的变量创建配置，不读取进程环境（用于测试）
func NewConfigFromMap(values map[string]string) *Config {
	config := NewConfig()
	for k, v := range values {
		config.env[k] = v
	}
	applyEnv(config)
	return config
}

// DefaultConfigPath 返回默认的环境变量文件路径
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, AppName, ".env")
}

// DefaultCachePath 返回上传缓存文件路径，与配置文件放在同一目录
func DefaultCachePath() string {
	return filepath.Join(filepath.Dir(DefaultConfigPath()), "upload-cache.json")
}

// LoadConfig 加载配置，优先级：环境变量 > 环境变量文件 > 默认值
// CLI参数由调用方在此之后覆盖
// envFile 为空时使用默认配置文件，默认文件不存在不视为错误
func LoadConfig(envFile string) (*Config, error) {
	config := NewConfig()

	explicit := envFile != ""
	if !explicit {
		envFile = config.EnvFile
	}
	config.EnvFile = envFile

	if _, err := os.Stat(envFile); err == nil {
		// godotenv.Load 不会覆盖已存在的环境变量
		if err := godotenv.Load(envFile); err != nil {
			return nil, errors.Wrapf(err, "加载环境变量文件 %s 失败", envFile)
		}
	} else if explicit {
		return nil, &InvalidParameterError{Param: "--env-file", Value: envFile}
	}

	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			config.env[k] = v
		}
	}
	applyEnv(config)

	return config, nil
}

// applyEnv 使用环境变量覆盖默认值
func applyEnv(config *Config) {
	if hosting := config.Get("UPLOAD_HOSTING"); hosting != "" {
		config.Upload.Hosting = hosting
	}
	if format := config.Get("UPLOAD_FORMAT"); format != "" {
		config.Output.Format = format
	}
	if timeout := config.Get("UPLOAD_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			config.Upload.Timeout = d
		}
	}
	if jobs := config.Get("UPLOAD_JOBS"); jobs != "" {
		if n, err := strconv.Atoi(jobs); err == nil && n > 0 {
			config.Upload.Jobs = n
		}
	}
	if rateLimit := config.Get("UPLOAD_RATE_LIMIT"); rateLimit != "" {
		if r, err := strconv.ParseFloat(rateLimit, 64); err == nil && r >= 0 {
			config.Upload.RateLimit = r
		}
	}
	if cache, err := strconv.ParseBool(config.Get("UPLOAD_CACHE")); err == nil {
		config.Upload.Cache = cache
	}
	if notify, err := strconv.ParseBool(config.Get("UPLOAD_NOTIFY")); err == nil {
		config.Output.Notify = notify
	}
	if cacheFile := config.Get("UPLOAD_CACHE_FILE"); cacheFile != "" {
		config.Upload.CacheFile = cacheFile
	}
	if font := config.Get("CAPTION_FONT"); font != "" {
		config.Upload.CaptionFont = font
	}
}

// Get 获取变量值，不存在时返回空字符串
func (c *Config) Get(name string) string {
	return c.env[name]
}

// GetOr 获取变量值，不存在或为空时返回默认值
func (c *Config) GetOr(name, fallback string) string {
	if v := c.env[name]; v != "" {
		return v
	}
	return fallback
}

// Require 获取必需的变量值
// 变量缺失时返回 ConfigError，指明变量名和配置文件路径
func (c *Config) Require(name string) (string, error) {
	if v := c.env[name]; v != "" {
		return v, nil
	}
	return "", &ConfigError{Variable: name, ConfigPath: c.EnvFile}
}
