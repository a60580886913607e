// Package imgbed - 图片上传核心逻辑
package imgbed

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"sync"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/thumbnail"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/sync/errgroup"
)

// Thumbnailer 根据原图生成缩略图
type Thumbnailer func(img []byte, face font.Face) ([]byte, error)

// FontLoader 加载缩略图说明文字字体
type FontLoader func() (font.Face, error)

// Uploader 批量图片上传器
type Uploader struct {
	platform Platform
	client   *http.Client
	logger   *slog.Logger
	jobs     int

	makeThumb Thumbnailer
	loadFont  FontLoader

	cache        *Cache
	cacheHosting string

	// 字体每批最多加载一次；字体对象不是并发安全的，缩略图串行生成
	fontOnce sync.Once
	face     font.Face
	fontErr  error
	renderMu sync.Mutex
}

// Option 上传器选项
type Option func(*Uploader)

// WithThumbnailer 设置缩略图生成函数
func WithThumbnailer(fn Thumbnailer) Option {
	return func(u *Uploader) { u.makeThumb = fn }
}

// WithFontLoader 设置字体加载函数
func WithFontLoader(fn FontLoader) Option {
	return func(u *Uploader) { u.loadFont = fn }
}

// WithJobs 设置并发上传数，小于等于1时顺序上传
func WithJobs(n int) Option {
	return func(u *Uploader) { u.jobs = n }
}

// WithCache 启用上传缓存，hosting 作为缓存键的命名空间
func WithCache(cache *Cache, hosting string) Option {
	return func(u *Uploader) {
		u.cache = cache
		u.cacheHosting = hosting
	}
}

// WithLogger 设置日志记录器
func WithLogger(logger *slog.Logger) Option {
	return func(u *Uploader) { u.logger = logger }
}

// NewUploader 创建图片上传器
// client 为本次运行共享的HTTP客户端，Run 返回时释放其空闲连接
func NewUploader(platform Platform, client *http.Client, opts ...Option) *Uploader {
	u := &Uploader{
		platform: platform,
		client:   client,
		logger:   slog.Default(),
		jobs:     1,
		makeThumb: func(img []byte, face font.Face) ([]byte, error) {
			return thumbnail.Make(img, face, thumbnail.DefaultSize)
		},
		loadFont: func() (font.Face, error) {
			return thumbnail.LoadFont("")
		},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run 按输入顺序上传图片，返回成功图片的链接
//
// 单张图片的上传失败（StatusError、LinkNotFoundError、网络错误）会被记录并跳过；
// 要求缩略图时，缩略图生成或上传失败会丢弃整张图片。
// 读取文件失败、缺少配置（ConfigError）和上下文取消会中止整批并返回错误。
func (u *Uploader) Run(ctx context.Context, paths []string, withThumb bool) ([]UploadResult, error) {
	defer u.client.CloseIdleConnections()
	if u.cache != nil {
		defer u.saveCache()
	}

	slots := make([]*UploadResult, len(paths))

	if u.jobs <= 1 {
		for i, path := range paths {
			result, err := u.process(ctx, path, withThumb)
			if err != nil {
				return nil, err
			}
			slots[i] = result
		}
		return compact(slots), nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.jobs)
	for i, path := range paths {
		g.Go(func() error {
			result, err := u.process(gctx, path, withThumb)
			if err != nil {
				return err
			}
			slots[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return compact(slots), nil
}

// compact 去掉被丢弃的图片，保持输入顺序
func compact(slots []*UploadResult) []UploadResult {
	results := make([]UploadResult, 0, len(slots))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results
}

// process 处理单张图片，返回 (nil, nil) 表示该图片被丢弃
func (u *Uploader) process(ctx context.Context, path string, withThumb bool) (*UploadResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "读取图片 %s 失败", path)
	}

	link, err := u.upload(ctx, img)
	if err != nil {
		return nil, u.triage(ctx, path, err)
	}
	if !withThumb {
		return &UploadResult{ImageURL: link}, nil
	}

	face, err := u.captionFont()
	if err != nil {
		return nil, err
	}
	thumb, err := u.renderThumbnail(img, face)
	if err != nil {
		u.logger.Error("生成缩略图失败", "path", path, "error", err.Error())
		return nil, nil
	}

	thumbLink, err := u.upload(ctx, thumb)
	if err != nil {
		return nil, u.triage(ctx, path, err)
	}
	return &UploadResult{ImageURL: link, ThumbURL: thumbLink}, nil
}

// triage 区分单张图片失败和整批失败
// 单张失败记录日志后返回 nil；整批失败原样返回
func (u *Uploader) triage(ctx context.Context, path string, err error) error {
	if core.IsConfigError(err) {
		return err
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	LogUploadError(u.logger, u.platform.GetName(), err)
	u.logger.Debug("已跳过", "path", path)
	return nil
}

// upload 上传一张图片，启用缓存时先查缓存
func (u *Uploader) upload(ctx context.Context, img []byte) (string, error) {
	if u.cache != nil {
		if link, ok := u.cache.Get(u.cacheHosting, img); ok {
			u.logger.Debug("命中上传缓存", "hosting", u.cacheHosting, "url", link)
			return link, nil
		}
	}

	link, err := u.platform.Upload(ctx, u.client, img)
	if err != nil {
		return "", err
	}
	if link == "" {
		return "", &LinkNotFoundError{Hosting: u.platform.GetName()}
	}
	u.logger.Debug("上传成功", "hosting", u.platform.GetName(), "url", link)

	if u.cache != nil {
		u.cache.Put(u.cacheHosting, img, link)
	}
	return link, nil
}

// captionFont 首次需要缩略图时加载字体，之后复用
// 字体加载失败视为整批失败
func (u *Uploader) captionFont() (font.Face, error) {
	u.fontOnce.Do(func() {
		u.face, u.fontErr = u.loadFont()
		if u.fontErr != nil {
			u.fontErr = errors.Wrap(u.fontErr, "加载缩略图字体失败")
		}
	})
	return u.face, u.fontErr
}

// renderThumbnail 生成缩略图
func (u *Uploader) renderThumbnail(img []byte, face font.Face) ([]byte, error) {
	u.renderMu.Lock()
	defer u.renderMu.Unlock()

	return u.makeThumb(img, face)
}

// saveCache 持久化上传缓存，失败仅记录警告
func (u *Uploader) saveCache() {
	if err := u.cache.Save(); err != nil {
		u.logger.Warn("保存上传缓存失败", "error", err.Error())
	}
}
