// Package main - 上传命令实现
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/imgbed"
	"github.com/Wsine/images-upload-cli/output"
	"github.com/Wsine/images-upload-cli/thumbnail"
	"github.com/urfave/cli/v2"
	"golang.org/x/image/font"
)

// transport 上传使用的底层传输，nil 表示默认连接池（测试中替换）
var transport http.RoundTripper

// handleUploadCommand 处理上传（根命令）
func handleUploadCommand(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		cli.ShowAppHelp(ctx)
		return cli.Exit("\n错误: 请指定要上传的图片", 2)
	}

	level, err := core.ParseLogLevel(ctx.String("log-level"))
	if err != nil {
		return exitError(err)
	}
	logger, tracker := core.NewLogger(level, ctx.App.ErrWriter)
	slog.SetDefault(logger)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(err)
	}

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return exitError(err)
	}
	// 缩略图在 plain 格式下无法体现，改为 bbcode
	if cfg.Upload.Thumbnail && format == output.Plain {
		format = output.BBCode
	}

	platform, err := imgbed.Resolve(cfg.Upload.Hosting, cfg)
	if err != nil {
		return exitError(err)
	}

	images, err := checkImages(ctx.Args().Slice())
	if err != nil {
		return exitError(err)
	}

	client := core.NewHTTPClient(cfg.Upload.Timeout, transport, core.NewHostRateLimiter(cfg.Upload.RateLimit, 1))
	opts := []imgbed.Option{
		imgbed.WithJobs(cfg.Upload.Jobs),
		imgbed.WithLogger(logger),
		imgbed.WithFontLoader(func() (font.Face, error) {
			return thumbnail.LoadFont(cfg.Upload.CaptionFont)
		}),
	}
	if cfg.Upload.Cache {
		cache, err := imgbed.OpenCache(cfg.Upload.CacheFile)
		if err != nil {
			return exitError(err)
		}
		opts = append(opts, imgbed.WithCache(cache, cfg.Upload.Hosting))
	}

	logger.Debug("开始上传", "hosting", cfg.Upload.Hosting, "images", len(images), "jobs", cfg.Upload.Jobs)
	results, err := imgbed.NewUploader(platform, client, opts...).Run(ctx.Context, images, cfg.Upload.Thumbnail)
	if err != nil {
		return exitError(err)
	}

	links := output.Links(results, format)
	fmt.Fprintln(ctx.App.Writer, links)

	if cfg.Output.Clipboard && links != "" {
		if err := output.CopyToClipboard(links); err != nil {
			logger.Warn(err.Error())
		}
	}
	if cfg.Output.Notify {
		output.Notify(logger, links)
	}
	if cfg.Output.Preview != "" {
		if err := output.WritePreview(cfg.Output.Preview, results, cfg.Upload.Hosting); err != nil {
			logger.Error(err.Error())
		}
	}

	if tracker.HasErrors() {
		return cli.Exit("", 1)
	}
	return nil
}

// loadConfig 加载配置并用显式指定的命令行参数覆盖
// 优先级：命令行参数 > 环境变量 > 环境变量文件 > 默认值
func loadConfig(ctx *cli.Context) (*core.Config, error) {
	cfg, err := core.LoadConfig(ctx.String("env-file"))
	if err != nil {
		return nil, err
	}

	if ctx.IsSet("hosting") {
		cfg.Upload.Hosting = ctx.String("hosting")
	}
	if ctx.IsSet("format") {
		cfg.Output.Format = ctx.String("format")
	}
	if ctx.IsSet("jobs") {
		cfg.Upload.Jobs = ctx.Int("jobs")
	}
	if ctx.IsSet("timeout") {
		cfg.Upload.Timeout = ctx.Duration("timeout")
	}
	if ctx.IsSet("rate-limit") {
		cfg.Upload.RateLimit = ctx.Float64("rate-limit")
	}
	cfg.Upload.Thumbnail = ctx.Bool("thumbnail")
	// 环境变量开启的缓存和通知不会被命令行关闭
	cfg.Upload.Cache = cfg.Upload.Cache || ctx.Bool("cache")
	cfg.Output.Notify = cfg.Output.Notify || ctx.Bool("notify")
	if ctx.Bool("no-clipboard") {
		cfg.Output.Clipboard = false
	}
	if ctx.IsSet("preview") {
		cfg.Output.Preview = ctx.String("preview")
	}

	if cfg.Upload.Jobs < 1 {
		return nil, &core.InvalidParameterError{Param: "--jobs", Value: fmt.Sprint(cfg.Upload.Jobs)}
	}
	return cfg, nil
}

// checkImages 校验图片路径存在且不是目录
func checkImages(paths []string) ([]string, error) {
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil || info.IsDir() {
			return nil, &core.InvalidParameterError{Param: "IMAGES", Value: path}
		}
	}
	return paths, nil
}
