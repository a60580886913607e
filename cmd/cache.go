// Package main - 上传缓存管理命令
package main

import (
	"fmt"

	"github.com/Wsine/images-upload-cli/imgbed"
	"github.com/urfave/cli/v2"
)

// handleCacheCommand 显示缓存条目数，或使用 --clear 清空
func handleCacheCommand(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return exitError(err)
	}

	cache, err := imgbed.OpenCache(cfg.Upload.CacheFile)
	if err != nil {
		return exitError(err)
	}

	if ctx.Bool("clear") {
		count := cache.Len()
		if err := cache.Clear(); err != nil {
			return exitError(err)
		}
		fmt.Fprintf(ctx.App.Writer, "🧹 已清空上传缓存（%d 条）: %s\n", count, cache.Path())
		return nil
	}

	fmt.Fprintf(ctx.App.Writer, "📦 上传缓存: %d 条\n", cache.Len())
	fmt.Fprintf(ctx.App.Writer, "📁 缓存文件: %s\n", cache.Path())
	return nil
}
