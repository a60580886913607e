// Package main 为 images-upload-cli 工具提供命令行接口
// images-upload-cli 将本地图片上传到图床，并按指定格式输出链接
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/imgbed"
	"github.com/Wsine/images-upload-cli/output"
	"github.com/urfave/cli/v2"
)

// version 是应用程序版本，通常在构建时设置
var version = "v2.0.0"

func init() {
	// -h 留给 --hosting
	cli.HelpFlag = &cli.BoolFlag{
		Name:  "help",
		Usage: "显示帮助",
	}
}

// newApp 创建命令行应用
func newApp() *cli.App {
	return &cli.App{
		Name:    core.AppName,
		Version: strings.TrimSpace(version),
		Usage:   "上传图片到图床并输出链接",
		Description: "将一张或多张本地图片上传到指定图床，按所选格式输出链接，\n" +
			"并可复制到剪贴板、发送桌面通知或生成HTML预览。\n\n" +
			"选项需写在图片路径之前。\n\n" +
			"使用示例:\n" +
			"  images-upload-cli -h catbox pic.png\n" +
			"  images-upload-cli -h imgur -f markdown -t a.png b.jpg\n" +
			"  images-upload-cli -h s3 --cache --preview out.html *.png\n" +
			"  images-upload-cli hostings",
		ArgsUsage: "<图片路径>...",
		Flags: []cli.Flag{
			// === 上传选项 ===
			&cli.StringFlag{
				Name:    "hosting",
				Aliases: []string{"h"},
				Usage:   "图床名称: " + hostingList(),
				Value:   "imgur",
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "链接格式: " + strings.Join(output.Formats(), " / "),
				Value:   string(output.Plain),
			},
			&cli.BoolFlag{
				Name:    "thumbnail",
				Aliases: []string{"t"},
				Usage:   "同时上传带说明文字的缩略图（plain 格式会改为 bbcode）",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "并发上传数",
				Value:   1,
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Usage: "单个HTTP请求超时",
				Value: core.NewConfig().Upload.Timeout,
			},
			&cli.Float64Flag{
				Name:  "rate-limit",
				Usage: "每个域名每秒最多请求数，0 表示不限制",
			},
			&cli.BoolFlag{
				Name:  "cache",
				Usage: "使用上传缓存，相同图片不重复上传",
			},

			// === 输出选项 ===
			&cli.BoolFlag{
				Name:    "notify",
				Aliases: []string{"n"},
				Usage:   "发送桌面通知（需要 notify-send）",
			},
			&cli.BoolFlag{
				Name:    "no-clipboard",
				Aliases: []string{"C"},
				Usage:   "不复制到剪贴板",
			},
			&cli.StringFlag{
				Name:  "preview",
				Usage: "将结果写入 HTML 预览文件",
			},

			// === 配置与日志 ===
			&cli.StringFlag{
				Name:  "env-file",
				Usage: "环境变量文件路径（默认 " + core.DefaultConfigPath() + "）",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "日志级别: " + strings.Join(core.LogLevels, " / "),
				Value: "INFO",
			},
		},
		Action: handleUploadCommand,
		Commands: []*cli.Command{
			// 初始化配置文件
			{
				Name:    "init",
				Aliases: []string{"i"},
				Usage:   "创建环境变量配置文件",
				Description: "在配置目录创建 .env 示例文件，包含所有图床凭据的说明。\n\n" +
					"示例:\n" +
					"  images-upload-cli init\n" +
					"  images-upload-cli --env-file ./my.env init --force",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "强制覆盖已存在的配置文件",
					},
				},
				Action: handleInitCommand,
			},

			// 图床列表
			{
				Name:   "hostings",
				Usage:  "列出支持的图床及所需的环境变量",
				Action: handleHostingsCommand,
			},

			// 上传缓存
			{
				Name:  "cache",
				Usage: "查看或清空上传缓存",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "clear",
						Usage: "清空上传缓存",
					},
				},
				Action: handleCacheCommand,
			},
		},
	}
}

// main 是应用程序的入口点
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// exitError 将错误转换为退出码：参数错误为 2，其余为 1
func exitError(err error) error {
	if core.IsInvalidParameter(err) {
		return cli.Exit("❌ "+err.Error(), 2)
	}
	return cli.Exit("❌ "+err.Error(), 1)
}

// hostingList 图床名列表，用于帮助信息
func hostingList() string {
	return strings.Join(imgbed.Hostings(), ", ")
}
