// Package main - 初始化配置文件功能
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/imgbed"
	"github.com/urfave/cli/v2"
)

// envHeader 环境变量配置文件模板头部
const envHeader = `# ====================================
# images-upload-cli - 环境变量配置
# ====================================
# 进程环境变量优先于本文件中的同名变量

# ----------------------------------
# 上传默认值（可选，命令行参数优先）
# ----------------------------------
# 默认图床
# UPLOAD_HOSTING=imgur

# 默认链接格式: plain / bbcode / html / markdown
# UPLOAD_FORMAT=plain

# 单个HTTP请求超时
# UPLOAD_TIMEOUT=60s

# 并发上传数
# UPLOAD_JOBS=1

# 每个域名每秒最多请求数，0 表示不限制
# UPLOAD_RATE_LIMIT=0

# 默认启用上传缓存（等同 --cache）
# UPLOAD_CACHE=false

# 上传缓存文件
# UPLOAD_CACHE_FILE=

# 默认发送桌面通知（等同 --notify）
# UPLOAD_NOTIFY=false

# 缩略图说明文字字体（字体文件路径或字体名）
# CAPTION_FONT=

# imgur 客户端ID（不填使用公共ID）
# IMGUR_CLIENT_ID=

# picgo 命令路径（picgo 图床）
# PICGO_PATH=picgo
`

// envStorageNotes 对象存储的可选配置说明
const envStorageNotes = `
# ----------------------------------
# 对象存储可选配置
# ----------------------------------
# 自定义域名，例如 cdn.example.com
# OSS_HOST=
# COS_HOST=

# 对象键路径前缀，例如 images/
# OSS_PREFIX=
# COS_PREFIX=
# S3_PREFIX=

# 自定义 OSS 接入点
# OSS_ENDPOINT=

# S3 兼容服务地址（MinIO、R2 等）
# S3_ENDPOINT=

# 公开访问地址，不填时使用上传返回的地址
# S3_PUBLIC_URL=
`

// envTemplate 生成环境变量配置文件内容，列出每个图床需要的凭据
func envTemplate() string {
	var b strings.Builder
	b.WriteString(envHeader)
	b.WriteString("\n# ----------------------------------\n")
	b.WriteString("# 图床凭据（按需填写）\n")
	b.WriteString("# ----------------------------------\n")
	for _, name := range imgbed.Hostings() {
		env := imgbed.RequiredEnv(name)
		if len(env) == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n# %s\n", name)
		for _, v := range env {
			fmt.Fprintf(&b, "# %s=\n", v)
		}
	}
	b.WriteString(envStorageNotes)
	return b.String()
}

// handleInitCommand 处理 init 命令
func handleInitCommand(ctx *cli.Context) error {
	force := ctx.Bool("force")
	filename := ctx.String("env-file")
	if filename == "" {
		filename = core.DefaultConfigPath()
	}

	// 检查文件是否已存在
	if !force {
		if _, err := os.Stat(filename); err == nil {
			return cli.Exit(fmt.Sprintf("❌ 文件 %s 已存在\n"+
				"使用 --force 参数强制覆盖，或手动删除后重试", filename), 1)
		}
	}

	// 写入配置文件
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return cli.Exit(fmt.Sprintf("❌ 创建配置目录失败: %v", err), 1)
	}
	if err := os.WriteFile(filename, []byte(envTemplate()), 0o600); err != nil {
		return cli.Exit(fmt.Sprintf("❌ 创建配置文件失败: %v", err), 1)
	}

	// 成功提示
	w := ctx.App.Writer
	fmt.Fprintln(w, "✅ 配置文件已创建: "+filename)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "📝 后续步骤:")
	fmt.Fprintln(w, "  1. 编辑配置文件，填写要使用的图床凭据")
	fmt.Fprintln(w, "  2. 开始使用: images-upload-cli -h <图床> <图片>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "💡 提示:")
	fmt.Fprintln(w, "  - 运行 images-upload-cli hostings 查看每个图床需要的变量")
	fmt.Fprintln(w, "  - catbox、imgur 等图床无需凭据即可使用")

	return nil
}
