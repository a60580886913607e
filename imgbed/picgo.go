// Package imgbed - PicGo 命令行封装
// 通过调用本机安装的 picgo 命令上传，图床由 picgo 自身的配置决定
package imgbed

import (
	"context"
	"net/http"
	"os"
	"os/exec"
	"regexp"
	"strings"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/utils"
	"github.com/pkg/errors"
)

// picgoURLPattern 用于从 picgo 输出中提取 URL
var picgoURLPattern = regexp.MustCompile(`https?://[^\s"'<>]+`)

// PicgoPlatform 调用 picgo CLI 上传
type PicgoPlatform struct {
	config *core.Config
}

// GetName 获取平台名称
func (p *PicgoPlatform) GetName() string {
	return "picgo"
}

// Upload 将图片写入临时文件后执行 picgo u
// 找不到 picgo 命令时返回 ConfigError（PICGO_PATH），不会执行上传
func (p *PicgoPlatform) Upload(ctx context.Context, _ *http.Client, buffer []byte) (string, error) {
	bin, err := exec.LookPath(p.config.GetOr("PICGO_PATH", "picgo"))
	if err != nil {
		return "", &core.ConfigError{Variable: "PICGO_PATH", ConfigPath: p.config.EnvFile}
	}

	tmp, err := os.CreateTemp("", "images-upload-*-"+utils.ImageName(buffer))
	if err != nil {
		return "", errors.Wrap(err, "创建临时文件失败")
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(buffer); err != nil {
		tmp.Close()
		return "", errors.Wrap(err, "写入临时文件失败")
	}
	if err := tmp.Close(); err != nil {
		return "", errors.Wrap(err, "写入临时文件失败")
	}

	// 不使用静默模式，以便获取完整输出
	output, err := exec.CommandContext(ctx, bin, "u", tmp.Name()).CombinedOutput()
	outputStr := strings.TrimSpace(string(output))
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return "", errors.Wrapf(err, "picgo 上传失败，输出: %s", outputStr)
	}

	link := extractLastURL(outputStr)
	if link == "" {
		return "", &LinkNotFoundError{URL: bin, Body: output}
	}
	return link, nil
}

// extractLastURL 从输出中提取最后一个 URL（通常是最终结果）
func extractLastURL(output string) string {
	matches := picgoURLPattern.FindAllString(output, -1)
	if len(matches) == 0 {
		return ""
	}
	return matches[len(matches)-1]
}
