package output

import (
	"log/slog"
	"os/exec"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/atotto/clipboard"
	"github.com/pkg/errors"
)

// CopyToClipboard 将文本复制到系统剪贴板
func CopyToClipboard(text string) error {
	if clipboard.Unsupported {
		return errors.New("当前系统不支持剪贴板（缺少 xclip/xsel/wl-copy）")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, "复制到剪贴板失败")
	}
	return nil
}

// notifySend 通知命令名，测试中可替换
var notifySend = "notify-send"

// Notify 通过 notify-send 发送桌面通知，找不到命令时跳过
// 返回是否发送了通知
func Notify(logger *slog.Logger, text string) bool {
	bin, err := exec.LookPath(notifySend)
	if err != nil {
		logger.Debug("未找到 notify-send，跳过桌面通知")
		return false
	}

	cmd := exec.Command(bin, "-a", core.AppName, text)
	if err := cmd.Start(); err != nil {
		logger.Warn("发送桌面通知失败", "error", err.Error())
		return false
	}
	// 不等待通知进程结束
	go cmd.Wait()
	return true
}
