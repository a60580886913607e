package output

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/88250/lute"
	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/imgbed"
	"github.com/pkg/errors"
)

const previewTemplate = `<!DOCTYPE html>
<html lang="zh-CN">
<head>
<meta charset="utf-8">
<title>%s</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; }
img { max-width: 100%%; }
</style>
</head>
<body>
%s
</body>
</html>
`

// PreviewMarkdown 预览页的 markdown 源，每张图片一行
func PreviewMarkdown(results []imgbed.UploadResult, hosting string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", hosting)
	for _, r := range results {
		b.WriteString(Links([]imgbed.UploadResult{r}, Markdown))
		b.WriteString("\n\n")
	}

	engine := lute.New(func(l *lute.Lute) {
		l.RenderOptions.AutoSpace = true
	})
	return engine.FormatStr("md", b.String())
}

// PreviewHTML 将上传结果渲染为 HTML 页面
func PreviewHTML(results []imgbed.UploadResult, hosting string) string {
	engine := lute.New()
	body := engine.Md2HTML(PreviewMarkdown(results, hosting))
	return fmt.Sprintf(previewTemplate, html.EscapeString(core.AppName+" - "+hosting), body)
}

// WritePreview 写入 HTML 预览文件
func WritePreview(path string, results []imgbed.UploadResult, hosting string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "创建目录 %s 失败", dir)
		}
	}
	if err := os.WriteFile(path, []byte(PreviewHTML(results, hosting)), 0o644); err != nil {
		return errors.Wrapf(err, "写入预览文件 %s 失败", path)
	}
	return nil
}
