// Package output 负责链接格式化以及输出（终端、剪贴板、桌面通知、HTML预览）
package output

import (
	"fmt"
	"strings"

	"github.com/Wsine/images-upload-cli/core"
	"github.com/Wsine/images-upload-cli/imgbed"
)

// Format 链接输出格式
type Format string

const (
	Plain    Format = "plain"
	BBCode   Format = "bbcode"
	HTML     Format = "html"
	Markdown Format = "markdown"
)

// formatter 单个链接的格式化模板，分别对应无缩略图和带缩略图的情况
type formatter struct {
	image func(url string) string
	thumb func(url, thumb string) string
}

var formatters = map[Format]formatter{
	Plain: {
		image: func(url string) string { return url },
		thumb: func(url, _ string) string { return url },
	},
	BBCode: {
		image: func(url string) string { return fmt.Sprintf("[img]%s[/img]", url) },
		thumb: func(url, thumb string) string { return fmt.Sprintf("[url=%s][img]%s[/img][/url]", url, thumb) },
	},
	HTML: {
		image: func(url string) string { return fmt.Sprintf(`<img src="%s" alt="image">`, url) },
		thumb: func(url, thumb string) string {
			return fmt.Sprintf(`<a href="%s"><img src="%s" alt="thumb"></a>`, url, thumb)
		},
	},
	Markdown: {
		image: func(url string) string { return fmt.Sprintf("![image](%s)", url) },
		thumb: func(url, thumb string) string { return fmt.Sprintf("[![thumb](%s)](%s)", thumb, url) },
	},
}

// Formats 所有支持的格式名
func Formats() []string {
	return []string{string(Plain), string(BBCode), string(HTML), string(Markdown)}
}

// ParseFormat 解析格式名，未知格式返回 InvalidParameterError
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	if _, ok := formatters[f]; !ok {
		return "", &core.InvalidParameterError{Param: "--format", Value: name, Expected: Formats()}
	}
	return f, nil
}

// Links 按格式生成链接文本，多个链接以空格分隔
// 未知格式返回空字符串
func Links(results []imgbed.UploadResult, f Format) string {
	fm, ok := formatters[f]
	if !ok {
		return ""
	}

	parts := make([]string, 0, len(results))
	for _, r := range results {
		if r.HasThumb() {
			parts = append(parts, fm.thumb(r.ImageURL, r.ThumbURL))
		} else {
			parts = append(parts, fm.image(r.ImageURL))
		}
	}
	return strings.Join(parts, " ")
}
