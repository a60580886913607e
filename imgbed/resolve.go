// Package imgbed - 展示页直链解析
package imgbed

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// directLinkPattern 构造直链匹配规则
// 直链形如 scheme://<任意子域>host/images/<展示页路径去掉 /show/ 前缀>
func directLinkPattern(showURL string) (*regexp.Regexp, error) {
	u, err := url.Parse(showURL)
	if err != nil {
		return nil, err
	}
	tail := u.Host + "/images/" + strings.TrimPrefix(u.Path, "/show/")
	return regexp.Compile(regexp.QuoteMeta(u.Scheme+"://") + `[^"'\s<>]*?` + regexp.QuoteMeta(tail))
}

// resolveDirectLink 请求展示页并解析图片直链
// 任何失败（请求失败、非 2xx、未匹配）都退回展示页地址，不视为错误
// 日志写入 slog 默认日志器，命令行入口会将其设为当前运行的日志器
func resolveDirectLink(ctx context.Context, client *http.Client, showURL string) string {
	logger := slog.Default()

	pattern, err := directLinkPattern(showURL)
	if err != nil {
		logger.Debug("展示页地址无法解析", "url", showURL, "error", err.Error())
		return showURL
	}

	resp, err := get(ctx, client, showURL)
	if err != nil {
		logger.Debug("获取展示页失败，使用展示页地址", "url", showURL, "error", err.Error())
		return showURL
	}

	if link := findDirectLink(resp.Body, pattern); link != "" {
		return link
	}
	logger.Debug("展示页中未找到直链，使用展示页地址", "url", showURL)
	return showURL
}

// findDirectLink 先按 HTML 解析 img/a 属性查找，再退回全文正则
func findDirectLink(body []byte, pattern *regexp.Regexp) string {
	if doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body)); err == nil {
		var link string
		doc.Find("img[src], a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			for _, attr := range []string{"src", "href"} {
				if v, ok := s.Attr(attr); ok {
					if m := pattern.FindString(v); m != "" && m == strings.TrimSpace(v) {
						link = m
						return false
					}
				}
			}
			return true
		})
		if link != "" {
			return link
		}
	}
	return strings.TrimSpace(pattern.FindString(string(body)))
}
