// Package core - 控制台日志
package core

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fatih/color"
)

// LevelCritical 比 ERROR 更高的级别，用于屏蔽所有常规输出
const LevelCritical = slog.Level(12)

// LogLevels 命令行可选的日志级别
var LogLevels = []string{"DEBUG", "INFO", "WARNING", "ERROR", "CRITICAL"}

// ParseLogLevel 解析日志级别名称（不区分大小写）
func ParseLogLevel(name string) (slog.Level, error) {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return slog.LevelDebug, nil
	case "INFO", "":
		return slog.LevelInfo, nil
	case "WARNING", "WARN":
		return slog.LevelWarn, nil
	case "ERROR":
		return slog.LevelError, nil
	case "CRITICAL":
		return LevelCritical, nil
	}
	return slog.LevelInfo, &InvalidParameterError{Param: "--log-level", Value: name, Expected: LogLevels}
}

// ErrorTracker 记录运行期间是否出现过错误级别的日志
// 与可见级别无关，用于决定进程退出码
type ErrorTracker struct {
	count atomic.Int64
}

// Count 返回错误日志条数
func (t *ErrorTracker) Count() int64 {
	return t.count.Load()
}

// HasErrors 是否记录过错误
func (t *ErrorTracker) HasErrors() bool {
	return t.Count() > 0
}

// NewLogger 创建输出到 w 的控制台日志器
func NewLogger(level slog.Level, w io.Writer) (*slog.Logger, *ErrorTracker) {
	tracker := &ErrorTracker{}
	h := &consoleHandler{
		level:   level,
		out:     w,
		mu:      &sync.Mutex{},
		tracker: tracker,
	}
	return slog.New(h), tracker
}

// consoleHandler 简洁的单行控制台格式: [15:04:05] LEVEL message key=value
type consoleHandler struct {
	level   slog.Level
	out     io.Writer
	mu      *sync.Mutex
	tracker *ErrorTracker
	preset  string // WithAttrs 预先渲染好的字段
	group   string
}

var levelColors = map[slog.Level]*color.Color{
	slog.LevelDebug: color.New(color.FgHiBlack),
	slog.LevelInfo:  color.New(color.FgBlue),
	slog.LevelWarn:  color.New(color.FgYellow),
	slog.LevelError: color.New(color.FgRed, color.Bold),
	LevelCritical:   color.New(color.FgHiRed, color.Bold),
}

func levelName(l slog.Level) string {
	switch {
	case l >= LevelCritical:
		return "CRITICAL"
	case l >= slog.LevelError:
		return "ERROR"
	case l >= slog.LevelWarn:
		return "WARNING"
	case l >= slog.LevelInfo:
		return "INFO"
	}
	return "DEBUG"
}

func levelColor(l slog.Level) *color.Color {
	switch {
	case l >= LevelCritical:
		return levelColors[LevelCritical]
	case l >= slog.LevelError:
		return levelColors[slog.LevelError]
	case l >= slog.LevelWarn:
		return levelColors[slog.LevelWarn]
	case l >= slog.LevelInfo:
		return levelColors[slog.LevelInfo]
	}
	return levelColors[slog.LevelDebug]
}

// Enabled 错误级别总是启用，以便 ErrorTracker 计数
func (h *consoleHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level || l >= slog.LevelError
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		h.tracker.count.Add(1)
	}
	if r.Level < h.level {
		return nil
	}

	var b strings.Builder
	if !r.Time.IsZero() {
		b.WriteString(r.Time.Format("[15:04:05] "))
	}
	b.WriteString(levelColor(r.Level).Sprintf("%-8s", levelName(r.Level)))
	b.WriteString(" ")
	b.WriteString(r.Message)

	b.WriteString(h.preset)
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&b, h.group, a)
		return true
	})
	b.WriteString("\n")

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := io.WriteString(h.out, b.String())
	return err
}

func writeAttr(b *strings.Builder, group string, a slog.Attr) {
	if a.Equal(slog.Attr{}) {
		return
	}
	key := a.Key
	if group != "" {
		key = group + "." + key
	}
	val := a.Value.Resolve().String()
	if strings.ContainsAny(val, " \t\n") {
		val = fmt.Sprintf("%q", val)
	}
	fmt.Fprintf(b, " %s=%s", key, val)
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	var b strings.Builder
	for _, a := range attrs {
		writeAttr(&b, h.group, a)
	}
	clone := *h
	clone.preset = h.preset + b.String()
	return &clone
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	if h.group != "" {
		name = h.group + "." + name
	}
	clone.group = name
	return &clone
}
