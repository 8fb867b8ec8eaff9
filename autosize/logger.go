package autosize

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler 丢弃所有日志，Enabled 返回 false 使调用方跳过格式化。
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger 设置 autosize 使用的日志器，默认不输出。传入 nil 恢复静默。
//
// 使用的级别：
//   - Debug：每次推挤、每次跳过
//   - Info：字形宽度表重建
//   - Warn：保存失败等不影响继续运行的问题
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

func logger() *slog.Logger { return loggerPtr.Load() }
