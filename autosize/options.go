package autosize

import (
	"math"
	"time"
)

// 固定的几何常量（像素）。
const (
	VerticalPadding = 18.0 // 内容高度之外的上下留白
	TrailingMargin  = 20.0 // 应用尺寸时追加的尾部余量
)

// SaveDelay 是保存请求的静默窗口，窗口内的多次请求只落盘一次。
const SaveDelay = 200 * time.Millisecond

// Config 对应用户可编辑的自适应尺寸配置，单次调整过程中视为只读。
type Config struct {
	MaxWidth            float64   `json:"maxWidth"`
	WidthAutoResize     bool      `json:"widthAutoResize"`
	TrueWidth           bool      `json:"trueWidth"`
	HeadingScaleFactors []float64 `json:"headingScaleFactors"` // 依次对应 h1..h6
	Padding             float64   `json:"padding"`
	CJKWidthFactor      float64   `json:"cjkWidthFactor"`
}

// DefaultConfig 返回默认配置。
func DefaultConfig() Config {
	return Config{
		MaxWidth:            400,
		WidthAutoResize:     true,
		TrueWidth:           true,
		HeadingScaleFactors: []float64{2.0, 1.8, 1.6, 1.4, 1.2, 1.0},
		Padding:             80,
		CJKWidthFactor:      1.8,
	}
}

// Normalize 修正越界的数值，缺失的标题因子补 1.0。
func (c Config) Normalize() Config {
	def := DefaultConfig()
	if !(c.MaxWidth > 0) || math.IsInf(c.MaxWidth, 0) {
		c.MaxWidth = def.MaxWidth
	}
	if !(c.Padding >= 0) || math.IsInf(c.Padding, 0) {
		c.Padding = 0
	}
	if !(c.CJKWidthFactor >= 1) || math.IsInf(c.CJKWidthFactor, 0) {
		c.CJKWidthFactor = 1
	}
	factors := make([]float64, 6)
	for i := range factors {
		factors[i] = 1.0
		if i < len(c.HeadingScaleFactors) {
			if f := c.HeadingScaleFactors[i]; f > 0 && !math.IsInf(f, 0) {
				factors[i] = f
			}
		}
	}
	c.HeadingScaleFactors = factors
	return c
}

// Options 配置 Coordinator 的协作方。
type Options struct {
	// Surface 用于构建字形宽度表；为空时 Rebuild 返回错误，估算退化为默认字宽。
	Surface   Surface
	SaveDelay time.Duration // <=0 时使用 SaveDelay
	// Report 在经由 Attach 注册的回调处理完每个事件后被调用，可为空。
	Report func(Result)
}
