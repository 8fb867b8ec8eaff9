package autosize

import (
	"unicode/utf8"

	"github.com/ByLCY/cardfit/measure"
)

// ComputeSize 根据正文计算节点的目标尺寸。
// 高度取渲染高度加上下留白；宽度按 TrueWidth 取各行估算的最大值或只看首行。
// 估算宽度超过 MaxWidth 时保留当前宽度，不截断到上限。
func ComputeSize(doc Document, current Rect, cfg Config, table *measure.GlyphTable) Size {
	size := Size{
		Width:  current.Width,
		Height: doc.ContentHeight() + VerticalPadding,
	}
	if !cfg.WidthAutoResize {
		return size
	}

	lines := doc.Lines()
	if len(lines) == 0 {
		lines = []string{""}
	}
	charWidth := doc.DefaultCharWidth()

	var width float64
	if cfg.TrueWidth {
		for _, line := range lines {
			scale := measure.LineScale(line, cfg.HeadingScaleFactors)
			w := measure.EstimateLine(line, scale, table, charWidth, cfg.CJKWidthFactor, cfg.Padding)
			if w > width {
				width = w
			}
		}
	} else {
		first := lines[0]
		scale := measure.LineScale(first, cfg.HeadingScaleFactors)
		width = float64(utf8.RuneCountInString(first))*charWidth*scale + cfg.Padding
	}

	if width <= cfg.MaxWidth {
		size.Width = width
	}
	return size
}
