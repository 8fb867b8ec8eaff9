package measure

import (
	"math"
	"strings"
	"unicode"
)

// MaxHeadingLevel 是 Markdown 标题的最大级别。
const MaxHeadingLevel = 6

// HeadingLevel 返回行首 "#" 的个数（去掉前导空白后，且其后必须跟空白），不匹配时返回 0。
// 超过 6 的级别原样返回，由 ScaleFactor 视为普通行。
func HeadingLevel(line string) int {
	s := strings.TrimLeftFunc(line, unicode.IsSpace)
	n := 0
	for n < len(s) && s[n] == '#' {
		n++
	}
	if n == 0 || n >= len(s) {
		return 0
	}
	if s[n] != ' ' && s[n] != '\t' {
		return 0
	}
	return n
}

// ScaleFactor 按标题级别取缩放因子；级别越界或因子非法时返回 1.0。
func ScaleFactor(level int, factors []float64) float64 {
	if level < 1 || level > MaxHeadingLevel || level > len(factors) {
		return 1.0
	}
	f := factors[level-1]
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return 1.0
	}
	return f
}

// LineScale 是 ScaleFactor(HeadingLevel(line), factors) 的简写。
func LineScale(line string, factors []float64) float64 {
	return ScaleFactor(HeadingLevel(line), factors)
}

// EstimateLine 估算单行文本的像素宽度：逐字符查表，表外的中日韩字符按
// defaultCharWidth*cjkFactor 计，其余按 defaultCharWidth 计；求和后乘以 scale 再加 padding。
func EstimateLine(line string, scale float64, t *GlyphTable, defaultCharWidth, cjkFactor, padding float64) float64 {
	defaultCharWidth = nonNegative(defaultCharWidth)
	if cjkFactor < 1 || math.IsNaN(cjkFactor) {
		cjkFactor = 1
	}
	if scale <= 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		scale = 1
	}

	sum := 0.0
	for _, r := range line {
		if w, ok := t.Width(r); ok {
			sum += nonNegative(w)
			continue
		}
		if IsCJK(r) {
			sum += defaultCharWidth * cjkFactor
			continue
		}
		sum += defaultCharWidth
	}
	return sum*scale + nonNegative(padding)
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}
