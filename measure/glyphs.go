package measure

import (
	"fmt"
	"strconv"
	"sync/atomic"
)

// Face 报告某一字体下任意文本的像素前进宽度。
type Face interface {
	TextWidth(s string) float64
}

// Surface 是测量表面：根据字体描述串（例如 "16px Inter"）获取可测量的字体面。
// 获取失败时返回错误，此时无法构建字形宽度表。
type Surface interface {
	Face(font string) (Face, error)
}

// GlyphTable 保存单个 (family, size) 组合下每个字符的像素宽度。
// 表只对构建时的字体有效，字体变化后需重新 Build。
type GlyphTable struct {
	family string
	size   float64
	widths map[rune]float64
}

// FontSpec 生成测量表面使用的字体描述串。
func FontSpec(family string, size float64) string {
	return strconv.FormatFloat(size, 'f', -1, 64) + "px " + family
}

// Build 逐个测量拉丁字母、数字、ASCII 符号与常用汉字的宽度。
func Build(s Surface, family string, size float64) (*GlyphTable, error) {
	if s == nil {
		return nil, fmt.Errorf("measure: 缺少测量表面")
	}
	font := FontSpec(family, size)
	face, err := s.Face(font)
	if err != nil {
		return nil, fmt.Errorf("measure: 获取测量表面失败 %q: %w", font, err)
	}
	t := &GlyphTable{
		family: family,
		size:   size,
		widths: make(map[rune]float64, len(latinChars)+len(asciiSymbols)+len(CommonCJK)/3),
	}
	for _, set := range []string{latinChars, asciiSymbols, cjkPunctuation, CommonCJK} {
		for _, r := range set {
			if _, ok := t.widths[r]; ok {
				continue
			}
			t.widths[r] = face.TextWidth(string(r))
		}
	}
	return t, nil
}

// Width 返回字符的测量宽度；未测量的字符返回 false，由调用方走兜底估算。
func (t *GlyphTable) Width(r rune) (float64, bool) {
	if t == nil {
		return 0, false
	}
	w, ok := t.widths[r]
	return w, ok
}

func (t *GlyphTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.widths)
}

func (t *GlyphTable) Family() string { return t.family }
func (t *GlyphTable) Size() float64  { return t.size }

// Cache 持有当前生效的字形宽度表。重建是一次完整替换，
// 读者要么看到旧表，要么看到新表。
type Cache struct {
	table atomic.Pointer[GlyphTable]
}

// Rebuild 用新字体重建宽度表；失败时保留旧表并返回错误。
func (c *Cache) Rebuild(s Surface, family string, size float64) error {
	t, err := Build(s, family, size)
	if err != nil {
		return err
	}
	c.table.Store(t)
	return nil
}

// Table 返回当前宽度表，首次构建前为 nil。
func (c *Cache) Table() *GlyphTable { return c.table.Load() }
