package canvassurface

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/cardfit/autosize"
	"github.com/ByLCY/cardfit/fonts"
	"github.com/ByLCY/cardfit/measure"
)

// Surface 基于 github.com/tdewolff/canvas 的测量表面。
type Surface struct {
	baseDir string

	fontMu         sync.Mutex
	fontFamilies   map[string]*fontFamilyEntry
	fallbackFamily *canvas.FontFamily
}

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

var _ autosize.Surface = (*Surface)(nil)

// NewSurface 创建测量表面，相对字体路径以 baseDir 为根解析。
func NewSurface(baseDir string) *Surface {
	return &Surface{
		baseDir:      baseDir,
		fontFamilies: map[string]*fontFamilyEntry{},
	}
}

// Font 是解析后的字体描述。
type Font struct {
	Family string
	Size   float64 // px
	Style  canvas.FontStyle
}

// ParseFont 解析 "[style] <size>px <family>" 形式的字体描述串，例如 "bold 16px Go Mono"。
// 字号也可以写成 pt。
func ParseFont(spec string) (Font, error) {
	fields := strings.Fields(spec)
	for i, f := range fields {
		lower := strings.ToLower(f)
		var num string
		var scale float64
		switch {
		case strings.HasSuffix(lower, "px"):
			num, scale = strings.TrimSuffix(lower, "px"), 1
		case strings.HasSuffix(lower, "pt"):
			num, scale = strings.TrimSuffix(lower, "pt"), PtToPx
		default:
			continue
		}
		size, err := strconv.ParseFloat(num, 64)
		if err != nil || size <= 0 {
			continue
		}
		family := strings.Trim(strings.Join(fields[i+1:], " "), `"'`)
		if family == "" {
			return Font{}, fmt.Errorf("字体描述缺少字体族: %q", spec)
		}
		return Font{
			Family: family,
			Size:   size * scale,
			Style:  parseFontStyle(strings.Join(fields[:i], " ")),
		}, nil
	}
	return Font{}, fmt.Errorf("字体描述缺少字号: %q", spec)
}

// Face implements measure.Surface.
func (s *Surface) Face(spec string) (measure.Face, error) {
	return s.FontFace(spec)
}

// FontFace 与 Face 相同，但返回具体类型，便于读取行高。
func (s *Surface) FontFace(spec string) (*Face, error) {
	font, err := ParseFont(spec)
	if err != nil {
		return nil, err
	}
	family, style, err := s.ensureFontFamily(font)
	if err != nil {
		return nil, err
	}
	return &Face{face: family.Face(font.Size*PxToPt, canvas.Black, style, canvas.FontNormal)}, nil
}

// Face 以像素报告文本宽度与行高。
type Face struct {
	face *canvas.FontFace
}

func (f *Face) TextWidth(s string) float64 { return toPx(f.face.TextWidth(s)) }

// LineHeight 返回字体自身的行高（像素）。
func (f *Face) LineHeight() float64 { return toPx(f.face.Metrics().LineHeight) }

func (s *Surface) ensureFontFamily(font Font) (*canvas.FontFamily, canvas.FontStyle, error) {
	key := fmt.Sprintf("%s|%d", strings.ToLower(font.Family), font.Style)
	s.fontMu.Lock()
	defer s.fontMu.Unlock()

	if entry, ok := s.fontFamilies[key]; ok {
		return entry.family, entry.style, nil
	}
	family := canvas.NewFontFamily(font.Family)
	if err := s.loadFontIntoFamily(family, font); err != nil {
		fallback, fbErr := s.fallback()
		if fbErr != nil {
			return nil, canvas.FontRegular, err
		}
		s.fontFamilies[key] = &fontFamilyEntry{family: fallback, style: canvas.FontRegular}
		return fallback, canvas.FontRegular, nil
	}
	s.fontFamilies[key] = &fontFamilyEntry{family: family, style: font.Style}
	return family, font.Style, nil
}

func (s *Surface) loadFontIntoFamily(family *canvas.FontFamily, font Font) error {
	name := font.Family
	if fonts.Has(name) {
		data, err := fonts.Load(name)
		if err != nil {
			return err
		}
		return family.LoadFont(data, 0, font.Style)
	}
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc", ".woff", ".woff2":
		path := name
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("读取字体 %s 失败: %w", name, err)
		}
		return family.LoadFont(data, 0, font.Style)
	}
	return family.LoadSystemFont(name, font.Style)
}

func (s *Surface) fallback() (*canvas.FontFamily, error) {
	if s.fallbackFamily != nil {
		return s.fallbackFamily, nil
	}
	data, err := fonts.Load(fonts.Default)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily("cardfit-fallback")
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, err
	}
	s.fallbackFamily = family
	return family, nil
}

func parseFontStyle(style string) canvas.FontStyle {
	if style == "" {
		return canvas.FontRegular
	}
	s := strings.ToLower(style)
	result := canvas.FontRegular
	switch {
	case strings.Contains(s, "black"):
		result = canvas.FontBlack
	case strings.Contains(s, "extrabold"):
		result = canvas.FontExtraBold
	case strings.Contains(s, "semibold"), strings.Contains(s, "demibold"):
		result = canvas.FontSemiBold
	case strings.Contains(s, "bold"):
		result = canvas.FontBold
	case strings.Contains(s, "medium"):
		result = canvas.FontMedium
	case strings.Contains(s, "light"):
		result = canvas.FontLight
	}
	if strings.Contains(s, "italic") || strings.Contains(s, "oblique") {
		result |= canvas.FontItalic
	}
	return result
}

// CanvasFace 返回底层的 canvas 字体面，供绘制使用。
func (f *Face) CanvasFace() *canvas.FontFace { return f.face }
