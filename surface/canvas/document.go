package canvassurface

import (
	"math"
	"strings"
	"unicode"

	"github.com/ByLCY/cardfit/autosize"
)

// Document 是按给定宽度排版后的卡片正文，实现 autosize.Document。
type Document struct {
	text       string
	face       *Face
	width      float64 // 折行宽度（px），<=0 表示不折行
	lineHeight float64 // px
}

var _ autosize.Document = (*Document)(nil)

// NewDocument 用 font 描述的字体排版 text。lineHeight 为行高倍数，<=0 时使用字体自身行高。
func (s *Surface) NewDocument(text, font string, wrapWidth, lineHeight float64) (*Document, error) {
	face, err := s.FontFace(font)
	if err != nil {
		return nil, err
	}
	f, err := ParseFont(font)
	if err != nil {
		return nil, err
	}
	lh := face.LineHeight()
	if lineHeight > 0 {
		lh = f.Size * lineHeight
	}
	return &Document{text: text, face: face, width: wrapWidth, lineHeight: lh}, nil
}

func (d *Document) Lines() []string {
	return strings.Split(normalizeNewlines(d.text), "\n")
}

func normalizeNewlines(s string) string { return strings.ReplaceAll(s, "\r\n", "\n") }

// ContentHeight 为折行后的行数乘以行高。
func (d *Document) ContentHeight() float64 {
	return float64(len(d.WrapLines())) * d.lineHeight
}

// DefaultCharWidth 取 "x" 的宽度作为基准字宽。
func (d *Document) DefaultCharWidth() float64 { return d.face.TextWidth("x") }

// WrapLines 返回折行结果：优先在空白处断行，单词超宽时在词内拆分，显式换行总是保留。
func (d *Document) WrapLines() []string {
	return greedyWrap(d.text, d.width, d.face)
}

func greedyWrap(content string, width float64, face *Face) []string {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	var lines []string
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, "")
			}
			return
		}
		lines = append(lines, builder.String())
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokenizeContent(content) {
		if token == "\n" {
			emit(true)
			continue
		}

		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			continue
		}
		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
		}
	}

	emit(true)
	return lines
}

// tokenizeContent 把正文切成交替出现的空白串与非空白串，换行单独成为 "\n"。
// 换行符的处理与 Lines 一致。
func tokenizeContent(s string) []string {
	s = normalizeNewlines(s)
	var tokens []string
	start, inSpace := 0, false
	for i, r := range s {
		if r == '\n' {
			if start < i {
				tokens = append(tokens, s[start:i])
			}
			tokens = append(tokens, "\n")
			start = i + 1
			continue
		}
		space := unicode.IsSpace(r)
		if i > start && space != inSpace {
			tokens = append(tokens, s[start:i])
			start = i
		}
		inSpace = space
	}
	if start < len(s) {
		tokens = append(tokens, s[start:])
	}
	return tokens
}

func splitTokenByWidth(token string, limit float64, face *Face) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var current []rune
	for _, r := range token {
		current = append(current, r)
		if len(current) > 1 && face.TextWidth(string(current)) > limit {
			parts = append(parts, string(current[:len(current)-1]))
			current = current[len(current)-1:]
		}
	}
	if len(current) > 0 {
		parts = append(parts, string(current))
	}
	return parts
}
