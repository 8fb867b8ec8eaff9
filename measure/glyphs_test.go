package measure

import (
	"errors"
	"testing"
	"unicode/utf8"
)

// fixedSurface 按字符类别返回固定宽度，用于替代真实字体。
type fixedSurface struct {
	fail  bool
	calls int
}

type fixedFace struct{}

func (fixedFace) TextWidth(s string) float64 {
	w := 0.0
	for _, r := range s {
		switch {
		case IsCJK(r):
			w += 16
		case r == ' ':
			w += 4
		default:
			w += 7
		}
	}
	return w
}

func (s *fixedSurface) Face(font string) (Face, error) {
	s.calls++
	if s.fail {
		return nil, errors.New("no drawing context")
	}
	return fixedFace{}, nil
}

func TestBuildMeasuresCharset(t *testing.T) {
	table, err := Build(&fixedSurface{}, "Inter", 16)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	for _, r := range "Az09#~ 中的，" {
		if _, ok := table.Width(r); !ok {
			t.Fatalf("字符 %q 未被测量", r)
		}
	}
	if w, _ := table.Width('中'); w != 16 {
		t.Fatalf("期望 中 宽度 16，实际 %g", w)
	}
	if _, ok := table.Width('é'); ok {
		t.Fatalf("é 不应在表内")
	}
	if n := utf8.RuneCountInString(CommonCJK); n < 600 {
		t.Fatalf("常用汉字集合过小: %d", n)
	}
	if table.Family() != "Inter" || table.Size() != 16 {
		t.Fatalf("表的字体信息错误: %s %g", table.Family(), table.Size())
	}
}

// TestBuildIdempotent 同样的字体输入构建两次，所有宽度一致。
func TestBuildIdempotent(t *testing.T) {
	s := &fixedSurface{}
	a, err := Build(s, "Inter", 16)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	b, err := Build(s, "Inter", 16)
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if a.Len() != b.Len() {
		t.Fatalf("表大小不同: %d vs %d", a.Len(), b.Len())
	}
	for r, w := range a.widths {
		if got, _ := b.Width(r); got != w {
			t.Fatalf("字符 %q 宽度不一致: %g vs %g", r, w, got)
		}
	}
}

func TestBuildSurfaceFailure(t *testing.T) {
	if _, err := Build(&fixedSurface{fail: true}, "Inter", 16); err == nil {
		t.Fatalf("测量表面不可用时应返回错误")
	}
	if _, err := Build(nil, "Inter", 16); err == nil {
		t.Fatalf("缺少测量表面时应返回错误")
	}
}

func TestCacheKeepsTableOnFailedRebuild(t *testing.T) {
	var c Cache
	if c.Table() != nil {
		t.Fatalf("首次构建前应为 nil")
	}
	if err := c.Rebuild(&fixedSurface{}, "Inter", 16); err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	old := c.Table()
	if err := c.Rebuild(&fixedSurface{fail: true}, "Mono", 12); err == nil {
		t.Fatalf("期望重建失败")
	}
	if c.Table() != old {
		t.Fatalf("重建失败后应保留旧表")
	}
	if err := c.Rebuild(&fixedSurface{}, "Mono", 12); err != nil {
		t.Fatalf("Rebuild error: %v", err)
	}
	if c.Table().Family() != "Mono" {
		t.Fatalf("重建后应切换到新表")
	}
}

func TestFontSpec(t *testing.T) {
	if got := FontSpec("Inter", 16); got != "16px Inter" {
		t.Fatalf("FontSpec = %q", got)
	}
	if got := FontSpec("Noto Sans", 13.5); got != "13.5px Noto Sans" {
		t.Fatalf("FontSpec = %q", got)
	}
}
