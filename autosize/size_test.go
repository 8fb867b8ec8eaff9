package autosize

import (
	"math"
	"testing"
)

func TestComputeSizeTrueWidthPicksWidestScaledLine(t *testing.T) {
	doc := fakeDoc{text: "# Title\nbody text", height: 40, charWidth: 8}
	got := ComputeSize(doc, Rect{Width: 250, Height: 60}, DefaultConfig(), nil)

	heading := 7*8*2.0 + 80 // "# Title" 按 2.0 缩放
	body := 9*8*1.0 + 80
	want := math.Max(heading, body)
	if got.Width != want {
		t.Fatalf("宽度期望 %g，实际 %g", want, got.Width)
	}
	if got.Height != 40+VerticalPadding {
		t.Fatalf("高度期望 %g，实际 %g", 40+VerticalPadding, got.Height)
	}
}

func TestComputeSizeFirstLineMode(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TrueWidth = false
	doc := fakeDoc{text: "## ab\na much much longer second line", height: 40, charWidth: 8}
	got := ComputeSize(doc, Rect{Width: 250}, cfg, nil)
	want := 5*8*1.8 + 80
	if math.Abs(got.Width-want) > 1e-9 {
		t.Fatalf("首行模式宽度期望 %g，实际 %g", want, got.Width)
	}
}

func TestComputeSizeWidthAutoResizeDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.WidthAutoResize = false
	for _, text := range []string{"", "x", "# a heading that is rather long", "中文内容"} {
		got := ComputeSize(fakeDoc{text: text, height: 10, charWidth: 8}, Rect{Width: 123}, cfg, nil)
		if got.Width != 123 {
			t.Fatalf("关闭宽度自适应后宽度不应变化: %q -> %g", text, got.Width)
		}
	}
}

func TestComputeSizeOverMaxKeepsPriorWidth(t *testing.T) {
	cfg := DefaultConfig()
	doc := fakeDoc{text: "an extremely long line that certainly exceeds the configured maximum width", height: 20, charWidth: 8}
	got := ComputeSize(doc, Rect{Width: 260}, cfg, nil)
	if got.Width != 260 {
		t.Fatalf("超过 maxWidth 时应保留原宽度 260，实际 %g", got.Width)
	}
	if got.Width == cfg.MaxWidth {
		t.Fatalf("不应截断到 maxWidth")
	}
}

func TestComputeSizeEmptyDocument(t *testing.T) {
	got := ComputeSize(fakeDoc{text: "", height: 0, charWidth: 8}, Rect{Width: 300}, DefaultConfig(), nil)
	if got.Width != 80 {
		t.Fatalf("空文档宽度应等于 padding，实际 %g", got.Width)
	}
	if got.Height != VerticalPadding {
		t.Fatalf("空文档高度应等于留白，实际 %g", got.Height)
	}
}

func TestConfigNormalize(t *testing.T) {
	cfg := Config{MaxWidth: -1, Padding: -5, CJKWidthFactor: 0.5, HeadingScaleFactors: []float64{3, -2}}
	got := cfg.Normalize()
	if got.MaxWidth != 400 || got.Padding != 0 || got.CJKWidthFactor != 1 {
		t.Fatalf("Normalize 结果错误: %+v", got)
	}
	want := []float64{3, 1, 1, 1, 1, 1}
	for i, f := range want {
		if got.HeadingScaleFactors[i] != f {
			t.Fatalf("标题因子 %d 期望 %g，实际 %g", i, f, got.HeadingScaleFactors[i])
		}
	}
}
