package autosize

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// 节点变高 100px，紧贴其底边的兄弟节点至少下移 100px，无关节点不动。
func TestResolveOverlapPushesTouchingSiblingDown(t *testing.T) {
	c := newFakeCanvas(map[string]Rect{
		"a":     {X: 0, Y: 0, Width: 200, Height: 100},
		"below": {X: 50, Y: 100, Width: 200, Height: 80},
		"far":   {X: 600, Y: 0, Width: 100, Height: 100},
		"above": {X: 0, Y: -200, Width: 200, Height: 100},
	}, "a", "below", "far", "above")

	moves := ResolveOverlap(c.node("a"), c.Nodes(), Delta{Height: 100})

	if diff := cmp.Diff([]Move{{NodeID: "below", DY: 100}}, moves); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	if got := c.node("below").rect.Y; got < 200 {
		t.Fatalf("below 应至少下移 100，实际 y=%g", got)
	}
	for _, id := range []string{"far", "above"} {
		if c.node(id).moves != 0 {
			t.Fatalf("%s 不应移动", id)
		}
	}
	if c.node("a").moves != 0 {
		t.Fatalf("被调整的节点本身不应移动")
	}
}

func TestResolveOverlapIsTransitive(t *testing.T) {
	c := newFakeCanvas(map[string]Rect{
		"a": {X: 0, Y: 0, Width: 200, Height: 100},
		"b": {X: 0, Y: 120, Width: 200, Height: 100},
		"c": {X: 0, Y: 230, Width: 200, Height: 100},
		"d": {X: 0, Y: 500, Width: 200, Height: 100},
	}, "a", "b", "c", "d")

	moves := ResolveOverlap(c.node("a"), c.Nodes(), Delta{Height: 50})

	want := []Move{{NodeID: "b", DY: 50}, {NodeID: "c", DY: 50}}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	assertNoOverlap(t, c)
	if c.node("d").moves != 0 {
		t.Fatalf("d 不受影响，不应移动")
	}
}

func TestResolveOverlapPushesRight(t *testing.T) {
	c := newFakeCanvas(map[string]Rect{
		"a":     {X: 0, Y: 0, Width: 200, Height: 100},
		"right": {X: 210, Y: 20, Width: 100, Height: 50},
	}, "a", "right")

	moves := ResolveOverlap(c.node("a"), c.Nodes(), Delta{Width: 80})
	if diff := cmp.Diff([]Move{{NodeID: "right", DX: 80}}, moves); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	if got := c.node("right").rect.X; got != 290 {
		t.Fatalf("right 期望 x=290，实际 %g", got)
	}
}

func TestResolveOverlapLeavesPreexistingOverlap(t *testing.T) {
	c := newFakeCanvas(map[string]Rect{
		"a":       {X: 0, Y: 0, Width: 200, Height: 100},
		"stacked": {X: 100, Y: 50, Width: 200, Height: 100},
	}, "a", "stacked")

	if moves := ResolveOverlap(c.node("a"), c.Nodes(), Delta{Width: 50, Height: 50}); len(moves) != 0 {
		t.Fatalf("原本就重叠的节点不应移动: %+v", moves)
	}
}

func TestResolveOverlapZeroDelta(t *testing.T) {
	c := newFakeCanvas(map[string]Rect{
		"a": {X: 0, Y: 0, Width: 200, Height: 100},
		"b": {X: 0, Y: 100, Width: 200, Height: 100},
	}, "a", "b")

	if moves := ResolveOverlap(c.node("a"), c.Nodes(), Delta{}); moves != nil {
		t.Fatalf("零增量不应推挤: %+v", moves)
	}
	if moves := ResolveOverlap(c.node("a"), c.Nodes(), Delta{Height: -40}); moves != nil {
		t.Fatalf("缩小不应推挤: %+v", moves)
	}
}

// 每个被推开的节点只调用一次 MoveTo，推挤会终止。
func TestResolveOverlapMovesEachNodeOnce(t *testing.T) {
	rects := map[string]Rect{"a": {X: 0, Y: 0, Width: 100, Height: 100}}
	order := []string{"a"}
	for i := 0; i < 20; i++ {
		id := string(rune('b' + i))
		rects[id] = Rect{X: float64(i%3) * 60, Y: 100 + float64(i)*30, Width: 100, Height: 40}
		order = append(order, id)
	}
	c := newFakeCanvas(rects, order...)

	moves := ResolveOverlap(c.node("a"), c.Nodes(), Delta{Width: 30, Height: 500})
	seen := map[string]bool{}
	for _, m := range moves {
		if seen[m.NodeID] {
			t.Fatalf("节点 %s 被移动了多次", m.NodeID)
		}
		seen[m.NodeID] = true
	}
	for _, n := range c.nodes {
		if n.moves > 1 {
			t.Fatalf("节点 %s MoveTo 调用 %d 次", n.id, n.moves)
		}
	}
}

// 同时变宽变高时，被向右推的节点可能压到被向下推的节点上，需要继续推开。
func TestResolveOverlapRepushesAfterBothAxesGrow(t *testing.T) {
	c := newFakeCanvas(map[string]Rect{
		"n0": {X: 200, Y: 150, Width: 25, Height: 75},
		"n1": {X: 275, Y: 225, Width: 50, Height: 100},
		"n6": {X: 225, Y: 200, Width: 50, Height: 100},
	}, "n0", "n1", "n6")

	moves := ResolveOverlap(c.node("n0"), c.Nodes(), Delta{Width: 75, Height: 25})
	growNode(c.node("n0"), 75, 25)

	want := []Move{{NodeID: "n1", DX: 75, DY: 25}, {NodeID: "n6", DX: 75}}
	if diff := cmp.Diff(want, moves); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
	assertNoOverlap(t, c)
}

// 随机网格布局：每个节点占一个格子，互不重叠；任意增量推挤后仍不重叠，
// 未被推到的节点保持原位。
func TestResolveOverlapRandomGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	const cols, rows, cell = 3, 3, 100.0
	for iter := 0; iter < 2000; iter++ {
		rects := map[string]Rect{}
		var order []string
		for i, cellIdx := range rng.Perm(cols * rows)[:8] {
			id := fmt.Sprintf("n%d", i)
			w := 10 + rng.Float64()*(cell-10)
			h := 10 + rng.Float64()*(cell-10)
			x := float64(cellIdx%cols)*cell + rng.Float64()*(cell-w)
			y := float64(cellIdx/cols)*cell + rng.Float64()*(cell-h)
			rects[id] = Rect{X: x, Y: y, Width: w, Height: h}
			order = append(order, id)
		}
		c := newFakeCanvas(rects, order...)
		d := Delta{Width: rng.Float64() * 150, Height: rng.Float64() * 150}
		if rng.Intn(4) == 0 {
			d.Width = 0
		}

		moves := ResolveOverlap(c.node("n0"), c.Nodes(), d)
		growNode(c.node("n0"), d.Width, d.Height)

		moved := map[string]bool{}
		for _, m := range moves {
			if m.DX < 0 || m.DY < 0 {
				t.Fatalf("iter %d: 节点只能向右或向下移动: %+v", iter, m)
			}
			moved[m.NodeID] = true
		}
		for _, n := range c.nodes {
			if n.id != "n0" && !moved[n.id] && n.rect != rects[n.id] {
				t.Fatalf("iter %d: %s 未记录位移却被移动", iter, n.id)
			}
		}
		assertNoOverlap(t, c)
	}
}

func growNode(n *fakeNode, dw, dh float64) {
	n.rect.Width += dw
	n.rect.Height += dh
}

func assertNoOverlap(t *testing.T, c *fakeCanvas) {
	t.Helper()
	for i, a := range c.nodes {
		for _, b := range c.nodes[i+1:] {
			if a.rect.Intersects(b.rect) {
				t.Fatalf("%s 与 %s 仍然重叠: %+v %+v", a.id, b.id, a.rect, b.rect)
			}
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}
	cases := []struct {
		b    Rect
		want bool
	}{
		{Rect{X: 10, Y: 0, Width: 5, Height: 5}, false},
		{Rect{X: 0, Y: 10, Width: 5, Height: 5}, false},
		{Rect{X: 9, Y: 9, Width: 5, Height: 5}, true},
		{Rect{X: -5, Y: -5, Width: 5, Height: 5}, false},
		{Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
	}
	for _, c := range cases {
		if got := a.Intersects(c.b); got != c.want {
			t.Fatalf("Intersects(%+v) = %v, want %v", c.b, got, c.want)
		}
	}
}
