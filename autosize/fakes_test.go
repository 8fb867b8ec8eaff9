package autosize

import (
	"strings"
	"sync"
)

// fakeDoc 是固定高度与字宽的正文。
type fakeDoc struct {
	text      string
	height    float64
	charWidth float64
}

func (d fakeDoc) Lines() []string           { return strings.Split(d.text, "\n") }
func (d fakeDoc) ContentHeight() float64    { return d.height }
func (d fakeDoc) DefaultCharWidth() float64 { return d.charWidth }

type fakeNode struct {
	id      string
	rect    Rect
	canvas  *fakeCanvas
	resizes int
	moves   int
}

func (n *fakeNode) ID() string   { return n.id }
func (n *fakeNode) Bounds() Rect { return n.rect }
func (n *fakeNode) Canvas() Canvas {
	if n.canvas == nil {
		return nil
	}
	return n.canvas
}
func (n *fakeNode) Resize(w, h float64) {
	n.resizes++
	n.rect.Width, n.rect.Height = w, h
}
func (n *fakeNode) MoveTo(x, y float64) {
	n.moves++
	n.rect.X, n.rect.Y = x, y
}

type fakeCanvas struct {
	nodes []*fakeNode

	mu    sync.Mutex
	saves int
}

func newFakeCanvas(rects map[string]Rect, order ...string) *fakeCanvas {
	c := &fakeCanvas{}
	for _, id := range order {
		c.nodes = append(c.nodes, &fakeNode{id: id, rect: rects[id], canvas: c})
	}
	return c
}

func (c *fakeCanvas) Nodes() []Node {
	out := make([]Node, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n
	}
	return out
}

func (c *fakeCanvas) Save() error {
	c.mu.Lock()
	c.saves++
	c.mu.Unlock()
	return nil
}

func (c *fakeCanvas) saveCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

func (c *fakeCanvas) node(id string) *fakeNode {
	for _, n := range c.nodes {
		if n.id == id {
			return n
		}
	}
	return nil
}
