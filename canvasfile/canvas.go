package canvasfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/ByLCY/cardfit/autosize"
)

// 节点类型。
const (
	TypeText  = "text"
	TypeFile  = "file"
	TypeLink  = "link"
	TypeGroup = "group"
)

// NodeData 是 JSON Canvas 中的一个节点。
type NodeData struct {
	ID     string  `json:"id"`
	Type   string  `json:"type"`
	Text   string  `json:"text,omitempty"`
	File   string  `json:"file,omitempty"`
	URL    string  `json:"url,omitempty"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color,omitempty"`
}

// Edge 是节点之间的连线，原样保留。
type Edge struct {
	ID       string `json:"id"`
	FromNode string `json:"fromNode"`
	FromSide string `json:"fromSide,omitempty"`
	ToNode   string `json:"toNode"`
	ToSide   string `json:"toSide,omitempty"`
	Color    string `json:"color,omitempty"`
	Label    string `json:"label,omitempty"`
}

type document struct {
	Nodes []*NodeData `json:"nodes"`
	Edges []Edge      `json:"edges"`
}

// Canvas 是加载到内存中的画布文件。节点修改与保存共用一把锁，
// 保存可能由延迟保存的定时器在其他 goroutine 上触发。
type Canvas struct {
	mu    sync.Mutex
	path  string
	doc   document
	nodes []*Node
	saves int

	events events
}

var _ autosize.Canvas = (*Canvas)(nil)

// Load 从 JSON 读取画布。
func Load(r io.Reader) (*Canvas, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("解析画布 JSON 失败: %w", err)
	}
	seen := make(map[string]bool, len(doc.Nodes))
	for i, n := range doc.Nodes {
		if n == nil || n.ID == "" {
			return nil, fmt.Errorf("第 %d 个节点缺少 id", i)
		}
		if seen[n.ID] {
			return nil, fmt.Errorf("节点 id 重复: %s", n.ID)
		}
		seen[n.ID] = true
	}
	c := &Canvas{doc: doc}
	c.nodes = make([]*Node, len(doc.Nodes))
	for i, n := range doc.Nodes {
		c.nodes[i] = &Node{canvas: c, data: n}
	}
	return c, nil
}

// LoadFile 读取画布文件，并把保存路径绑定到同一文件。
func LoadFile(path string) (*Canvas, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("无法打开画布文件 %s: %w", path, err)
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.path = path
	return c, nil
}

// SetPath 修改保存路径。
func (c *Canvas) SetPath(path string) {
	c.mu.Lock()
	c.path = path
	c.mu.Unlock()
}

// Encode 以制表符缩进写出 JSON。
func (c *Canvas) Encode(w io.Writer) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.encodeLocked(w)
}

func (c *Canvas) encodeLocked(w io.Writer) error {
	doc := c.doc
	if doc.Nodes == nil {
		doc.Nodes = []*NodeData{}
	}
	if doc.Edges == nil {
		doc.Edges = []Edge{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "\t")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

// Save 将画布写回绑定的路径。
func (c *Canvas) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.path == "" {
		return fmt.Errorf("画布未绑定保存路径")
	}
	var buf bytes.Buffer
	if err := c.encodeLocked(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(c.path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("写入画布文件 %s 失败: %w", c.path, err)
	}
	c.saves++
	return nil
}

// Saves 返回成功保存的次数。
func (c *Canvas) Saves() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.saves
}

// Nodes 返回全部节点（按文件顺序）。
func (c *Canvas) Nodes() []autosize.Node {
	out := make([]autosize.Node, len(c.nodes))
	for i, n := range c.nodes {
		out[i] = n
	}
	return out
}

// TextNodes 返回文本节点。
func (c *Canvas) TextNodes() []*Node {
	var out []*Node
	for _, n := range c.nodes {
		if n.Type() == TypeText {
			out = append(out, n)
		}
	}
	return out
}

// Node 按 id 查找节点，不存在时返回 nil。
func (c *Canvas) Node(id string) *Node {
	for _, n := range c.nodes {
		if n.data.ID == id {
			return n
		}
	}
	return nil
}

// Edges 返回连线的副本。
func (c *Canvas) Edges() []Edge {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Edge(nil), c.doc.Edges...)
}

// Node 是画布节点的句柄。
type Node struct {
	canvas *Canvas
	data   *NodeData
}

var _ autosize.Node = (*Node)(nil)

func (n *Node) ID() string { return n.data.ID }

func (n *Node) Type() string {
	n.canvas.mu.Lock()
	defer n.canvas.mu.Unlock()
	return n.data.Type
}

func (n *Node) Text() string {
	n.canvas.mu.Lock()
	defer n.canvas.mu.Unlock()
	return n.data.Text
}

// SetText 替换正文，通常随后触发一次内容变更事件。
func (n *Node) SetText(text string) {
	n.canvas.mu.Lock()
	n.data.Text = text
	n.canvas.mu.Unlock()
}

// Data 返回节点数据的副本。
func (n *Node) Data() NodeData {
	n.canvas.mu.Lock()
	defer n.canvas.mu.Unlock()
	return *n.data
}

func (n *Node) Bounds() autosize.Rect {
	n.canvas.mu.Lock()
	defer n.canvas.mu.Unlock()
	return autosize.Rect{X: n.data.X, Y: n.data.Y, Width: n.data.Width, Height: n.data.Height}
}

func (n *Node) Canvas() autosize.Canvas { return n.canvas }

func (n *Node) Resize(width, height float64) {
	n.canvas.mu.Lock()
	n.data.Width, n.data.Height = width, height
	n.canvas.mu.Unlock()
}

func (n *Node) MoveTo(x, y float64) {
	n.canvas.mu.Lock()
	n.data.X, n.data.Y = x, y
	n.canvas.mu.Unlock()
}
