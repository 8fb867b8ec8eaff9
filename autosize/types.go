package autosize

import "github.com/ByLCY/cardfit/measure"

// Rect 是画布坐标系下的矩形，原点在左上角，单位为像素。
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (r Rect) Right() float64  { return r.X + r.Width }
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Intersects 判断两个矩形是否有面积重叠，仅边缘相接不算重叠。
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Translate 返回平移后的矩形。
func (r Rect) Translate(dx, dy float64) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Size 是节点的目标宽高。
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Delta 是一次调整中节点尺寸的变化量；某个轴为 0 表示该方向无需推挤。
type Delta struct {
	Width  float64 `json:"deltaWidth"`
	Height float64 `json:"deltaHeight"`
}

// Move 记录一个被推开的节点。
type Move struct {
	NodeID string  `json:"nodeId"`
	DX     float64 `json:"dx"`
	DY     float64 `json:"dy"`
}

// Document 是节点正文的渲染视图。
type Document interface {
	Lines() []string
	// ContentHeight 是渲染后正文的像素高度。
	ContentHeight() float64
	// DefaultCharWidth 是基准字宽，用于表外字符与首行估算。
	DefaultCharWidth() float64
}

// Node 是画布上的文本卡片。核心只读取几何与正文，并请求修改几何。
type Node interface {
	ID() string
	Bounds() Rect
	Canvas() Canvas
	Resize(width, height float64)
	MoveTo(x, y float64)
}

// Canvas 是节点的集合，负责落盘。
type Canvas interface {
	Nodes() []Node
	Save() error
}

// Surface 与 measure.Surface 相同，这里起别名方便调用方只引入 autosize。
type Surface = measure.Surface

// Style 描述当前字体，字体变化时用于重建字形宽度表。
type Style struct {
	Family string  `json:"family"`
	Size   float64 `json:"size"`
}

// ChangeEvent 是一次正文变更通知携带的快照。
type ChangeEvent struct {
	Node     Node
	Document Document
}

// Source 暴露内容变更与样式变更两类回调注册。
type Source interface {
	OnContentChange(fn func(ChangeEvent))
	OnStyleChange(fn func(Style))
}

// Result 记录一次调整的结果，便于调试输出。
type Result struct {
	NodeID  string `json:"nodeId"`
	Skipped bool   `json:"skipped"`
	Before  Rect   `json:"before"`
	After   Rect   `json:"after"`
	Moves   []Move `json:"moves,omitempty"`
}
