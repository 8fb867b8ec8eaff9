package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/cardfit/autosize"
	"github.com/ByLCY/cardfit/canvasfile"
	"github.com/ByLCY/cardfit/renderer"
	canvassurface "github.com/ByLCY/cardfit/surface/canvas"
)

const (
	pageMargin  = 40.0 // px
	strokeWidth = 0.3  // mm
	textInset   = 12.0 // px，卡片内文字与边框的距离
)

// Renderer 用 github.com/tdewolff/canvas 把画布绘制成单页 PDF 预览。
type Renderer struct {
	surface    *canvassurface.Surface
	font       string
	lineHeight float64
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer 创建预览渲染器，font 与 lineHeight 与排版时保持一致。
func NewRenderer(surface *canvassurface.Surface, font string, lineHeight float64) *Renderer {
	return &Renderer{surface: surface, font: font, lineHeight: lineHeight}
}

// Render 渲染为 PDF 字节。
func (r *Renderer) Render(c *canvasfile.Canvas) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("画布为空")
	}
	nodes := c.Nodes()
	if len(nodes) == 0 {
		return nil, fmt.Errorf("画布中没有节点")
	}

	bounds := boundingBox(nodes)
	widthMM := (bounds.Width + 2*pageMargin) * canvassurface.PxToMm
	heightMM := (bounds.Height + 2*pageMargin) * canvassurface.PxToMm
	originX := bounds.X - pageMargin
	originY := bounds.Y - pageMargin
	toMM := func(x, y float64) (float64, float64) {
		return (x - originX) * canvassurface.PxToMm, (y - originY) * canvassurface.PxToMm
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, widthMM, heightMM, nil)
	cv := canvas.New(widthMM, heightMM)
	ctx := canvas.NewContext(cv)
	ctx.SetCoordSystem(canvas.CartesianIV) // 与画布一致，左上角为原点

	r.drawEdges(ctx, c, toMM)
	for _, n := range nodes {
		node, ok := n.(*canvasfile.Node)
		if !ok {
			continue
		}
		if err := r.drawNode(ctx, node, toMM); err != nil {
			return nil, err
		}
	}

	cv.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) drawNode(ctx *canvas.Context, node *canvasfile.Node, toMM func(x, y float64) (float64, float64)) error {
	data := node.Data()
	x, y := toMM(data.X, data.Y)
	w := data.Width * canvassurface.PxToMm
	h := data.Height * canvassurface.PxToMm

	stroke := nodeColor(data.Color)
	ctx.SetStrokeColor(stroke)
	ctx.SetStrokeWidth(strokeWidth)
	ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	ctx.DrawPath(x, y, canvas.RoundedRectangle(w, h, 2))

	content := data.Text
	switch data.Type {
	case canvasfile.TypeFile:
		content = data.File
	case canvasfile.TypeLink:
		content = data.URL
	case canvasfile.TypeGroup:
		content = data.Label
	}
	if strings.TrimSpace(content) == "" {
		return nil
	}

	doc, err := r.surface.NewDocument(content, r.font, data.Width-2*textInset, r.lineHeight)
	if err != nil {
		return err
	}
	face, err := r.surface.FontFace(r.font)
	if err != nil {
		return err
	}
	lineHeight := doc.ContentHeight() / math.Max(float64(len(doc.WrapLines())), 1)
	ff := face.CanvasFace()
	ascent := ff.Metrics().Ascent
	cursorY := y + textInset*canvassurface.PxToMm
	for _, line := range doc.WrapLines() {
		if cursorY+ascent > y+h {
			break
		}
		ctx.DrawText(x+textInset*canvassurface.PxToMm, cursorY+ascent, canvas.NewTextLine(ff, line, canvas.Left))
		cursorY += lineHeight * canvassurface.PxToMm
	}
	return nil
}

// drawEdges 以节点中心之间的直线表示连线。
func (r *Renderer) drawEdges(ctx *canvas.Context, c *canvasfile.Canvas, toMM func(x, y float64) (float64, float64)) {
	ctx.SetStrokeColor(canvas.Hex("#999999"))
	ctx.SetStrokeWidth(strokeWidth)
	for _, e := range c.Edges() {
		from, to := c.Node(e.FromNode), c.Node(e.ToNode)
		if from == nil || to == nil {
			continue
		}
		fb, tb := from.Bounds(), to.Bounds()
		x1, y1 := toMM(fb.X+fb.Width/2, fb.Y+fb.Height/2)
		x2, y2 := toMM(tb.X+tb.Width/2, tb.Y+tb.Height/2)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(x2-x1, y2-y1)
		ctx.DrawPath(x1, y1, p)
	}
}

func boundingBox(nodes []autosize.Node) autosize.Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, n := range nodes {
		b := n.Bounds()
		minX = math.Min(minX, b.X)
		minY = math.Min(minY, b.Y)
		maxX = math.Max(maxX, b.Right())
		maxY = math.Max(maxY, b.Bottom())
	}
	return autosize.Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// 画布预设颜色 "1".."6"，其余按十六进制解析。
var presetColors = map[string]string{
	"1": "#e93147",
	"2": "#ec7500",
	"3": "#e0ac00",
	"4": "#08b94e",
	"5": "#00bfbc",
	"6": "#7852ee",
}

func nodeColor(c string) color.RGBA {
	if c == "" {
		return canvas.Hex("#7f7f7f")
	}
	if hex, ok := presetColors[c]; ok {
		return canvas.Hex(hex)
	}
	if strings.HasPrefix(c, "#") {
		return canvas.Hex(c)
	}
	return canvas.Hex("#7f7f7f")
}
