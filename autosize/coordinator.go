package autosize

import (
	"fmt"
	"sync"

	"github.com/ByLCY/cardfit/measure"
)

// Coordinator 串联尺寸计算、重叠处理、尺寸应用与延迟保存。
// 事件处理是同步的，一个事件处理完才会处理下一个。
type Coordinator struct {
	opts   Options
	glyphs measure.Cache

	mu     sync.Mutex
	cfg    Config
	savers map[Canvas]*Debouncer
}

// NewCoordinator 创建协调器。字形宽度表需要调用方随后 Rebuild 一次。
func NewCoordinator(cfg Config, opts Options) *Coordinator {
	if opts.SaveDelay <= 0 {
		opts.SaveDelay = SaveDelay
	}
	return &Coordinator{
		opts:   opts,
		cfg:    cfg.Normalize(),
		savers: map[Canvas]*Debouncer{},
	}
}

// SetConfig 替换配置，对之后的事件生效。
func (c *Coordinator) SetConfig(cfg Config) {
	c.mu.Lock()
	c.cfg = cfg.Normalize()
	c.mu.Unlock()
}

func (c *Coordinator) Config() Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// Glyphs 返回当前的字形宽度表，尚未构建时为 nil。
func (c *Coordinator) Glyphs() *measure.GlyphTable { return c.glyphs.Table() }

// Rebuild 按新样式重建字形宽度表，启动时与字体变化时各调用一次。
func (c *Coordinator) Rebuild(style Style) error {
	if c.opts.Surface == nil {
		return fmt.Errorf("autosize: 未配置测量表面")
	}
	if err := c.glyphs.Rebuild(c.opts.Surface, style.Family, style.Size); err != nil {
		return err
	}
	logger().Info("autosize: 字形宽度表已重建", "family", style.Family, "size", style.Size, "glyphs", c.glyphs.Table().Len())
	return nil
}

// Attach 向事件源注册回调。回调里的错误只记录日志。
func (c *Coordinator) Attach(src Source) {
	src.OnContentChange(func(ev ChangeEvent) {
		res, err := c.HandleChange(ev)
		if err != nil {
			logger().Warn("autosize: 处理内容变更失败", "err", err)
			return
		}
		if c.opts.Report != nil {
			c.opts.Report(res)
		}
	})
	src.OnStyleChange(func(s Style) {
		if err := c.Rebuild(s); err != nil {
			logger().Warn("autosize: 重建字形宽度表失败", "err", err)
		}
	})
}

// HandleChange 处理一次正文变更：
//  1. 计算目标尺寸；
//  2. 新高度等于当前高度，或应用后的尺寸与当前完全相同时直接返回；
//  3. 按尺寸增量推开重叠节点；
//  4. 应用新尺寸（高度追加尾部余量）；
//  5. 请求延迟保存所属画布。
func (c *Coordinator) HandleChange(ev ChangeEvent) (Result, error) {
	if ev.Node == nil || ev.Document == nil {
		return Result{}, fmt.Errorf("autosize: 变更事件缺少节点或正文")
	}
	cfg := c.Config()
	node := ev.Node
	before := node.Bounds()
	res := Result{NodeID: node.ID(), Before: before, After: before}

	table := c.glyphs.Table()
	if table == nil {
		logger().Debug("autosize: 字形宽度表尚未构建，使用默认字宽估算", "node", res.NodeID)
	}
	size := ComputeSize(ev.Document, before, cfg, table)
	if size.Height == before.Height {
		res.Skipped = true
		logger().Debug("autosize: 高度未变化，跳过", "node", res.NodeID)
		return res, nil
	}

	height := size.Height + TrailingMargin
	if height == before.Height && size.Width == before.Width {
		// 上一次调整已经应用过同样的尺寸
		res.Skipped = true
		logger().Debug("autosize: 尺寸已适配，跳过", "node", res.NodeID)
		return res, nil
	}
	delta := Delta{Height: height - before.Height}
	if cfg.WidthAutoResize {
		delta.Width = size.Width - before.Width
	}

	canvas := node.Canvas()
	if canvas != nil {
		res.Moves = ResolveOverlap(node, canvas.Nodes(), delta)
	}

	node.Resize(size.Width, height)
	res.After = Rect{X: before.X, Y: before.Y, Width: size.Width, Height: height}

	if canvas != nil {
		c.requestSave(canvas)
	}
	return res, nil
}

func (c *Coordinator) requestSave(cv Canvas) {
	c.mu.Lock()
	d, ok := c.savers[cv]
	if !ok {
		d = NewDebouncer(c.opts.SaveDelay, func() {
			if err := cv.Save(); err != nil {
				logger().Warn("autosize: 保存画布失败", "err", err)
			}
		})
		c.savers[cv] = d
	}
	c.mu.Unlock()
	d.Trigger()
}

// Flush 立即执行所有待保存的请求。
func (c *Coordinator) Flush() {
	for _, d := range c.debouncers() {
		d.Flush()
	}
}

// Close 取消所有待保存的请求。
func (c *Coordinator) Close() {
	for _, d := range c.debouncers() {
		d.Stop()
	}
}

func (c *Coordinator) debouncers() []*Debouncer {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Debouncer, 0, len(c.savers))
	for _, d := range c.savers {
		out = append(out, d)
	}
	return out
}
