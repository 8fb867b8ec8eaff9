package canvasfile

import (
	"sync"

	"github.com/ByLCY/cardfit/autosize"
)

// events 保存已注册的回调，使 Canvas 可以作为 autosize.Source。
type events struct {
	mu      sync.Mutex
	content []func(autosize.ChangeEvent)
	style   []func(autosize.Style)
}

var _ autosize.Source = (*Canvas)(nil)

// OnContentChange 注册正文变更回调。
func (c *Canvas) OnContentChange(fn func(autosize.ChangeEvent)) {
	c.events.mu.Lock()
	c.events.content = append(c.events.content, fn)
	c.events.mu.Unlock()
}

// OnStyleChange 注册字体变更回调。
func (c *Canvas) OnStyleChange(fn func(autosize.Style)) {
	c.events.mu.Lock()
	c.events.style = append(c.events.style, fn)
	c.events.mu.Unlock()
}

// NotifyContentChange 依次同步调用正文变更回调。
func (c *Canvas) NotifyContentChange(ev autosize.ChangeEvent) {
	c.events.mu.Lock()
	fns := append(([]func(autosize.ChangeEvent))(nil), c.events.content...)
	c.events.mu.Unlock()
	for _, fn := range fns {
		fn(ev)
	}
}

// NotifyStyleChange 依次同步调用字体变更回调。
func (c *Canvas) NotifyStyleChange(s autosize.Style) {
	c.events.mu.Lock()
	fns := append(([]func(autosize.Style))(nil), c.events.style...)
	c.events.mu.Unlock()
	for _, fn := range fns {
		fn(s)
	}
}
