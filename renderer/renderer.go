package renderer

import "github.com/ByLCY/cardfit/canvasfile"

// Renderer 将画布输出为预览文件，例如 PDF。
// Render 返回生成的二进制数据以及可能的错误。
type Renderer interface {
	Render(c *canvasfile.Canvas) ([]byte, error)
}
