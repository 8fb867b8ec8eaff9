package canvassurface

// 换算常量：核心以 CSS 像素（96dpi）计，canvas 的坐标为毫米、字号为点。
const (
	MmToPx = 96.0 / 25.4
	PxToMm = 25.4 / 96.0
	PxToPt = 0.75
	PtToPx = 1.0 / PxToPt
)

func toPx(mm float64) float64 { return mm * MmToPx }
