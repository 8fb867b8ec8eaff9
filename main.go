package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ByLCY/cardfit/autosize"
	"github.com/ByLCY/cardfit/canvasfile"
	"github.com/ByLCY/cardfit/fonts"
	"github.com/ByLCY/cardfit/measure"
	"github.com/ByLCY/cardfit/renderer"
	canvasrenderer "github.com/ByLCY/cardfit/renderer/canvas"
	"github.com/ByLCY/cardfit/settings"
	canvassurface "github.com/ByLCY/cardfit/surface/canvas"
)

// contentInset 是卡片正文区域左右各自的内边距（px）。
const contentInset = 12.0

type options struct {
	input      string
	output     string
	config     string
	font       string
	fontSize   float64
	lineHeight float64
	debug      string
	preview    string
}

func main() {
	var opts options
	flag.StringVar(&opts.input, "in", "", "画布文件路径（.canvas）")
	flag.StringVar(&opts.output, "out", "", "输出路径，留空时覆盖输入文件")
	flag.StringVar(&opts.config, "config", "", "设置文件路径")
	flag.StringVar(&opts.font, "font", fonts.Default, "字体族、内置字体名或字体文件路径")
	flag.Float64Var(&opts.fontSize, "font-size", 16, "字号（px）")
	flag.Float64Var(&opts.lineHeight, "line-height", 1.5, "行高倍数")
	flag.StringVar(&opts.debug, "debug", "", "调整结果调试 JSON 输出路径")
	flag.StringVar(&opts.preview, "preview", "", "PDF 预览输出路径")
	verbose := flag.Bool("v", false, "输出调试日志")
	flag.Parse()

	if *verbose {
		autosize.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if opts.input == "" {
		log.Fatalf("缺少 -in 参数")
	}

	results, err := run(opts)
	if err != nil {
		log.Fatalf("调整画布失败: %v", err)
	}
	resized := 0
	for _, r := range results {
		if !r.Skipped {
			resized++
		}
	}
	fmt.Printf("已调整 %d/%d 个文本节点\n", resized, len(results))
}

// run 串联设置加载、字形宽度表构建、逐节点调整与保存。
func run(opts options) ([]autosize.Result, error) {
	cfg := autosize.DefaultConfig()
	if opts.config != "" {
		var err error
		cfg, err = settings.LoadFile(opts.config)
		if err != nil {
			return nil, err
		}
	}

	cv, err := canvasfile.LoadFile(opts.input)
	if err != nil {
		return nil, err
	}
	output := opts.input
	if opts.output != "" {
		output = opts.output
		cv.SetPath(output)
	}

	surface := canvassurface.NewSurface(filepath.Dir(opts.input))
	var results []autosize.Result
	coord := autosize.NewCoordinator(cfg, autosize.Options{
		Surface: surface,
		Report:  func(r autosize.Result) { results = append(results, r) },
	})
	defer coord.Close()

	style := autosize.Style{Family: opts.font, Size: opts.fontSize}
	if err := coord.Rebuild(style); err != nil {
		return nil, fmt.Errorf("构建字形宽度表失败: %w", err)
	}
	coord.Attach(cv)

	font := measure.FontSpec(opts.font, opts.fontSize)
	for _, node := range cv.TextNodes() {
		doc, err := surface.NewDocument(node.Text(), font, node.Bounds().Width-2*contentInset, opts.lineHeight)
		if err != nil {
			return nil, fmt.Errorf("排版节点 %s 失败: %w", node.ID(), err)
		}
		cv.NotifyContentChange(autosize.ChangeEvent{Node: node, Document: doc})
	}
	coord.Flush()

	// 没有节点变化时仍写出到新的输出路径
	if cv.Saves() == 0 && output != opts.input {
		if err := cv.Save(); err != nil {
			return nil, err
		}
	}

	if opts.debug != "" {
		if err := writeDebug(results, opts.debug); err != nil {
			return nil, err
		}
	}
	if opts.preview != "" {
		r := canvasrenderer.NewRenderer(surface, font, opts.lineHeight)
		if err := writePreview(r, cv, opts.preview); err != nil {
			return nil, err
		}
	}
	return results, nil
}

func writeDebug(results []autosize.Result, debugPath string) error {
	if err := os.MkdirAll(filepath.Dir(debugPath), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := autosize.WriteDebugJSON(results, debugPath); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func writePreview(r renderer.Renderer, cv *canvasfile.Canvas, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	pdfBytes, err := r.Render(cv)
	if err != nil {
		return fmt.Errorf("渲染预览失败: %w", err)
	}
	if err := os.WriteFile(path, pdfBytes, 0o644); err != nil {
		return fmt.Errorf("写入预览文件失败: %w", err)
	}
	return nil
}
