package settings

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ByLCY/cardfit/autosize"
)

// 设置文件中可识别的键。
const (
	KeyMaxWidth            = "maxWidth"
	KeyWidthAutoResize     = "widthAutoResize"
	KeyTrueWidth           = "trueWidth"
	KeyHeadingScaleFactors = "headingScaleFactors"
	KeyPadding             = "padding"
	KeyCJKWidthFactor      = "cjkWidthFactor"
)

// Load 解析设置文件并叠加到默认配置上。缺失的键保留默认值，
// 无法解析的数字（例如 "abc"）退化为默认值，标题因子退化为 1.0。
func Load(r io.Reader) (autosize.Config, error) {
	file, err := Parse(r)
	if err != nil {
		return autosize.Config{}, fmt.Errorf("解析设置文件失败: %w", err)
	}
	return apply(file)
}

// LoadString 与 Load 相同，输入为字符串。
func LoadString(input string) (autosize.Config, error) {
	file, err := ParseString(input)
	if err != nil {
		return autosize.Config{}, fmt.Errorf("解析设置文件失败: %w", err)
	}
	return apply(file)
}

// LoadFile 从路径读取设置；文件不存在时返回默认配置。
func LoadFile(path string) (autosize.Config, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return autosize.DefaultConfig(), nil
	}
	if err != nil {
		return autosize.Config{}, fmt.Errorf("无法打开设置文件 %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

func apply(file *File) (autosize.Config, error) {
	cfg := autosize.DefaultConfig()
	for _, e := range file.Entries() {
		v := e.Value
		switch e.Key {
		case KeyMaxWidth:
			if f, ok := v.asFloat(); ok {
				cfg.MaxWidth = f
			}
		case KeyPadding:
			if f, ok := v.asFloat(); ok {
				cfg.Padding = f
			}
		case KeyCJKWidthFactor:
			if f, ok := v.asFloat(); ok {
				cfg.CJKWidthFactor = f
			}
		case KeyWidthAutoResize:
			b, err := v.asBool(e)
			if err != nil {
				return autosize.Config{}, err
			}
			cfg.WidthAutoResize = b
		case KeyTrueWidth:
			b, err := v.asBool(e)
			if err != nil {
				return autosize.Config{}, err
			}
			cfg.TrueWidth = b
		case KeyHeadingScaleFactors:
			if v.Array == nil {
				return autosize.Config{}, fmt.Errorf("%s: %s 需要数组", e.Pos, e.Key)
			}
			factors := make([]float64, 0, len(v.Array.Values))
			for _, item := range v.Array.Values {
				f, ok := item.asFloat()
				if !ok {
					f = 1.0
				}
				factors = append(factors, f)
			}
			cfg.HeadingScaleFactors = factors
		default:
			return autosize.Config{}, fmt.Errorf("%s: 未知的设置项 %q", e.Pos, e.Key)
		}
	}
	return cfg.Normalize(), nil
}

func (v *Value) asFloat() (float64, bool) {
	switch {
	case v == nil:
		return 0, false
	case v.Number != nil:
		return *v.Number, true
	case v.String != nil:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(*v.String)), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

func (v *Value) asBool(e *Entry) (bool, error) {
	switch {
	case v.Bool != nil:
		return bool(*v.Bool), nil
	case v.String != nil:
		b, err := strconv.ParseBool(strings.TrimSpace(string(*v.String)))
		if err == nil {
			return b, nil
		}
	}
	return false, fmt.Errorf("%s: %s 需要 true 或 false", e.Pos, e.Key)
}

// Format 以设置文件格式写出配置，Load 可以读回。
func Format(w io.Writer, cfg autosize.Config) error {
	factors := make([]string, len(cfg.HeadingScaleFactors))
	for i, f := range cfg.HeadingScaleFactors {
		factors[i] = formatFloat(f)
	}
	_, err := fmt.Fprintf(w, "cardfit {\n"+
		"  %s: %s\n  %s: %t\n  %s: %t\n  %s: [%s]\n  %s: %s\n  %s: %s\n}\n",
		KeyMaxWidth, formatFloat(cfg.MaxWidth),
		KeyWidthAutoResize, cfg.WidthAutoResize,
		KeyTrueWidth, cfg.TrueWidth,
		KeyHeadingScaleFactors, strings.Join(factors, ", "),
		KeyPadding, formatFloat(cfg.Padding),
		KeyCJKWidthFactor, formatFloat(cfg.CJKWidthFactor),
	)
	return err
}

// SaveFile 将配置写入路径。
func SaveFile(path string, cfg autosize.Config) error {
	var b strings.Builder
	if err := Format(&b, cfg); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("写入设置文件 %s 失败: %w", path, err)
	}
	return nil
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }
