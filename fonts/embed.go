package fonts

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// Default 是找不到字体时使用的内置字体名。
const Default = "go"

var builtin = map[string][]byte{
	"go":        goregular.TTF,
	"go-bold":   gobold.TTF,
	"go-italic": goitalic.TTF,
	"go-medium": gomedium.TTF,
	"gomono":    gomono.TTF,
}

// Load 返回内置字体的字节数据，name 可写为 "embed:gomono" 或直接 "gomono"，大小写不敏感。
func Load(name string) ([]byte, error) {
	key := strings.TrimPrefix(strings.ToLower(name), "embed:")
	data, ok := builtin[key]
	if !ok {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 不存在", name)
	}
	return data, nil
}

// Has 报告 name 是否为内置字体。
func Has(name string) bool {
	_, err := Load(name)
	return err == nil
}

// Names 返回全部内置字体名。
func Names() []string {
	out := make([]string, 0, len(builtin))
	for name := range builtin {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
