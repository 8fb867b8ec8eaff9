package fonts

import "testing"

func TestLoadBuiltin(t *testing.T) {
	for _, name := range []string{"go", "embed:gomono", "Go-Bold"} {
		data, err := Load(name)
		if err != nil {
			t.Fatalf("Load(%q) error: %v", name, err)
		}
		if len(data) == 0 {
			t.Fatalf("Load(%q) 返回空数据", name)
		}
	}
	if _, err := Load("Inter"); err == nil {
		t.Fatalf("不存在的字体应返回错误")
	}
	if len(Names()) != 5 || !Has(Default) {
		t.Fatalf("内置字体列表错误: %v", Names())
	}
}
