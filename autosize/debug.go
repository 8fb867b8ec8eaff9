package autosize

import (
	"encoding/json"
	"os"
)

// WriteDebugJSON 将调整结果输出为 JSON，便于排查推挤与尺寸问题。
func WriteDebugJSON(results []Result, path string) error {
	if results == nil {
		results = []Result{}
	}
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
