// Package data 提供静态种子数据
//
// 种子数据在进程生命周期内只读；需要修改时请通过 tool.Manager，
// 它持有独立的副本。
package data

import (
	"embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ashwinyue/toolhub/internal/model"
)

//go:embed news/*.json
var newsFS embed.FS

// NewsFS 内置的资讯、趋势、规划功能数据
func NewsFS() embed.FS {
	return newsFS
}

// SeedTools 返回工具种子数据的副本
func SeedTools() []model.Tool {
	return model.CloneTools(Tools)
}

// SeedCategories 返回分类种子数据的副本
func SeedCategories() []model.ToolCategoryData {
	return append([]model.ToolCategoryData(nil), Categories...)
}

// toolsDocument YAML 种子文件结构
type toolsDocument struct {
	Tools []model.Tool `yaml:"tools"`
}

// LoadToolsFile 从 YAML 文件读取工具种子
// 文件格式与 tool.Manager.ExportToolsYAML 的输出一致
func LoadToolsFile(path string) ([]model.Tool, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tools file: %w", err)
	}
	return ParseTools(raw)
}

// ParseTools 解析 YAML 工具种子
func ParseTools(raw []byte) ([]model.Tool, error) {
	var doc toolsDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse tools yaml: %w", err)
	}
	seen := make(map[string]struct{}, len(doc.Tools))
	for i, t := range doc.Tools {
		if t.ID == "" {
			return nil, fmt.Errorf("tool #%d has empty id", i)
		}
		if _, dup := seen[t.ID]; dup {
			return nil, fmt.Errorf("duplicate tool id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return doc.Tools, nil
}

// MarshalTools 序列化为 YAML 种子
func MarshalTools(tools []model.Tool) ([]byte, error) {
	out, err := yaml.Marshal(toolsDocument{Tools: tools})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal tools yaml: %w", err)
	}
	return out, nil
}
