package news

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/kaptinlin/jsonrepair"

	"github.com/ashwinyue/toolhub/internal/data"
)

// Kind 内容类型
type Kind string

const (
	KindNews     Kind = "news"
	KindTrends   Kind = "tech-trends"
	KindFeatures Kind = "upcoming-features"
)

// Kinds 全部内容类型
var Kinds = []Kind{KindNews, KindTrends, KindFeatures}

// ParseKind 解析内容类型，兼容路由中的简写
func ParseKind(s string) (Kind, bool) {
	switch s {
	case "news", "articles":
		return KindNews, true
	case "trends", "tech-trends":
		return KindTrends, true
	case "features", "upcoming-features":
		return KindFeatures, true
	}
	return "", false
}

// Source 内容数据源
type Source interface {
	Load(kind Kind) ([]byte, error)
}

// DirSource 从目录读取 <kind>.json
type DirSource struct {
	Dir string
}

// Load 实现 Source 接口
func (s DirSource) Load(kind Kind) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.Dir, string(kind)+".json"))
}

// FSSource 从 fs.FS 读取 <dir>/<kind>.json
type FSSource struct {
	FS  fs.FS
	Dir string
}

// Load 实现 Source 接口
func (s FSSource) Load(kind Kind) ([]byte, error) {
	return fs.ReadFile(s.FS, path.Join(s.Dir, string(kind)+".json"))
}

// EmbeddedSource 编译进二进制的默认数据
func EmbeddedSource() Source {
	return FSSource{FS: data.NewsFS(), Dir: "news"}
}

// decode 解析 JSON 数组，格式损坏时尝试修复后再解析
func decode[T any](raw []byte) ([]T, error) {
	var items []T
	err := json.Unmarshal(raw, &items)
	if err == nil {
		return items, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(string(raw))
	if repairErr != nil {
		return nil, fmt.Errorf("failed to decode content: %w", err)
	}
	items = nil
	if err := json.Unmarshal([]byte(repaired), &items); err != nil {
		return nil, fmt.Errorf("failed to decode repaired content: %w", err)
	}
	return items, nil
}
