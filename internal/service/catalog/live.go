package catalog

import (
	"sync/atomic"

	"github.com/ashwinyue/toolhub/internal/model"
)

// Live 可替换的目录快照
// 读取方拿到的始终是一个完整的 Catalog，替换对正在进行的读取不可见
type Live struct {
	current    atomic.Pointer[Catalog]
	categories []model.ToolCategoryData
}

// NewLive 创建可替换目录
func NewLive(tools []model.Tool, categories []model.ToolCategoryData) *Live {
	l := &Live{categories: append([]model.ToolCategoryData(nil), categories...)}
	l.current.Store(New(tools, l.categories))
	return l
}

// Current 当前快照
func (l *Live) Current() *Catalog {
	return l.current.Load()
}

// Replace 用新的工具列表替换快照，分类保持不变
// 签名与 tool.Listener 兼容，可以直接注册为管理器监听器
func (l *Live) Replace(tools []model.Tool) {
	l.current.Store(New(tools, l.categories))
}
