package repository

import (
	"context"

	"github.com/ashwinyue/toolhub/internal/model"
)

// ToolStore 工具快照存储接口
// 接口定义使 Service 层可以轻松 mock 进行单元测试
type ToolStore interface {
	ReplaceAll(ctx context.Context, tools []model.Tool) error
	List(ctx context.Context) ([]model.Tool, error)
}

// 确保 ToolRepository 实现了接口
var _ ToolStore = (*ToolRepository)(nil)
