// Package snapshot 把工具管理器的状态镜像到数据库
package snapshot

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/model"
	"github.com/ashwinyue/toolhub/internal/repository"
)

const defaultWriteTimeout = 5 * time.Second

// Syncer 快照同步器
type Syncer struct {
	store   repository.ToolStore
	logger  *zap.Logger
	timeout time.Duration
}

// NewSyncer 创建快照同步器
func NewSyncer(store repository.ToolStore, logger *zap.Logger) *Syncer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Syncer{store: store, logger: logger, timeout: defaultWriteTimeout}
}

// OnCatalogChanged 工具管理器监听器
// 写入失败只记录日志，内存中的修改仍然有效
func (s *Syncer) OnCatalogChanged(tools []model.Tool) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.store.ReplaceAll(ctx, tools); err != nil {
		s.logger.Warn("failed to mirror tool snapshot", zap.Int("count", len(tools)), zap.Error(err))
		return
	}
	s.logger.Debug("tool snapshot mirrored", zap.Int("count", len(tools)))
}

// Restore 读取数据库中的快照
// 表为空时返回 ok=false，调用方应继续使用种子数据
func (s *Syncer) Restore(ctx context.Context) (tools []model.Tool, ok bool, err error) {
	tools, err = s.store.List(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("failed to restore tools: %w", err)
	}
	if len(tools) == 0 {
		return nil, false, nil
	}
	return tools, true, nil
}
