package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/ashwinyue/toolhub/internal/model"
)

// ToolRepository 工具快照数据访问
// 表中保存的是某一时刻的完整工具列表，Position 记录原有顺序
type ToolRepository struct {
	db *gorm.DB
}

// NewToolRepository 创建工具仓库
func NewToolRepository(db *gorm.DB) *ToolRepository {
	return &ToolRepository{db: db}
}

// ReplaceAll 用新的快照整体替换表内容
func (r *ToolRepository) ReplaceAll(ctx context.Context, tools []model.Tool) error {
	rows := model.CloneTools(tools)
	for i := range rows {
		rows[i].Position = i
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Tool{}).Error; err != nil {
			return fmt.Errorf("failed to clear tools: %w", err)
		}
		if len(rows) == 0 {
			return nil
		}
		if err := tx.CreateInBatches(rows, 100).Error; err != nil {
			return fmt.Errorf("failed to insert tools: %w", err)
		}
		return nil
	})
}

// List 按快照顺序列出工具
func (r *ToolRepository) List(ctx context.Context) ([]model.Tool, error) {
	var tools []model.Tool
	err := r.db.WithContext(ctx).Order("position ASC").Find(&tools).Error
	return tools, err
}

// Count 统计工具数量
func (r *ToolRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Tool{}).Count(&total).Error
	return total, err
}
