// Package catalog 提供工具目录的只读查询
package catalog

import (
	"slices"
	"strings"

	"github.com/ashwinyue/toolhub/internal/data"
	"github.com/ashwinyue/toolhub/internal/model"
)

// DefaultRelatedLimit 相关工具的默认数量
const DefaultRelatedLimit = 4

// Catalog 工具目录快照
// 构造后不再修改，可以被多个 goroutine 并发读取
type Catalog struct {
	tools      []model.Tool
	categories []model.ToolCategoryData
}

// New 基于给定的工具和分类创建目录快照
func New(tools []model.Tool, categories []model.ToolCategoryData) *Catalog {
	return &Catalog{
		tools:      model.CloneTools(tools),
		categories: append([]model.ToolCategoryData(nil), categories...),
	}
}

// Seed 基于静态种子数据创建目录
func Seed() *Catalog {
	return New(data.Tools, data.Categories)
}

// byWeightDesc 按权重降序，配合稳定排序保持原有相对顺序
func byWeightDesc(a, b model.Tool) int {
	return b.Weight - a.Weight
}

func (c *Catalog) filter(keep func(t *model.Tool) bool) []model.Tool {
	out := []model.Tool{}
	for i := range c.tools {
		if keep(&c.tools[i]) {
			out = append(out, c.tools[i].Clone())
		}
	}
	return out
}

// GetAllTools 获取所有上线工具
func (c *Catalog) GetAllTools() []model.Tool {
	return c.filter(func(t *model.Tool) bool { return t.IsActive() })
}

// GetFeaturedTools 获取推荐工具，按权重降序
func (c *Catalog) GetFeaturedTools() []model.Tool {
	tools := c.filter(func(t *model.Tool) bool { return t.IsActive() && t.Featured })
	slices.SortStableFunc(tools, byWeightDesc)
	return tools
}

// GetToolsByCategory 根据分类获取工具，按权重降序
func (c *Catalog) GetToolsByCategory(categoryID string) []model.Tool {
	tools := c.filter(func(t *model.Tool) bool {
		return t.IsActive() && string(t.Category) == categoryID
	})
	slices.SortStableFunc(tools, byWeightDesc)
	return tools
}

// GetToolByID 根据ID获取工具（不区分状态）
func (c *Catalog) GetToolByID(id string) (model.Tool, bool) {
	for i := range c.tools {
		if c.tools[i].ID == id {
			return c.tools[i].Clone(), true
		}
	}
	return model.Tool{}, false
}

// SearchTools 搜索工具
// 名称、描述或任一标签包含关键字（不区分大小写）即命中，结果保持原有顺序
func (c *Catalog) SearchTools(query string) []model.Tool {
	term := strings.ToLower(query)
	return c.filter(func(t *model.Tool) bool {
		if !t.IsActive() {
			return false
		}
		if strings.Contains(strings.ToLower(t.Name), term) ||
			strings.Contains(strings.ToLower(t.Description), term) {
			return true
		}
		for _, tag := range t.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
		return false
	})
}

// GetRelatedTools 获取相关工具
// 同分类或至少共享一个标签；limit <= 0 时使用 DefaultRelatedLimit
func (c *Catalog) GetRelatedTools(toolID string, limit int) []model.Tool {
	current, ok := c.GetToolByID(toolID)
	if !ok {
		return []model.Tool{}
	}
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	tools := c.filter(func(t *model.Tool) bool {
		if t.ID == toolID || !t.IsActive() {
			return false
		}
		if t.Category == current.Category {
			return true
		}
		for _, tag := range t.Tags {
			if current.HasTag(tag) {
				return true
			}
		}
		return false
	})
	slices.SortStableFunc(tools, byWeightDesc)
	if len(tools) > limit {
		tools = tools[:limit]
	}
	return tools
}

// GetToolCategories 获取分类，按权重降序
func (c *Catalog) GetToolCategories() []model.ToolCategoryData {
	categories := append([]model.ToolCategoryData(nil), c.categories...)
	slices.SortStableFunc(categories, func(a, b model.ToolCategoryData) int {
		return b.Weight - a.Weight
	})
	return categories
}

// GetToolStats 获取统计信息
func (c *Catalog) GetToolStats() model.ToolStats {
	stats := model.ToolStats{Categories: make([]model.CategoryCount, 0, len(c.categories))}
	perCategory := make(map[model.ToolCategory]int)
	for i := range c.tools {
		t := &c.tools[i]
		if !t.IsActive() {
			continue
		}
		stats.Total++
		if t.Featured {
			stats.Featured++
		}
		perCategory[t.Category]++
	}
	for _, category := range c.categories {
		stats.Categories = append(stats.Categories, model.CategoryCount{
			Category: category,
			Count:    perCategory[category.ID],
		})
	}
	return stats
}
