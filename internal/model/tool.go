// Package model 定义工具目录的数据模型
package model

// ToolCategory 工具分类
type ToolCategory string

const (
	CategoryDevelopment   ToolCategory = "development"   // 开发工具
	CategoryDesign        ToolCategory = "design"        // 设计工具
	CategoryProductivity  ToolCategory = "productivity"  // 生产力工具
	CategoryLearning      ToolCategory = "learning"      // 学习工具
	CategoryUtilities     ToolCategory = "utilities"     // 实用工具
	CategoryCommunication ToolCategory = "communication" // 沟通工具
	CategoryMedia         ToolCategory = "media"         // 媒体工具
	CategorySecurity      ToolCategory = "security"      // 安全工具
)

// AllCategories 全部分类，按声明顺序
var AllCategories = []ToolCategory{
	CategoryDevelopment,
	CategoryDesign,
	CategoryProductivity,
	CategoryLearning,
	CategoryUtilities,
	CategoryCommunication,
	CategoryMedia,
	CategorySecurity,
}

// IsValid 是否为已知分类
func (c ToolCategory) IsValid() bool {
	for _, known := range AllCategories {
		if c == known {
			return true
		}
	}
	return false
}

// ToolStatus 工具状态
type ToolStatus string

const (
	StatusActive   ToolStatus = "active"
	StatusInactive ToolStatus = "inactive"
	StatusBeta     ToolStatus = "beta"
)

// IsValid 是否为已知状态
func (s ToolStatus) IsValid() bool {
	return s == StatusActive || s == StatusInactive || s == StatusBeta
}

// Tool 工具
// 时间戳为毫秒级 Unix 时间
type Tool struct {
	ID          string       `json:"id" yaml:"id" gorm:"primaryKey;size:50"`
	Name        string       `json:"name" yaml:"name" gorm:"size:100;not null"`
	Description string       `json:"description,omitempty" yaml:"description,omitempty" gorm:"type:text"`
	Icon        string       `json:"icon,omitempty" yaml:"icon,omitempty" gorm:"type:text"`
	URL         string       `json:"url" yaml:"url" gorm:"type:text;not null"`
	Category    ToolCategory `json:"category" yaml:"category" gorm:"size:32;index"`
	Status      ToolStatus   `json:"status" yaml:"status" gorm:"size:16;index"`
	Tags        []string     `json:"tags" yaml:"tags" gorm:"serializer:json"`
	Featured    bool         `json:"featured" yaml:"featured" gorm:"index"`
	Weight      int          `json:"weight" yaml:"weight"`
	Position    int          `json:"-" yaml:"-" gorm:"index"`
	CreatedAt   int64        `json:"createdAt" yaml:"createdAt" gorm:"autoCreateTime:false"`
	UpdatedAt   int64        `json:"updatedAt" yaml:"updatedAt" gorm:"autoUpdateTime:false"`
}

// TableName 指定表名
func (Tool) TableName() string {
	return "tools"
}

// IsActive 是否处于上线状态
func (t *Tool) IsActive() bool {
	return t.Status == StatusActive
}

// HasTag 是否包含指定标签（精确匹配）
func (t *Tool) HasTag(tag string) bool {
	for _, own := range t.Tags {
		if own == tag {
			return true
		}
	}
	return false
}

// Clone 深拷贝，避免调用方修改内部切片
func (t Tool) Clone() Tool {
	if t.Tags != nil {
		t.Tags = append([]string(nil), t.Tags...)
	}
	return t
}

// CloneTools 深拷贝工具列表
func CloneTools(tools []Tool) []Tool {
	if tools == nil {
		return nil
	}
	out := make([]Tool, len(tools))
	for i := range tools {
		out[i] = tools[i].Clone()
	}
	return out
}

// ToolCategoryData 分类元数据
type ToolCategoryData struct {
	ID          ToolCategory `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Description string       `json:"description" yaml:"description"`
	Icon        string       `json:"icon" yaml:"icon"`
	Weight      int          `json:"weight" yaml:"weight"`
}

// CategoryCount 单个分类的上线工具数
type CategoryCount struct {
	Category ToolCategoryData `json:"category"`
	Count    int              `json:"count"`
}

// ToolStats 工具统计
type ToolStats struct {
	Total      int             `json:"total"`
	Featured   int             `json:"featured"`
	Categories []CategoryCount `json:"categories"`
}
