package tool

import "github.com/ashwinyue/toolhub/internal/model"

// CategoryOption 分类下拉选项
type CategoryOption struct {
	Value       model.ToolCategory `json:"value"`
	Label       string             `json:"label"`
	Description string             `json:"description"`
}

var categoryOptions = []CategoryOption{
	{Value: model.CategoryDevelopment, Label: "开发工具", Description: "编程和开发相关工具"},
	{Value: model.CategoryDesign, Label: "设计工具", Description: "UI/UX设计和图形设计工具"},
	{Value: model.CategoryProductivity, Label: "生产力工具", Description: "提升工作效率的工具"},
	{Value: model.CategoryLearning, Label: "学习工具", Description: "在线学习和教育工具"},
	{Value: model.CategoryUtilities, Label: "实用工具", Description: "各种实用小工具"},
	{Value: model.CategoryCommunication, Label: "沟通工具", Description: "团队沟通和协作工具"},
	{Value: model.CategoryMedia, Label: "媒体工具", Description: "音视频和多媒体工具"},
	{Value: model.CategorySecurity, Label: "安全工具", Description: "网络安全和隐私保护工具"},
}

// CategoryOptions 管理界面使用的分类选项
func CategoryOptions() []CategoryOption {
	return append([]CategoryOption(nil), categoryOptions...)
}

// CategoryLabel 分类显示名，未知分类返回原值
func CategoryLabel(category model.ToolCategory) string {
	for _, opt := range categoryOptions {
		if opt.Value == category {
			return opt.Label
		}
	}
	return string(category)
}

// DefaultToolTemplate 新建工具表单的默认值
func DefaultToolTemplate() ToolInput {
	weight := 50
	return ToolInput{
		Category: model.CategoryDevelopment,
		Status:   model.StatusActive,
		Tags:     []string{},
		Weight:   &weight,
	}
}
