package data

import "github.com/ashwinyue/toolhub/internal/model"

// Categories 分类种子数据
var Categories = []model.ToolCategoryData{
	{ID: model.CategoryDevelopment, Name: "开发工具", Description: "提升开发效率的工具集合", Icon: "💻", Weight: 100},
	{ID: model.CategoryDesign, Name: "设计工具", Description: "设计和创意相关工具", Icon: "🎨", Weight: 90},
	{ID: model.CategoryProductivity, Name: "生产力工具", Description: "提升工作效率的应用", Icon: "⚡", Weight: 80},
	{ID: model.CategoryLearning, Name: "学习工具", Description: "学习和教育相关工具", Icon: "📚", Weight: 70},
	{ID: model.CategoryUtilities, Name: "实用工具", Description: "各种实用小工具", Icon: "🔧", Weight: 60},
	{ID: model.CategoryCommunication, Name: "沟通工具", Description: "团队协作和沟通工具", Icon: "💬", Weight: 50},
	{ID: model.CategoryMedia, Name: "媒体工具", Description: "音视频和图像处理工具", Icon: "🎬", Weight: 40},
	{ID: model.CategorySecurity, Name: "安全工具", Description: "网络安全和隐私保护工具", Icon: "🔒", Weight: 30},
}
