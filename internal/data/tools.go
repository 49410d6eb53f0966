package data

import "github.com/ashwinyue/toolhub/internal/model"

// SeedTimestamp 种子数据的统一时间戳（毫秒）
const SeedTimestamp int64 = 1735689600000

// Tools 工具种子数据
var Tools = []model.Tool{
	{
		ID:          "github-copilot",
		Name:        "GitHub Copilot",
		Description: "AI驱动的代码补全工具",
		Icon:        "https://github.githubassets.com/images/modules/site/copilot/copilot.png",
		URL:         "https://github.com/features/copilot",
		Category:    model.CategoryDevelopment,
		Status:      model.StatusActive,
		Tags:        []string{"AI", "代码补全", "开发效率"},
		Featured:    true,
		Weight:      100,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "vscode",
		Name:        "Visual Studio Code",
		Description: "轻量级但功能强大的代码编辑器",
		Icon:        "https://code.visualstudio.com/assets/images/code-stable.png",
		URL:         "https://code.visualstudio.com/",
		Category:    model.CategoryDevelopment,
		Status:      model.StatusActive,
		Tags:        []string{"编辑器", "IDE", "开发环境"},
		Featured:    true,
		Weight:      95,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "postman",
		Name:        "Postman",
		Description: "API开发和测试平台",
		Icon:        "https://www.postman.com/favicon.ico",
		URL:         "https://www.postman.com/",
		Category:    model.CategoryDevelopment,
		Status:      model.StatusActive,
		Tags:        []string{"API", "测试", "开发"},
		Featured:    false,
		Weight:      85,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "vercel",
		Name:        "Vercel",
		Description: "前端部署和托管平台",
		Icon:        "https://vercel.com/favicon.ico",
		URL:         "https://vercel.com/",
		Category:    model.CategoryDevelopment,
		Status:      model.StatusActive,
		Tags:        []string{"部署", "托管", "前端"},
		Featured:    true,
		Weight:      90,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "figma",
		Name:        "Figma",
		Description: "协作式界面设计工具",
		Icon:        "https://www.figma.com/favicon.ico",
		URL:         "https://www.figma.com/",
		Category:    model.CategoryDesign,
		Status:      model.StatusActive,
		Tags:        []string{"设计", "UI", "协作"},
		Featured:    true,
		Weight:      100,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "canva",
		Name:        "Canva",
		Description: "在线图形设计平台",
		Icon:        "https://www.canva.com/favicon.ico",
		URL:         "https://www.canva.com/",
		Category:    model.CategoryDesign,
		Status:      model.StatusActive,
		Tags:        []string{"设计", "图形", "模板"},
		Featured:    true,
		Weight:      90,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "excalidraw",
		Name:        "Excalidraw",
		Description: "手绘风格的白板工具",
		Icon:        "https://excalidraw.com/favicon.ico",
		URL:         "https://excalidraw.com/",
		Category:    model.CategoryDesign,
		Status:      model.StatusActive,
		Tags:        []string{"白板", "手绘", "协作"},
		Featured:    false,
		Weight:      80,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "notion",
		Name:        "Notion",
		Description: "一体化工作空间",
		Icon:        "https://www.notion.so/favicon.ico",
		URL:         "https://www.notion.so/",
		Category:    model.CategoryProductivity,
		Status:      model.StatusActive,
		Tags:        []string{"笔记", "协作", "项目管理"},
		Featured:    true,
		Weight:      100,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "obsidian",
		Name:        "Obsidian",
		Description: "知识管理和笔记应用",
		Icon:        "https://obsidian.md/favicon.ico",
		URL:         "https://obsidian.md/",
		Category:    model.CategoryProductivity,
		Status:      model.StatusActive,
		Tags:        []string{"笔记", "知识管理", "Markdown"},
		Featured:    true,
		Weight:      95,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "todoist",
		Name:        "Todoist",
		Description: "任务管理和待办事项应用",
		Icon:        "https://todoist.com/favicon.ico",
		URL:         "https://todoist.com/",
		Category:    model.CategoryProductivity,
		Status:      model.StatusActive,
		Tags:        []string{"任务管理", "待办事项", "GTD"},
		Featured:    false,
		Weight:      85,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "khan-academy",
		Name:        "Khan Academy",
		Description: "免费在线教育平台",
		Icon:        "https://www.khanacademy.org/favicon.ico",
		URL:         "https://www.khanacademy.org/",
		Category:    model.CategoryLearning,
		Status:      model.StatusActive,
		Tags:        []string{"教育", "学习", "免费"},
		Featured:    true,
		Weight:      90,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "coursera",
		Name:        "Coursera",
		Description: "在线课程学习平台",
		Icon:        "https://www.coursera.org/favicon.ico",
		URL:         "https://www.coursera.org/",
		Category:    model.CategoryLearning,
		Status:      model.StatusActive,
		Tags:        []string{"在线课程", "教育", "职业发展"},
		Featured:    false,
		Weight:      85,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "tiny-png",
		Name:        "TinyPNG",
		Description: "在线图片压缩工具",
		Icon:        "https://tinypng.com/favicon.ico",
		URL:         "https://tinypng.com/",
		Category:    model.CategoryUtilities,
		Status:      model.StatusActive,
		Tags:        []string{"图片压缩", "优化", "Web性能"},
		Featured:    true,
		Weight:      90,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "remove-bg",
		Name:        "Remove.bg",
		Description: "自动背景移除工具",
		Icon:        "https://www.remove.bg/favicon.ico",
		URL:         "https://www.remove.bg/",
		Category:    model.CategoryUtilities,
		Status:      model.StatusActive,
		Tags:        []string{"图片处理", "背景移除", "AI"},
		Featured:    false,
		Weight:      85,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "qr-code-generator",
		Name:        "QR Code Generator",
		Description: "免费QR码生成器",
		Icon:        "https://www.qr-code-generator.com/favicon.ico",
		URL:         "https://www.qr-code-generator.com/",
		Category:    model.CategoryUtilities,
		Status:      model.StatusActive,
		Tags:        []string{"QR码", "生成器", "实用工具"},
		Featured:    false,
		Weight:      75,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "slack",
		Name:        "Slack",
		Description: "团队沟通和协作平台",
		Icon:        "https://slack.com/favicon.ico",
		URL:         "https://slack.com/",
		Category:    model.CategoryCommunication,
		Status:      model.StatusActive,
		Tags:        []string{"团队沟通", "协作", "即时通讯"},
		Featured:    true,
		Weight:      95,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "zoom",
		Name:        "Zoom",
		Description: "视频会议和网络会议平台",
		Icon:        "https://zoom.us/favicon.ico",
		URL:         "https://zoom.us/",
		Category:    model.CategoryCommunication,
		Status:      model.StatusActive,
		Tags:        []string{"视频会议", "远程会议", "协作"},
		Featured:    false,
		Weight:      90,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "loom",
		Name:        "Loom",
		Description: "屏幕录制和视频消息工具",
		Icon:        "https://www.loom.com/favicon.ico",
		URL:         "https://www.loom.com/",
		Category:    model.CategoryMedia,
		Status:      model.StatusActive,
		Tags:        []string{"屏幕录制", "视频消息", "演示"},
		Featured:    true,
		Weight:      85,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "canva-video",
		Name:        "Canva Video",
		Description: "在线视频编辑工具",
		Icon:        "https://www.canva.com/favicon.ico",
		URL:         "https://www.canva.com/video-editor/",
		Category:    model.CategoryMedia,
		Status:      model.StatusActive,
		Tags:        []string{"视频编辑", "在线工具", "模板"},
		Featured:    false,
		Weight:      80,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "1password",
		Name:        "1Password",
		Description: "密码管理器和安全工具",
		Icon:        "https://1password.com/favicon.ico",
		URL:         "https://1password.com/",
		Category:    model.CategorySecurity,
		Status:      model.StatusActive,
		Tags:        []string{"密码管理", "安全", "隐私保护"},
		Featured:    true,
		Weight:      95,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
	{
		ID:          "nord-vpn",
		Name:        "NordVPN",
		Description: "虚拟私人网络服务",
		Icon:        "https://nordvpn.com/favicon.ico",
		URL:         "https://nordvpn.com/",
		Category:    model.CategorySecurity,
		Status:      model.StatusActive,
		Tags:        []string{"VPN", "隐私保护", "网络安全"},
		Featured:    false,
		Weight:      85,
		CreatedAt:   SeedTimestamp,
		UpdatedAt:   SeedTimestamp,
	},
}
