package model

// TrendDirection 趋势方向
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// Impact 影响程度
type Impact string

const (
	ImpactHigh   Impact = "high"
	ImpactMedium Impact = "medium"
	ImpactLow    Impact = "low"
)

// FeatureStatus 规划功能状态
type FeatureStatus string

const (
	FeatureDeveloping  FeatureStatus = "开发中"
	FeatureTesting     FeatureStatus = "测试中"
	FeaturePlanned     FeatureStatus = "规划中"
	FeatureResearching FeatureStatus = "调研中"
)

// Priority 优先级
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
)

// Author 文章作者
type Author struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// NewsArticle 资讯文章
type NewsArticle struct {
	ID       int      `json:"id"`
	Title    string   `json:"title"`
	Summary  string   `json:"summary"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
	Date     string   `json:"date"`
	ReadTime string   `json:"readTime"`
	Featured bool     `json:"featured"`
	Image    string   `json:"image"`
	Author   Author   `json:"author"`
}

// TechTrend 技术趋势
type TechTrend struct {
	ID       int            `json:"id"`
	Title    string         `json:"title"`
	Summary  string         `json:"summary"`
	Trend    TrendDirection `json:"trend"`
	Impact   Impact         `json:"impact"`
	Category string         `json:"category"`
}

// UpcomingFeature 即将上线的功能
type UpcomingFeature struct {
	ID           int           `json:"id"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	Status       FeatureStatus `json:"status"`
	ExpectedDate string        `json:"expectedDate"`
	Priority     Priority      `json:"priority"`
}
