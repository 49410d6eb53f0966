// Package news 管理资讯、技术趋势和规划功能三类内容
package news

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/model"
)

// Manager 内容管理器
// 三类内容相互独立：各自懒加载，一个数据源失败不会清空其他集合
type Manager struct {
	articles *collection[model.NewsArticle]
	trends   *collection[model.TechTrend]
	features *collection[model.UpcomingFeature]
}

// NewManager 创建内容管理器
func NewManager(source Source, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		articles: &collection[model.NewsArticle]{
			kind:   KindNews,
			source: source,
			logger: logger,
			getID:  func(a *model.NewsArticle) int { return a.ID },
			setID:  func(a *model.NewsArticle, id int) { a.ID = id },
			clone: func(a model.NewsArticle) model.NewsArticle {
				if a.Tags != nil {
					a.Tags = append([]string(nil), a.Tags...)
				}
				return a
			},
		},
		trends: &collection[model.TechTrend]{
			kind:   KindTrends,
			source: source,
			logger: logger,
			getID:  func(t *model.TechTrend) int { return t.ID },
			setID:  func(t *model.TechTrend, id int) { t.ID = id },
			clone:  func(t model.TechTrend) model.TechTrend { return t },
		},
		features: &collection[model.UpcomingFeature]{
			kind:   KindFeatures,
			source: source,
			logger: logger,
			getID:  func(f *model.UpcomingFeature) int { return f.ID },
			setID:  func(f *model.UpcomingFeature, id int) { f.ID = id },
			clone:  func(f model.UpcomingFeature) model.UpcomingFeature { return f },
		},
	}
}

// Reload 重新从数据源加载指定集合，未保存的修改会丢失
func (m *Manager) Reload(kind Kind) error {
	switch kind {
	case KindNews:
		return m.articles.reload()
	case KindTrends:
		return m.trends.reload()
	case KindFeatures:
		return m.features.reload()
	}
	return fmt.Errorf("unknown content kind: %s", kind)
}

// ========== 资讯 ==========

// NewsFilter 资讯筛选条件，零值表示不过滤
type NewsFilter struct {
	Category string
	Featured *bool
}

// GetNewsArticles 获取全部资讯
func (m *Manager) GetNewsArticles() []model.NewsArticle {
	return m.articles.list()
}

// ListNewsArticles 按条件筛选资讯，保持原有顺序
func (m *Manager) ListNewsArticles(filter NewsFilter) []model.NewsArticle {
	out := []model.NewsArticle{}
	for _, a := range m.articles.list() {
		if filter.Category != "" && a.Category != filter.Category {
			continue
		}
		if filter.Featured != nil && a.Featured != *filter.Featured {
			continue
		}
		out = append(out, a)
	}
	return out
}

// GetNewsArticleByID 根据ID获取资讯
func (m *Manager) GetNewsArticleByID(id int) (model.NewsArticle, bool) {
	return m.articles.get(id)
}

// CreateNewsArticle 创建资讯，传入的ID会被忽略
func (m *Manager) CreateNewsArticle(article model.NewsArticle) model.NewsArticle {
	return m.articles.create(article)
}

// UpdateNewsArticle 用 JSON 补丁更新资讯
func (m *Manager) UpdateNewsArticle(id int, patch []byte) (model.NewsArticle, bool, error) {
	return m.articles.update(id, patch)
}

// DeleteNewsArticle 删除资讯
func (m *Manager) DeleteNewsArticle(id int) bool {
	return m.articles.remove(id)
}

// ========== 技术趋势 ==========

// GetTechTrends 获取全部技术趋势
func (m *Manager) GetTechTrends() []model.TechTrend {
	return m.trends.list()
}

// GetTechTrendByID 根据ID获取技术趋势
func (m *Manager) GetTechTrendByID(id int) (model.TechTrend, bool) {
	return m.trends.get(id)
}

// CreateTechTrend 创建技术趋势
func (m *Manager) CreateTechTrend(trend model.TechTrend) model.TechTrend {
	return m.trends.create(trend)
}

// UpdateTechTrend 用 JSON 补丁更新技术趋势
func (m *Manager) UpdateTechTrend(id int, patch []byte) (model.TechTrend, bool, error) {
	return m.trends.update(id, patch)
}

// DeleteTechTrend 删除技术趋势
func (m *Manager) DeleteTechTrend(id int) bool {
	return m.trends.remove(id)
}

// ========== 规划功能 ==========

// GetUpcomingFeatures 获取全部规划功能
func (m *Manager) GetUpcomingFeatures() []model.UpcomingFeature {
	return m.features.list()
}

// GetUpcomingFeatureByID 根据ID获取规划功能
func (m *Manager) GetUpcomingFeatureByID(id int) (model.UpcomingFeature, bool) {
	return m.features.get(id)
}

// CreateUpcomingFeature 创建规划功能
func (m *Manager) CreateUpcomingFeature(feature model.UpcomingFeature) model.UpcomingFeature {
	return m.features.create(feature)
}

// UpdateUpcomingFeature 用 JSON 补丁更新规划功能
func (m *Manager) UpdateUpcomingFeature(id int, patch []byte) (model.UpcomingFeature, bool, error) {
	return m.features.update(id, patch)
}

// DeleteUpcomingFeature 删除规划功能
func (m *Manager) DeleteUpcomingFeature(id int) bool {
	return m.features.remove(id)
}
