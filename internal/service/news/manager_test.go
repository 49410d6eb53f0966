package news

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ashwinyue/toolhub/internal/model"
)

// mapSource 测试用数据源
type mapSource struct {
	docs  map[Kind]string
	errs  map[Kind]error
	loads map[Kind]int
}

func newMapSource() *mapSource {
	return &mapSource{docs: map[Kind]string{}, errs: map[Kind]error{}, loads: map[Kind]int{}}
}

func (s *mapSource) Load(kind Kind) ([]byte, error) {
	s.loads[kind]++
	if err := s.errs[kind]; err != nil {
		return nil, err
	}
	return []byte(s.docs[kind]), nil
}

const (
	articlesJSON = `[{"id":1,"title":"a","category":"AI","featured":true,"tags":["x"]},{"id":4,"title":"b","category":"设计"}]`
	trendsJSON   = `[{"id":2,"title":"t","trend":"up","impact":"high"}]`
	featuresJSON = `[{"id":1,"title":"f","status":"开发中","priority":"high"}]`
)

func fullSource() *mapSource {
	s := newMapSource()
	s.docs[KindNews] = articlesJSON
	s.docs[KindTrends] = trendsJSON
	s.docs[KindFeatures] = featuresJSON
	return s
}

// ========== 懒加载 ==========

func TestManager_LazyHydration(t *testing.T) {
	src := fullSource()
	m := NewManager(src, nil)

	assert.Zero(t, src.loads[KindNews])

	assert.Len(t, m.GetNewsArticles(), 2)
	assert.Len(t, m.GetNewsArticles(), 2)
	assert.Equal(t, 1, src.loads[KindNews])
	assert.Zero(t, src.loads[KindTrends], "other collections load independently")
}

func TestManager_FailureIsolated(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	src := fullSource()
	src.errs[KindTrends] = errors.New("disk on fire")
	m := NewManager(src, zap.New(core))

	assert.Empty(t, m.GetTechTrends())
	assert.NotNil(t, m.GetTechTrends())
	assert.Len(t, m.GetNewsArticles(), 2)
	assert.Len(t, m.GetUpcomingFeatures(), 1)
	assert.Equal(t, 1, logs.FilterMessage("failed to load content data").Len())
	assert.Equal(t, 1, src.loads[KindTrends], "failed load is not retried implicitly")
}

func TestManager_MalformedJSONIsRepaired(t *testing.T) {
	src := fullSource()
	src.docs[KindNews] = `[{"id": 1, "title": "trailing comma",},]`
	m := NewManager(src, nil)

	articles := m.GetNewsArticles()
	require.Len(t, articles, 1)
	assert.Equal(t, "trailing comma", articles[0].Title)
}

func TestManager_Reload(t *testing.T) {
	src := fullSource()
	m := NewManager(src, nil)

	m.CreateTechTrend(model.TechTrend{Title: "local"})
	assert.Len(t, m.GetTechTrends(), 2)

	require.NoError(t, m.Reload(KindTrends))
	assert.Len(t, m.GetTechTrends(), 1)

	src.errs[KindTrends] = errors.New("gone")
	assert.Error(t, m.Reload(KindTrends))
	assert.Empty(t, m.GetTechTrends())

	assert.Error(t, m.Reload("unknown"))
}

// ========== 增删改查 ==========

func TestManager_CreateUsesNextID(t *testing.T) {
	m := NewManager(fullSource(), nil)

	created := m.CreateNewsArticle(model.NewsArticle{ID: 99, Title: "new"})
	assert.Equal(t, 5, created.ID)

	got, ok := m.GetNewsArticleByID(5)
	require.True(t, ok)
	assert.Equal(t, "new", got.Title)
}

func TestManager_IDsNotReusedAfterDelete(t *testing.T) {
	m := NewManager(fullSource(), nil)

	created := m.CreateUpcomingFeature(model.UpcomingFeature{Title: "second"})
	assert.Equal(t, 2, created.ID)
	require.True(t, m.DeleteUpcomingFeature(2))

	again := m.CreateUpcomingFeature(model.UpcomingFeature{Title: "third"})
	assert.Equal(t, 3, again.ID)
}

func TestManager_CreateOnEmptyCollection(t *testing.T) {
	src := newMapSource()
	src.errs[KindFeatures] = errors.New("missing")
	m := NewManager(src, nil)

	created := m.CreateUpcomingFeature(model.UpcomingFeature{Title: "first"})
	assert.Equal(t, 1, created.ID)
	assert.Len(t, m.GetUpcomingFeatures(), 1)
}

func TestManager_Update(t *testing.T) {
	m := NewManager(fullSource(), nil)

	updated, found, err := m.UpdateNewsArticle(1, []byte(`{"title":"renamed","id":42}`))
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "renamed", updated.Title)
	assert.Equal(t, "AI", updated.Category, "unset fields are kept")

	_, found, err = m.UpdateNewsArticle(100, []byte(`{"title":"x"}`))
	assert.NoError(t, err)
	assert.False(t, found)

	_, found, err = m.UpdateTechTrend(2, []byte(`{not json`))
	assert.True(t, found)
	assert.Error(t, err)
	trend, _ := m.GetTechTrendByID(2)
	assert.Equal(t, "t", trend.Title)
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(fullSource(), nil)

	assert.True(t, m.DeleteTechTrend(2))
	assert.False(t, m.DeleteTechTrend(2))
	_, ok := m.GetTechTrendByID(2)
	assert.False(t, ok)
}

func TestManager_ListNewsArticles(t *testing.T) {
	m := NewManager(fullSource(), nil)
	featured := true

	assert.Len(t, m.ListNewsArticles(NewsFilter{}), 2)
	assert.Len(t, m.ListNewsArticles(NewsFilter{Category: "AI"}), 1)
	assert.Len(t, m.ListNewsArticles(NewsFilter{Featured: &featured}), 1)
	assert.Empty(t, m.ListNewsArticles(NewsFilter{Category: "none"}))
}

func TestManager_ReturnsCopies(t *testing.T) {
	m := NewManager(fullSource(), nil)

	a, _ := m.GetNewsArticleByID(1)
	a.Tags[0] = "changed"

	again, _ := m.GetNewsArticleByID(1)
	assert.Equal(t, "x", again.Tags[0])
}

// ========== 数据源 ==========

func TestEmbeddedSource(t *testing.T) {
	m := NewManager(EmbeddedSource(), nil)

	assert.NotEmpty(t, m.GetNewsArticles())
	assert.NotEmpty(t, m.GetTechTrends())
	assert.NotEmpty(t, m.GetUpcomingFeatures())
}

func TestDirSource(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(DirSource{Dir: dir}, nil)

	// 目录为空时三个集合都为空，但不会 panic
	assert.Empty(t, m.GetNewsArticles())
	assert.Empty(t, m.GetTechTrends())
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"news", KindNews, true},
		{"trends", KindTrends, true},
		{"upcoming-features", KindFeatures, true},
		{"other", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		assert.Equal(t, tt.want, got, tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
	}
}
