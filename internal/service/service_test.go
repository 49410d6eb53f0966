package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashwinyue/toolhub/internal/config"
	"github.com/ashwinyue/toolhub/internal/data"
	"github.com/ashwinyue/toolhub/internal/metrics"
	"github.com/ashwinyue/toolhub/internal/model"
	"github.com/ashwinyue/toolhub/internal/service/event"
	"github.com/ashwinyue/toolhub/internal/service/tool"
)

type memoryStore struct {
	rows   []model.Tool
	writes int
}

func (s *memoryStore) ReplaceAll(_ context.Context, tools []model.Tool) error {
	s.rows = append([]model.Tool(nil), tools...)
	s.writes++
	return nil
}

func (s *memoryStore) List(context.Context) ([]model.Tool, error) {
	return s.rows, nil
}

func newInput(name string) tool.ToolInput {
	return tool.ToolInput{
		Name:     name,
		URL:      "https://example.com",
		Category: model.CategoryUtilities,
		Status:   model.StatusActive,
		Tags:     []string{"x"},
	}
}

func TestNewServices_Defaults(t *testing.T) {
	svc, err := NewServices(context.Background(), &config.Config{}, Dependencies{})
	require.NoError(t, err)

	assert.Len(t, svc.Tools.GetAllTools(), len(data.Tools))
	assert.Len(t, svc.Catalog.Current().GetAllTools(), len(data.Tools))
	assert.NotEmpty(t, svc.News.GetNewsArticles())
	assert.Nil(t, svc.Events)
	assert.Nil(t, svc.Snapshot)
}

func TestNewServices_LiveUpdates(t *testing.T) {
	tests := []struct {
		name        string
		liveUpdates bool
		wantDelta   int
	}{
		{name: "static catalog", liveUpdates: false, wantDelta: 0},
		{name: "live catalog", liveUpdates: true, wantDelta: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{Catalog: config.CatalogConfig{LiveUpdates: tt.liveUpdates}}
			svc, err := NewServices(context.Background(), cfg, Dependencies{})
			require.NoError(t, err)

			before := len(svc.Catalog.Current().GetAllTools())
			svc.Tools.AddTool(newInput("Brand New"))
			assert.Equal(t, before+tt.wantDelta, len(svc.Catalog.Current().GetAllTools()))

			// 种子数据不受影响
			assert.Len(t, data.SeedTools(), len(data.Tools))
		})
	}
}

func TestNewServices_ListenersWired(t *testing.T) {
	store := &memoryStore{}
	var published []*event.Event
	publisher := event.PublisherFunc(func(_ context.Context, evt *event.Event) error {
		published = append(published, evt)
		return nil
	})
	registry := prometheus.NewRegistry()

	svc, err := NewServices(context.Background(), &config.Config{}, Dependencies{
		Metrics:   metrics.New(registry),
		Store:     store,
		Publisher: publisher,
	})
	require.NoError(t, err)
	require.NotNil(t, svc.Events)
	require.NotNil(t, svc.Snapshot)

	// 启动时镜像一次种子
	assert.Equal(t, 1, store.writes)

	added := svc.Tools.AddTool(newInput("Mirror Me"))
	assert.Equal(t, 2, store.writes)
	assert.Equal(t, len(data.Tools)+1, len(store.rows))
	require.Len(t, published, 1)
	assert.Equal(t, event.EventCatalogChanged, published[0].EventType)
	assert.Equal(t, len(data.Tools)+1, published[0].ToolCount)

	require.True(t, svc.Tools.DeleteTool(added.ID))
	assert.Equal(t, 3, store.writes)
	assert.Len(t, published, 2)
}

func TestNewServices_Restore(t *testing.T) {
	store := &memoryStore{rows: []model.Tool{{ID: "only", Name: "Only", Status: model.StatusActive}}}
	cfg := &config.Config{Database: config.DatabaseConfig{Restore: true}}

	svc, err := NewServices(context.Background(), cfg, Dependencies{Store: store})
	require.NoError(t, err)

	all := svc.Tools.GetAllTools()
	require.Len(t, all, 1)
	assert.Equal(t, "only", all[0].ID)
	// 恢复的数据不需要再写回
	assert.Equal(t, 0, store.writes)
}

func TestNewServices_ToolsFile(t *testing.T) {
	raw, err := data.MarshalTools([]model.Tool{{ID: "a", Name: "A", Status: model.StatusActive}})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "tools.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	svc, err := NewServices(context.Background(), &config.Config{Catalog: config.CatalogConfig{ToolsFile: path}}, Dependencies{})
	require.NoError(t, err)
	assert.Len(t, svc.Tools.GetAllTools(), 1)

	_, err = NewServices(context.Background(), &config.Config{Catalog: config.CatalogConfig{ToolsFile: path + ".missing"}}, Dependencies{})
	assert.Error(t, err)
}
