package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/config"
	"github.com/ashwinyue/toolhub/internal/data"
	"github.com/ashwinyue/toolhub/internal/metrics"
	"github.com/ashwinyue/toolhub/internal/model"
	"github.com/ashwinyue/toolhub/internal/repository"
	"github.com/ashwinyue/toolhub/internal/service/auth"
	"github.com/ashwinyue/toolhub/internal/service/catalog"
	"github.com/ashwinyue/toolhub/internal/service/event"
	"github.com/ashwinyue/toolhub/internal/service/news"
	"github.com/ashwinyue/toolhub/internal/service/session"
	"github.com/ashwinyue/toolhub/internal/service/snapshot"
	"github.com/ashwinyue/toolhub/internal/service/tool"
)

// Services 服务集合
type Services struct {
	// 业务服务
	Tools    *tool.Manager
	Catalog  *catalog.Live
	News     *news.Manager
	Auth     *auth.Service
	Sessions *session.Manager

	// 可选组件，未配置时为 nil
	Events   *event.Service
	Snapshot *snapshot.Syncer

	Config *config.Config
}

// Dependencies 外部依赖，均可为空
type Dependencies struct {
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
	Store      repository.ToolStore
	Publisher  event.Publisher
	NewsSource news.Source
	// Redis 用于共享已注销的登录令牌
	Redis redis.UniversalClient
}

// NewServices 创建所有服务并挂接工具管理器的监听器
func NewServices(ctx context.Context, cfg *config.Config, deps Dependencies) (*Services, error) {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	seed, err := LoadSeed(cfg.Catalog)
	if err != nil {
		return nil, err
	}

	var syncer *snapshot.Syncer
	restored := false
	if deps.Store != nil {
		syncer = snapshot.NewSyncer(deps.Store, logger.Named("snapshot"))
		if cfg.Database.Restore {
			tools, ok, err := syncer.Restore(ctx)
			if err != nil {
				return nil, err
			}
			if ok {
				seed = tools
				restored = true
				logger.Info("restored tools from snapshot", zap.Int("count", len(tools)))
			}
		}
	}

	tools := tool.NewManager(seed, tool.WithLogger(logger.Named("tool")))
	live := catalog.NewLive(seed, data.SeedCategories())

	sessions := session.NewManager(deps.Redis)
	svc := &Services{
		Tools:    tools,
		Catalog:  live,
		News:     news.NewManager(newsSource(cfg.News, deps.NewsSource), logger.Named("news")),
		Auth:     auth.NewService(cfg.Admin, sessions),
		Snapshot: syncer,
		Sessions: sessions,
		Config:   cfg,
	}

	if cfg.Catalog.LiveUpdates {
		tools.AddListener(live.Replace)
	}
	if deps.Metrics != nil {
		deps.Metrics.SetCatalogSize(seed)
		tools.AddListener(deps.Metrics.OnCatalogChanged)
	}
	if syncer != nil {
		if !restored {
			syncer.OnCatalogChanged(seed)
		}
		tools.AddListener(syncer.OnCatalogChanged)
	}
	if deps.Publisher != nil {
		events, err := event.NewService(deps.Publisher, logger.Named("event"))
		if err != nil {
			return nil, err
		}
		svc.Events = events
		tools.AddListener(events.OnCatalogChanged)
	}

	return svc, nil
}

// LoadSeed 读取种子数据，未配置文件时使用内置数据
func LoadSeed(cfg config.CatalogConfig) ([]model.Tool, error) {
	if cfg.ToolsFile == "" {
		return data.SeedTools(), nil
	}
	tools, err := data.LoadToolsFile(cfg.ToolsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load tools file: %w", err)
	}
	return tools, nil
}

func newsSource(cfg config.NewsConfig, override news.Source) news.Source {
	if override != nil {
		return override
	}
	if cfg.DataDir != "" {
		return news.DirSource{Dir: cfg.DataDir}
	}
	return news.EmbeddedSource()
}
