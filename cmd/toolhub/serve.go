package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/config"
	"github.com/ashwinyue/toolhub/internal/database"
	"github.com/ashwinyue/toolhub/internal/handler"
	"github.com/ashwinyue/toolhub/internal/logger"
	"github.com/ashwinyue/toolhub/internal/metrics"
	"github.com/ashwinyue/toolhub/internal/repository"
	"github.com/ashwinyue/toolhub/internal/router"
	"github.com/ashwinyue/toolhub/internal/service"
	"github.com/ashwinyue/toolhub/internal/service/event"
)

func newServeCmd(bootstrap *zap.Logger, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			cfg, err := opts.loadConfig()
			if err != nil {
				return err
			}

			log, err := logger.New(cfg.Log)
			if err != nil {
				bootstrap.Warn("falling back to default logger", zap.Error(err))
				log = bootstrap
			}
			defer func() { _ = log.Sync() }()

			return serve(ctx, cfg, log)
		},
	}
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	gin.SetMode(cfg.Server.Mode)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps := service.Dependencies{
		Logger:  log,
		Metrics: metrics.New(registry),
	}

	// 初始化数据库
	if cfg.Database.Enabled {
		db, err := database.New(ctx, cfg.Database, cfg.App.Debug, log)
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()

		repos := repository.NewRepositories(db.DB)
		deps.Store = repos.Tool
		log.Info("database connected", zap.String("dbname", cfg.Database.DBName))
	}

	// 初始化 Redis
	if cfg.Redis.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.GetAddr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() { _ = redisClient.Close() }()

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := redisClient.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			return fmt.Errorf("failed to connect redis: %w", err)
		}

		deps.Redis = redisClient
		deps.Publisher = event.NewRedisPublisher(redisClient, cfg.Redis.Channel, cfg.Redis.HistoryKey, cfg.Redis.HistorySize)
		log.Info("redis connected", zap.String("addr", cfg.Redis.GetAddr()))
	}

	services, err := service.NewServices(ctx, cfg, deps)
	if err != nil {
		return fmt.Errorf("failed to init services: %w", err)
	}
	handlers := handler.NewHandlers(services)

	if cfg.Admin.Enabled && cfg.App.IsProduction() && cfg.Admin.Token == "" {
		log.Warn("admin is enabled in production without admin.token, every admin request will be rejected")
	}

	r := router.SetupRouter(handlers, router.Options{
		Logger:         log,
		Metrics:        deps.Metrics,
		Gatherer:       registry,
		AdminEnabled:   cfg.Admin.Enabled,
		StrictAdmin:    cfg.App.IsProduction(),
		TokenValidator: services.Auth,
	})

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("environment", cfg.App.Environment),
			zap.Bool("admin", cfg.Admin.Enabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	// 优雅关闭
	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("server exited")
	return nil
}
