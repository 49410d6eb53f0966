package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/config"
)

const defaultConfigPath = "./configs/config.yaml"

type rootOptions struct {
	configPath string
}

func newRootCmd(logger *zap.Logger) *cobra.Command {
	opts := rootOptions{
		configPath: os.Getenv("CONFIG_PATH"),
	}

	root := &cobra.Command{
		Use:           "toolhub",
		Short:         "Tool directory service with an admin content API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", opts.configPath, "path to config file (default ./configs/config.yaml when present)")

	root.AddCommand(
		newServeCmd(logger, &opts),
		newExportCmd(&opts),
		newValidateCmd(),
	)

	return root
}

// loadConfig 未指定配置文件且默认文件不存在时只使用默认值和环境变量
func (o *rootOptions) loadConfig() (*config.Config, error) {
	path := o.configPath
	if path == "" {
		if _, err := os.Stat(defaultConfigPath); err == nil {
			path = defaultConfigPath
		}
	}
	return config.Load(path)
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
