package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"

	"github.com/ashwinyue/toolhub/internal/config"
)

func TestNewGormLogger(t *testing.T) {
	tests := []struct {
		name  string
		debug bool
		log   func(l gormlogger.Interface)
		want  int
	}{
		{
			name:  "info logged in debug",
			debug: true,
			log: func(l gormlogger.Interface) {
				l.Info(context.Background(), "migrated %s", "tools")
			},
			want: 1,
		},
		{
			name: "info dropped otherwise",
			log: func(l gormlogger.Interface) {
				l.Info(context.Background(), "migrated %s", "tools")
			},
			want: 0,
		},
		{
			name: "warn always logged",
			log: func(l gormlogger.Interface) {
				l.Warn(context.Background(), "slow %s", "query")
			},
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			core, logs := observer.New(zap.InfoLevel)
			tt.log(newGormLogger(zap.New(core), tt.debug))
			assert.Equal(t, tt.want, logs.Len())
			for _, entry := range logs.All() {
				assert.Equal(t, "gorm", entry.LoggerName)
			}
		})
	}
}

func TestNew_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err := New(ctx, config.DatabaseConfig{
		Host:    "127.0.0.1",
		Port:    1,
		User:    "postgres",
		DBName:  "toolhub",
		SSLMode: "disable",
	}, false, nil)
	assert.Error(t, err)
}
