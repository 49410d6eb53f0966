package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/ashwinyue/toolhub/internal/config"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.LogConfig
		enabled zapcore.Level
		wantErr bool
	}{
		{name: "default level", cfg: config.LogConfig{}, enabled: zapcore.InfoLevel},
		{name: "debug development", cfg: config.LogConfig{Level: "debug", Development: true}, enabled: zapcore.DebugLevel},
		{name: "warn", cfg: config.LogConfig{Level: "warn"}, enabled: zapcore.WarnLevel},
		{name: "invalid", cfg: config.LogConfig{Level: "loud"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.enabled))
			if tt.enabled > zapcore.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.enabled-1))
			}
		})
	}
}
