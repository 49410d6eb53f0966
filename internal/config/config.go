package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 应用配置
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Admin    AdminConfig
	Catalog  CatalogConfig
	News     NewsConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Log      LogConfig
}

// AppConfig 应用配置
type AppConfig struct {
	Name        string
	Environment string
	Version     string
	Debug       bool
}

// IsProduction 是否为生产环境
func (c *AppConfig) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host            string
	Port            int
	Mode            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// AdminConfig 管理后台配置
type AdminConfig struct {
	Enabled      bool
	Token        string
	Password     string
	PasswordHash string
	TokenTTL     int // 分钟
}

// TokenTTLDuration 登录令牌有效期
func (c *AdminConfig) TokenTTLDuration() time.Duration {
	if c.TokenTTL <= 0 {
		return 12 * time.Hour
	}
	return time.Duration(c.TokenTTL) * time.Minute
}

// CatalogConfig 工具目录配置
type CatalogConfig struct {
	ToolsFile   string
	LiveUpdates bool
}

// NewsConfig 资讯数据配置，DataDir 为空时使用内置数据
type NewsConfig struct {
	DataDir string
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Enabled      bool
	Restore      bool
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
}

// RedisConfig Redis配置
type RedisConfig struct {
	Enabled     bool
	Host        string
	Port        int
	Password    string
	DB          int
	Channel     string
	HistoryKey  string
	HistorySize int
}

// LogConfig 日志配置
type LogConfig struct {
	Level       string
	Development bool
}

// Load 加载配置
// path 为空时只使用默认值和环境变量
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// 环境变量
	v.SetEnvPrefix("TOOLHUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

// bindLegacyEnv 兼容静态站点时期的环境变量
func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"admin.enabled":  {"TOOLHUB_ADMIN_ENABLED", "ENABLE_ADMIN"},
		"admin.token":    {"TOOLHUB_ADMIN_TOKEN", "ADMIN_TOKEN"},
		"admin.password": {"TOOLHUB_ADMIN_PASSWORD", "ADMIN_PASSWORD"},
	}
	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	return nil
}

// GetDSN 获取数据库连接字符串
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// GetAddr 获取服务器地址
func (c *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// GetAddr 获取 Redis 地址
func (c *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "toolhub")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.debug", false)

	// Server
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.readTimeout", 30)
	v.SetDefault("server.writeTimeout", 30)
	v.SetDefault("server.shutdownTimeout", 10)

	// Admin
	v.SetDefault("admin.enabled", true)
	v.SetDefault("admin.token", "")
	v.SetDefault("admin.password", "")
	v.SetDefault("admin.passwordHash", "")
	v.SetDefault("admin.tokenTTL", 720)

	// Catalog
	v.SetDefault("catalog.toolsFile", "")
	v.SetDefault("catalog.liveUpdates", true)

	// News
	v.SetDefault("news.dataDir", "")

	// Database
	v.SetDefault("database.enabled", false)
	v.SetDefault("database.restore", false)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "toolhub")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.maxOpenConns", 10)
	v.SetDefault("database.maxIdleConns", 2)
	v.SetDefault("database.maxLifetime", 300)

	// Redis
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.channel", "toolhub:catalog:events")
	v.SetDefault("redis.historyKey", "toolhub:catalog:history")
	v.SetDefault("redis.historySize", 100)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
}
