// Package session 记录已注销的管理员登录令牌
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis key 前缀
const revokedKeyPrefix = "toolhub:session:revoked:"

// Manager 会话注销表
// 内存中保存一份，配置 Redis 时同步写入，多实例部署时以 Redis 为准
type Manager struct {
	mu     sync.RWMutex
	memory map[string]time.Time // 令牌ID -> 令牌过期时间
	redis  redis.UniversalClient
	now    func() time.Time
}

// NewManager 创建会话管理器，redisClient 可为 nil
func NewManager(redisClient redis.UniversalClient) *Manager {
	return &Manager{
		memory: make(map[string]time.Time),
		redis:  redisClient,
		now:    time.Now,
	}
}

// Revoke 注销令牌，记录保留到令牌自身过期为止
func (m *Manager) Revoke(ctx context.Context, tokenID string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(m.now())
	if ttl <= 0 {
		return nil
	}

	m.mu.Lock()
	m.memory[tokenID] = expiresAt
	m.pruneLocked()
	m.mu.Unlock()

	if m.redis != nil {
		if err := m.redis.Set(ctx, revokedKeyPrefix+tokenID, expiresAt.Unix(), ttl).Err(); err != nil {
			return fmt.Errorf("failed to store revoked session: %w", err)
		}
	}
	return nil
}

// IsRevoked 令牌是否已注销
func (m *Manager) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	m.mu.RLock()
	expiresAt, ok := m.memory[tokenID]
	m.mu.RUnlock()
	if ok && m.now().Before(expiresAt) {
		return true, nil
	}

	if m.redis == nil {
		return false, nil
	}
	n, err := m.redis.Exists(ctx, revokedKeyPrefix+tokenID).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check revoked session: %w", err)
	}
	return n > 0, nil
}

// pruneLocked 清理已过期的记录，调用方需持有写锁
func (m *Manager) pruneLocked() {
	now := m.now()
	for id, expiresAt := range m.memory {
		if !now.Before(expiresAt) {
			delete(m.memory, id)
		}
	}
}
