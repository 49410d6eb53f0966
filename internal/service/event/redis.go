package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher 基于 Redis 的事件发布
// 事件通过 PUBLISH 推送，同时写入定长的历史列表
type RedisPublisher struct {
	client      redis.UniversalClient
	channel     string
	historyKey  string
	historySize int64
}

// NewRedisPublisher 创建 Redis 发布器
func NewRedisPublisher(client redis.UniversalClient, channel, historyKey string, historySize int) *RedisPublisher {
	if historySize <= 0 {
		historySize = 100
	}
	return &RedisPublisher{
		client:      client,
		channel:     channel,
		historyKey:  historyKey,
		historySize: int64(historySize),
	}
}

// Publish 实现 Publisher 接口
func (p *RedisPublisher) Publish(ctx context.Context, evt *Event) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := p.client.TxPipeline()
	pipe.Publish(ctx, p.channel, payload)
	if p.historyKey != "" {
		pipe.LPush(ctx, p.historyKey, payload)
		pipe.LTrim(ctx, p.historyKey, 0, p.historySize-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// History 读取最近的事件，最新的在前
func (p *RedisPublisher) History(ctx context.Context, limit int) ([]*Event, error) {
	if p.historyKey == "" {
		return []*Event{}, nil
	}
	if limit <= 0 || int64(limit) > p.historySize {
		limit = int(p.historySize)
	}

	raw, err := p.client.LRange(ctx, p.historyKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read event history: %w", err)
	}

	events := make([]*Event, 0, len(raw))
	for _, item := range raw {
		var evt Event
		if err := json.Unmarshal([]byte(item), &evt); err != nil {
			continue
		}
		events = append(events, &evt)
	}
	return events, nil
}
