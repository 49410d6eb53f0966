// Package event 将工具目录的变更广播给外部订阅方
package event

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/model"
)

// EventType 事件类型
type EventType string

const (
	// EventCatalogChanged 工具目录发生变更
	EventCatalogChanged EventType = "catalog.changed"
)

// defaultPublishTimeout 单次发布的超时时间
const defaultPublishTimeout = 2 * time.Second

// Event 目录事件
type Event struct {
	ID        string                 `json:"id"`
	EventType EventType              `json:"event_type"`
	Timestamp time.Time              `json:"timestamp"`
	ToolCount int                    `json:"tool_count"`
	Active    int                    `json:"active"`
	Featured  int                    `json:"featured"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// Publisher 事件发布接口
type Publisher interface {
	Publish(ctx context.Context, evt *Event) error
}

// PublisherFunc 函数类型的发布器
type PublisherFunc func(ctx context.Context, evt *Event) error

// Publish 实现 Publisher 接口
func (f PublisherFunc) Publish(ctx context.Context, evt *Event) error {
	return f(ctx, evt)
}

// Service 事件服务
type Service struct {
	publisher Publisher
	logger    *zap.Logger
	timeout   time.Duration
	now       func() time.Time
}

// NewService 创建事件服务
func NewService(publisher Publisher, logger *zap.Logger) (*Service, error) {
	if publisher == nil {
		return nil, fmt.Errorf("publisher cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		publisher: publisher,
		logger:    logger,
		timeout:   defaultPublishTimeout,
		now:       time.Now,
	}, nil
}

// NewCatalogEvent 根据工具快照构建事件
func NewCatalogEvent(tools []model.Tool, at time.Time) *Event {
	evt := &Event{
		ID:        generateEventID(),
		EventType: EventCatalogChanged,
		Timestamp: at,
		ToolCount: len(tools),
	}
	for i := range tools {
		if tools[i].IsActive() {
			evt.Active++
			if tools[i].Featured {
				evt.Featured++
			}
		}
	}
	return evt
}

// OnCatalogChanged 工具管理器监听器
// 发布失败只记录日志，不影响已经完成的修改
func (s *Service) OnCatalogChanged(tools []model.Tool) {
	evt := NewCatalogEvent(tools, s.now())

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.publisher.Publish(ctx, evt); err != nil {
		s.logger.Warn("failed to publish catalog event",
			zap.String("event_id", evt.ID),
			zap.Error(err),
		)
	}
}

// generateEventID 生成事件 ID
func generateEventID() string {
	return "evt_" + uuid.New().String()
}
