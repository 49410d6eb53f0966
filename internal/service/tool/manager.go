// Package tool 提供工具卡片的增删改查
package tool

import (
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/ashwinyue/toolhub/internal/model"
)

const (
	// maxIDLength 生成ID的最大长度
	maxIDLength = 50
	// fallbackID 名称中没有可用字符时使用的ID
	fallbackID = "tool"
)

// 空白包含 \v、Unicode 空格分隔符（如 U+00A0）和 BOM
var (
	nonSlugChars = regexp.MustCompile(`[^a-z0-9\s\v\p{Z}\x{FEFF}]`)
	whitespace   = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}]+`)
)

// Listener 变更监听器，参数为变更后的完整工具列表副本
// 监听器按提交顺序串行调用，不能在回调中修改管理器
type Listener func(tools []model.Tool)

// ListenerID 监听器句柄，用于移除监听器
type ListenerID uint64

type listenerEntry struct {
	id ListenerID
	fn Listener
}

// ToolInput 新建工具的数据（不含ID和时间戳）
// Weight 为 nil 时新建工具权重为 0
type ToolInput struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Icon        string             `json:"icon"`
	URL         string             `json:"url"`
	Category    model.ToolCategory `json:"category"`
	Status      model.ToolStatus   `json:"status"`
	Tags        []string           `json:"tags"`
	Featured    bool               `json:"featured"`
	Weight      *int               `json:"weight"`
}

// ToolUpdate 部分更新，只合并非 nil 字段
type ToolUpdate struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Icon        *string             `json:"icon"`
	URL         *string             `json:"url"`
	Category    *model.ToolCategory `json:"category"`
	Status      *model.ToolStatus   `json:"status"`
	Tags        []string            `json:"tags"`
	Featured    *bool               `json:"featured"`
	Weight      *int                `json:"weight"`
}

// WeightUpdate 权重更新项
type WeightUpdate struct {
	ID     string `json:"id" binding:"required"`
	Weight int    `json:"weight"`
}

// Option 管理器选项
type Option func(*Manager)

// WithClock 指定时间源（毫秒）
func WithClock(now func() int64) Option {
	return func(m *Manager) {
		m.now = now
	}
}

// WithLogger 指定日志
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// Manager 工具管理器
// 每个实例持有独立的工具副本，修改不会回写种子数据
type Manager struct {
	// commitMu 串行化修改和通知，监听器收到快照的顺序与提交顺序一致
	commitMu       sync.Mutex
	mu             sync.RWMutex
	tools          []model.Tool
	listenersMu    sync.Mutex
	listeners      []listenerEntry
	nextListenerID ListenerID
	now            func() int64
	logger         *zap.Logger
}

// NewManager 创建工具管理器
func NewManager(seed []model.Tool, opts ...Option) *Manager {
	m := &Manager{
		tools:  model.CloneTools(seed),
		now:    func() int64 { return time.Now().UnixMilli() },
		logger: zap.NewNop(),
	}
	if m.tools == nil {
		m.tools = []model.Tool{}
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// GetAllTools 获取所有工具（包含非上线状态）
func (m *Manager) GetAllTools() []model.Tool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return model.CloneTools(m.tools)
}

// GetToolByID 根据ID获取工具
func (m *Manager) GetToolByID(id string) (model.Tool, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if i := m.indexOf(id); i >= 0 {
		return m.tools[i].Clone(), true
	}
	return model.Tool{}, false
}

// AddTool 添加新工具
func (m *Manager) AddTool(input ToolInput) model.Tool {
	m.commitMu.Lock()
	defer m.commitMu.Unlock()

	m.mu.Lock()
	now := m.now()
	tool := model.Tool{
		ID:          m.uniqueID(GenerateID(input.Name)),
		Name:        input.Name,
		Description: input.Description,
		Icon:        input.Icon,
		URL:         input.URL,
		Category:    input.Category,
		Status:      input.Status,
		Tags:        append([]string{}, input.Tags...),
		Featured:    input.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if input.Weight != nil {
		tool.Weight = *input.Weight
	}
	m.tools = append(m.tools, tool)
	snapshot := model.CloneTools(m.tools)
	m.mu.Unlock()

	m.logger.Debug("tool added", zap.String("id", tool.ID))
	m.notify(snapshot)
	return tool.Clone()
}

// UpdateTool 更新工具，ID 和创建时间不会被修改
func (m *Manager) UpdateTool(id string, update ToolUpdate) (model.Tool, bool) {
	m.commitMu.Lock()
	defer m.commitMu.Unlock()

	m.mu.Lock()
	i := m.indexOf(id)
	if i < 0 {
		m.mu.Unlock()
		return model.Tool{}, false
	}

	tool := &m.tools[i]
	if update.Name != nil {
		tool.Name = *update.Name
	}
	if update.Description != nil {
		tool.Description = *update.Description
	}
	if update.Icon != nil {
		tool.Icon = *update.Icon
	}
	if update.URL != nil {
		tool.URL = *update.URL
	}
	if update.Category != nil {
		tool.Category = *update.Category
	}
	if update.Status != nil {
		tool.Status = *update.Status
	}
	if update.Tags != nil {
		tool.Tags = append([]string{}, update.Tags...)
	}
	if update.Featured != nil {
		tool.Featured = *update.Featured
	}
	if update.Weight != nil {
		tool.Weight = *update.Weight
	}
	tool.UpdatedAt = m.now()

	updated := tool.Clone()
	snapshot := model.CloneTools(m.tools)
	m.mu.Unlock()

	m.notify(snapshot)
	return updated, true
}

// DeleteTool 删除工具，仅在确实删除时通知监听器
func (m *Manager) DeleteTool(id string) bool {
	m.commitMu.Lock()
	defer m.commitMu.Unlock()

	m.mu.Lock()
	i := m.indexOf(id)
	if i < 0 {
		m.mu.Unlock()
		return false
	}
	m.tools = append(m.tools[:i], m.tools[i+1:]...)
	snapshot := model.CloneTools(m.tools)
	m.mu.Unlock()

	m.logger.Debug("tool deleted", zap.String("id", id))
	m.notify(snapshot)
	return true
}

// ToggleFeatured 切换推荐状态
func (m *Manager) ToggleFeatured(id string) bool {
	tool, ok := m.GetToolByID(id)
	if !ok {
		return false
	}
	featured := !tool.Featured
	_, ok = m.UpdateTool(id, ToolUpdate{Featured: &featured})
	return ok
}

// ToggleStatus 在 active 与 inactive 之间切换，beta 切换为 active
func (m *Manager) ToggleStatus(id string) bool {
	tool, ok := m.GetToolByID(id)
	if !ok {
		return false
	}
	status := model.StatusActive
	if tool.Status == model.StatusActive {
		status = model.StatusInactive
	}
	_, ok = m.UpdateTool(id, ToolUpdate{Status: &status})
	return ok
}

// UpdateWeights 批量更新权重
// 逐条更新，每条都会触发一次通知；不存在的ID被忽略
func (m *Manager) UpdateWeights(updates []WeightUpdate) {
	for _, u := range updates {
		weight := u.Weight
		m.UpdateTool(u.ID, ToolUpdate{Weight: &weight})
	}
}

// AddListener 添加监听器
func (m *Manager) AddListener(fn Listener) ListenerID {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	m.nextListenerID++
	m.listeners = append(m.listeners, listenerEntry{id: m.nextListenerID, fn: fn})
	return m.nextListenerID
}

// RemoveListener 移除监听器
func (m *Manager) RemoveListener(id ListenerID) {
	m.listenersMu.Lock()
	defer m.listenersMu.Unlock()
	for i, l := range m.listeners {
		if l.id == id {
			m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
			return
		}
	}
}

// notify 按注册顺序同步调用监听器
// 每个监听器拿到独立副本，单个监听器 panic 不影响其他监听器
func (m *Manager) notify(snapshot []model.Tool) {
	m.listenersMu.Lock()
	listeners := append([]listenerEntry(nil), m.listeners...)
	m.listenersMu.Unlock()

	for _, l := range listeners {
		m.invoke(l, model.CloneTools(snapshot))
	}
}

func (m *Manager) invoke(l listenerEntry, tools []model.Tool) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("tool listener panicked",
				zap.Uint64("listener_id", uint64(l.id)),
				zap.Any("panic", r),
			)
		}
	}()
	l.fn(tools)
}

func (m *Manager) indexOf(id string) int {
	for i := range m.tools {
		if m.tools[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID 在已有ID冲突时追加数字后缀，调用方需持有写锁
func (m *Manager) uniqueID(base string) string {
	if base == "" {
		base = fallbackID
	}
	if m.indexOf(base) < 0 {
		return base
	}
	for n := 2; ; n++ {
		suffix := "-" + strconv.Itoa(n)
		prefix := base
		if len(prefix)+len(suffix) > maxIDLength {
			prefix = prefix[:maxIDLength-len(suffix)]
		}
		candidate := prefix + suffix
		if m.indexOf(candidate) < 0 {
			return candidate
		}
	}
}

// GenerateID 根据名称生成ID
// 转小写，去掉字母数字和空白以外的字符，空白折叠为连字符，截断到 50 个字符
func GenerateID(name string) string {
	id := strings.ToLower(name)
	id = nonSlugChars.ReplaceAllString(id, "")
	id = whitespace.ReplaceAllString(id, "-")
	if len(id) > maxIDLength {
		id = id[:maxIDLength]
	}
	return id
}
