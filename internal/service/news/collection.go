package news

import (
	"encoding/json"
	"fmt"
	"sync"

	"go.uber.org/zap"
)

// collection 单类内容的内存存储
// 首次访问时从数据源加载，加载失败只影响本集合
type collection[T any] struct {
	mu       sync.Mutex
	kind     Kind
	source   Source
	logger   *zap.Logger
	items    []T
	hydrated bool
	lastID   int
	getID    func(*T) int
	setID    func(*T, int)
	clone    func(T) T
}

// ensure 调用方需持有锁
func (c *collection[T]) ensure() {
	if !c.hydrated {
		_ = c.hydrate()
	}
}

// hydrate 调用方需持有锁
// 无论成功与否都标记为已加载，避免覆盖之后写入的数据
// lastID 只增不减，重新加载后也不会复用已分配的ID
func (c *collection[T]) hydrate() error {
	c.hydrated = true
	c.items = []T{}

	raw, err := c.source.Load(c.kind)
	if err == nil {
		var items []T
		items, err = decode[T](raw)
		if err == nil {
			c.items = items
		}
	}
	if err != nil {
		c.logger.Error("failed to load content data",
			zap.String("kind", string(c.kind)),
			zap.Error(err),
		)
		return fmt.Errorf("load %s: %w", c.kind, err)
	}

	for i := range c.items {
		if id := c.getID(&c.items[i]); id > c.lastID {
			c.lastID = id
		}
	}
	c.logger.Debug("content data loaded",
		zap.String("kind", string(c.kind)),
		zap.Int("count", len(c.items)),
	)
	return nil
}

func (c *collection[T]) reload() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hydrate()
}

func (c *collection[T]) list() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure()
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = c.clone(item)
	}
	return out
}

func (c *collection[T]) get(id int) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure()
	if i := c.indexOf(id); i >= 0 {
		return c.clone(c.items[i]), true
	}
	var zero T
	return zero, false
}

// create 新ID来自单调递增计数器，删除后的ID不会被复用
func (c *collection[T]) create(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure()
	c.lastID++
	item = c.clone(item)
	c.setID(&item, c.lastID)
	c.items = append(c.items, item)
	return c.clone(item)
}

// update 把 JSON 补丁合并到已有记录，ID 保持不变
func (c *collection[T]) update(id int, patch []byte) (T, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure()

	var zero T
	i := c.indexOf(id)
	if i < 0 {
		return zero, false, nil
	}

	merged := c.clone(c.items[i])
	if err := json.Unmarshal(patch, &merged); err != nil {
		return zero, true, fmt.Errorf("invalid %s patch: %w", c.kind, err)
	}
	c.setID(&merged, id)
	c.items[i] = merged
	return c.clone(merged), true, nil
}

func (c *collection[T]) remove(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.ensure()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	return true
}

func (c *collection[T]) indexOf(id int) int {
	for i := range c.items {
		if c.getID(&c.items[i]) == id {
			return i
		}
	}
	return -1
}
