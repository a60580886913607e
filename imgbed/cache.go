// Package imgbed - 上传缓存管理
// 维护 图床名:内容哈希 -> URL 的映射，避免重复上传同一张图片
package imgbed

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/Wsine/images-upload-cli/utils"
	"github.com/pkg/errors"
)

// Cache 上传缓存，存储为 JSON 文件
type Cache struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
	dirty   bool
}

// OpenCache 打开缓存文件，文件不存在时返回空缓存
func OpenCache(path string) (*Cache, error) {
	c := &Cache{path: path, entries: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return nil, errors.Wrapf(err, "读取缓存文件 %s 失败", path)
	}
	// 缓存损坏（包括内容为 null）时丢弃重建
	if err := json.Unmarshal(data, &c.entries); err != nil || c.entries == nil {
		c.entries = make(map[string]string)
	}
	return c, nil
}

// cacheKey 缓存键
func cacheKey(hosting string, img []byte) string {
	return hosting + ":" + utils.ContentHash(img)
}

// Get 获取缓存的 URL
func (c *Cache) Get(hosting string, img []byte) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	url, ok := c.entries[cacheKey(hosting, img)]
	return url, ok
}

// Put 写入缓存（仅内存，调用 Save 持久化）
func (c *Cache) Put(hosting string, img []byte, url string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(hosting, img)] = url
	c.dirty = true
}

// Len 返回缓存条目数
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Path 缓存文件路径
func (c *Cache) Path() string {
	return c.path
}

// Save 将缓存写回文件，没有改动时不写
func (c *Cache) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.dirty {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return errors.Wrap(err, "创建缓存目录失败")
	}
	data, err := json.MarshalIndent(c.entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "序列化缓存失败")
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return errors.Wrapf(err, "写入缓存文件 %s 失败", c.path)
	}
	c.dirty = false
	return nil
}

// Clear 清空缓存并删除缓存文件
func (c *Cache) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]string)
	c.dirty = false
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "删除缓存文件 %s 失败", c.path)
	}
	return nil
}
