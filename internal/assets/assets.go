// Package assets handles engine asset loading and caching.
package assets

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sync"

	_ "image/png" // terrain and sprite textures are PNG
)

// Manager loads asset files from a root directory.
type Manager struct {
	root  string
	cache *Cache
}

// NewManager creates an asset manager rooted at the given directory.
func NewManager(root string) (*Manager, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("asset root %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("asset root %s is not a directory", root)
	}

	return &Manager{
		root:  root,
		cache: NewCache(),
	}, nil
}

// Root returns the asset root directory.
func (m *Manager) Root() string {
	return m.root
}

// Load reads a file relative to the asset root.
func (m *Manager) Load(path string) ([]byte, error) {
	if data, ok := m.cache.Get(path); ok {
		return data, nil
	}

	data, err := os.ReadFile(filepath.Join(m.root, path))
	if err != nil {
		return nil, fmt.Errorf("loading asset %s: %w", path, err)
	}

	m.cache.Set(path, data)
	return data, nil
}

// LoadImage loads and decodes an image asset into RGBA form.
func (m *Manager) LoadImage(path string) (*image.RGBA, error) {
	data, err := m.Load(path)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}

	if rgba, ok := img.(*image.RGBA); ok {
		return rgba, nil
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba, nil
}

// Close drops all cached data.
func (m *Manager) Close() {
	m.cache.Clear()
}

// Cache is a simple in-memory cache for loaded assets.
type Cache struct {
	data map[string][]byte
	mu   sync.Mutex

	hits   int
	misses int
}

// NewCache creates a new cache.
func NewCache() *Cache {
	return &Cache{
		data: make(map[string][]byte),
	}
}

// Get retrieves an item from cache.
func (c *Cache) Get(key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	data, ok := c.data[key]
	if ok {
		c.hits++
	} else {
		c.misses++
	}
	return data, ok
}

// Set stores an item in cache.
func (c *Cache) Set(key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = data
}

// Clear clears the cache.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data = make(map[string][]byte)
	c.hits = 0
	c.misses = 0
}

// Stats returns cache statistics.
func (c *Cache) Stats() (hits, misses int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.hits, c.misses
}
