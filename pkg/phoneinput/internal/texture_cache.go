package internal

import (
	"container/list"

	"github.com/veandco/go-sdl2/sdl"
)

const defaultMaxCacheSize = 64

// TextureCache keeps the most recently used textures and destroys the rest.
// The picker redraws dozens of country rows each frame, so rows and icons
// are rendered once and reused until they fall out of the cache.
type TextureCache struct {
	maxSize int
	order   *list.List // front is most recently used
	entries map[string]*list.Element
}

type cacheEntry struct {
	key     string
	texture *sdl.Texture
}

func NewTextureCache() *TextureCache {
	return NewTextureCacheWithSize(defaultMaxCacheSize)
}

func NewTextureCacheWithSize(maxSize int) *TextureCache {
	if maxSize < 1 {
		maxSize = 1
	}
	return &TextureCache{
		maxSize: maxSize,
		order:   list.New(),
		entries: make(map[string]*list.Element, maxSize),
	}
}

func (c *TextureCache) Get(key string) *sdl.Texture {
	el, ok := c.entries[key]
	if !ok {
		return nil
	}
	c.order.MoveToFront(el)
	return el.Value.(*cacheEntry).texture
}

func (c *TextureCache) Set(key string, texture *sdl.Texture) {
	if el, ok := c.entries[key]; ok {
		entry := el.Value.(*cacheEntry)
		if entry.texture != texture {
			entry.texture.Destroy()
			entry.texture = texture
		}
		c.order.MoveToFront(el)
		return
	}

	for c.order.Len() >= c.maxSize {
		c.evictOldest()
	}
	c.entries[key] = c.order.PushFront(&cacheEntry{key: key, texture: texture})
}

func (c *TextureCache) evictOldest() {
	el := c.order.Back()
	if el == nil {
		return
	}
	entry := c.order.Remove(el).(*cacheEntry)
	delete(c.entries, entry.key)
	entry.texture.Destroy()
}

func (c *TextureCache) Len() int {
	return c.order.Len()
}

// Destroy frees every cached texture. The cache stays usable.
func (c *TextureCache) Destroy() {
	for el := c.order.Front(); el != nil; el = el.Next() {
		el.Value.(*cacheEntry).texture.Destroy()
	}
	c.order.Init()
	c.entries = make(map[string]*list.Element, c.maxSize)
}
