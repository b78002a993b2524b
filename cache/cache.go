package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/domino14/boggle/config"
)

// The cache holds large read-only objects that are expensive to build, such
// as dictionaries, so that a long-running process (the shell, or a batch of
// searches) builds each of them only once.

type cache struct {
	sync.Mutex
	objects map[string]any
}

type LoadFunc func(cfg *config.Config, key string) (any, error)

// GlobalObjectCache is shared by the whole process.
var GlobalObjectCache *cache

func (c *cache) load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return nil, err
	}
	c.objects[key] = obj
	return obj, nil
}

func (c *cache) get(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	return c.load(cfg, key, loadFunc)
}

func (c *cache) forget(key string) {
	c.Lock()
	defer c.Unlock()
	delete(c.objects, key)
}

func CreateGlobalObjectCache() {
	GlobalObjectCache = &cache{objects: make(map[string]any)}
}

// Load returns the object stored under key, calling loadFunc to build it
// the first time. Failed loads are not cached.
func Load(cfg *config.Config, key string, loadFunc LoadFunc) (any, error) {
	if GlobalObjectCache == nil {
		CreateGlobalObjectCache()
	}
	return GlobalObjectCache.get(cfg, key, loadFunc)
}

// Forget drops key so that the next Load builds it again.
func Forget(key string) {
	if GlobalObjectCache == nil {
		return
	}
	GlobalObjectCache.forget(key)
}
