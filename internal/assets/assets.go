// Package assets resolves map names to map sources and caches them.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/Faultbox/wolfcast/internal/game/world"
)

// DefaultMap is the built-in map used when nothing else is configured or
// the configured map fails to load.
const DefaultMap = "e1m1"

// MapExt is the extension of map files.
const MapExt = ".txt"

// ErrNotFound is returned when no source provides a map.
var ErrNotFound = errors.New("map not found")

//go:embed maps/*.txt
var builtin embed.FS

// Manager looks maps up in directories added at runtime and then in the
// built-in set. Directories are searched in reverse order (last added =
// highest priority).
type Manager struct {
	dirs  []fs.FS
	names []string
	cache *Cache
	mu    sync.RWMutex
}

// NewManager creates a new map manager that only knows the built-in maps.
func NewManager() *Manager {
	return &Manager{
		cache: NewCache(),
	}
}

// AddDir adds a directory of map files.
func (m *Manager) AddDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("opening map dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("opening map dir %s: not a directory", dir)
	}

	m.mu.Lock()
	m.dirs = append(m.dirs, os.DirFS(dir))
	m.names = append(m.names, dir)
	m.mu.Unlock()
	return nil
}

// Load returns the source of a map. name is either a path to an existing
// file or a map name, with or without extension, looked up in the map
// directories and the built-in maps.
func (m *Manager) Load(name string) ([]byte, error) {
	if data, ok := m.cache.Get(name); ok {
		return data, nil
	}

	if info, err := os.Stat(name); err == nil && !info.IsDir() {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("reading map %s: %w", name, err)
		}
		m.cache.Set(name, data)
		return data, nil
	}

	file := mapFile(name)
	if !fs.ValidPath(file) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	for i := len(m.dirs) - 1; i >= 0; i-- {
		data, err := fs.ReadFile(m.dirs[i], file)
		if err == nil {
			m.cache.Set(name, data)
			return data, nil
		}
	}

	data, err := fs.ReadFile(builtin, path.Join("maps", file))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	m.cache.Set(name, data)
	return data, nil
}

// LoadMap loads and parses a map.
func (m *Manager) LoadMap(name string) (*world.Map, error) {
	data, err := m.Load(name)
	if err != nil {
		return nil, err
	}
	return world.LoadMap(mapName(name), data)
}

// List returns the names of every map that can be loaded by name, sorted.
func (m *Manager) List() []string {
	seen := make(map[string]bool)

	collect := func(fsys fs.FS, dir string) {
		entries, err := fs.ReadDir(fsys, dir)
		if err != nil {
			return
		}
		for _, e := range entries {
			if !e.IsDir() && strings.HasSuffix(e.Name(), MapExt) {
				seen[strings.TrimSuffix(e.Name(), MapExt)] = true
			}
		}
	}

	m.mu.RLock()
	for _, d := range m.dirs {
		collect(d, ".")
	}
	m.mu.RUnlock()
	collect(builtin, "maps")

	names := make([]string, 0, len(seen))
	for n := range seen {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Dirs returns the added directories in search-priority order.
func (m *Manager) Dirs() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]string, 0, len(m.names))
	for i := len(m.names) - 1; i >= 0; i-- {
		out = append(out, m.names[i])
	}
	return out
}

// Close drops cached sources.
func (m *Manager) Close() {
	m.cache.Clear()
}

// mapFile returns the file name of a map name.
func mapFile(name string) string {
	if strings.HasSuffix(name, MapExt) {
		return name
	}
	return name + MapExt
}

// mapName strips directories and the extension from a map reference.
func mapName(name string) string {
	return strings.TrimSuffix(path.Base(strings.ReplaceAll(name, "\\", "/")), MapExt)
}

// Cache is a simple in-memory cache for loaded map sources.
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
