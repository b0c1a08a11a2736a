package render

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/LISSConsulting/LISSTech.CurveNav/internal/logging"
)

// Logical icon names the renderer looks up.
const (
	IconHideOn  = "hide_on"
	IconHideOff = "hide_off"
	IconLockOn  = "lock_on"
	IconLockOff = "lock_off"
	IconMuteOn  = "mute_on"
	IconMuteOff = "mute_off"
)

// IconCache lazily resolves logical icon names to backend textures. The cache
// is scoped to one rendering session and owned by the Renderer; it is not a
// process-wide table. Population is mutex-guarded so hosts that redraw
// concurrently stay safe.
//
// A name that fails to load is logged once and remembered as missing; rows
// render without that icon.
type IconCache struct {
	mu      sync.Mutex
	backend Backend
	loaded  map[string]Texture
	missing map[string]bool
	log     *logrus.Entry
}

// NewIconCache creates an empty cache that loads through the given backend.
func NewIconCache(backend Backend) *IconCache {
	return &IconCache{
		backend: backend,
		loaded:  make(map[string]Texture),
		missing: make(map[string]bool),
		log:     logging.NewLogger("render"),
	}
}

// Get returns the texture for a logical icon name, loading it on first use.
// ok is false when the asset is missing.
func (c *IconCache) Get(name string) (Texture, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if tex, ok := c.loaded[name]; ok {
		return tex, true
	}
	if c.missing[name] {
		return nil, false
	}

	tex, err := c.backend.LoadIcon(name)
	if err != nil {
		c.log.WithError(err).WithField("icon", name).Warn("icon not found")
		c.missing[name] = true
		return nil, false
	}
	c.loaded[name] = tex
	return tex, true
}
