package game

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// PrefsStore is a key-value store for small player preferences.
// Writes are synchronous and last-write-wins.
type PrefsStore interface {
	// Float returns the stored value for key, or def if none was saved.
	Float(key string, def float64) float64
	// SetFloat stores value under key.
	SetFloat(key string, value float64) error
}

// prefsObject is the gdata object all preference keys are stored under.
const prefsObject = "prefs"

// GdataPrefs stores preferences through gdata, one property per key.
// Values are YAML scalars so the files stay readable.
type GdataPrefs struct {
	manager *gdata.Manager
}

// NewGdataPrefs wraps a gdata manager.
func NewGdataPrefs(manager *gdata.Manager) *GdataPrefs {
	return &GdataPrefs{manager: manager}
}

// Float implements PrefsStore.
func (p *GdataPrefs) Float(key string, def float64) float64 {
	if !p.manager.ObjectPropExists(prefsObject, key) {
		return def
	}
	data, err := p.manager.LoadObjectProp(prefsObject, key)
	if err != nil {
		log.Printf("[Prefs] Warning: failed to load %s: %v (using default %.2f)", key, err, def)
		return def
	}
	var value float64
	if err := yaml.Unmarshal(data, &value); err != nil {
		log.Printf("[Prefs] Warning: failed to decode %s: %v (using default %.2f)", key, err, def)
		return def
	}
	return value
}

// SetFloat implements PrefsStore.
func (p *GdataPrefs) SetFloat(key string, value float64) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := p.manager.SaveObjectProp(prefsObject, key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

// MemoryPrefs keeps preferences in memory only. It is the fallback when no
// gdata manager can be opened, and the store used by tests.
type MemoryPrefs struct {
	values map[string]float64
}

// NewMemoryPrefs returns an empty in-memory store.
func NewMemoryPrefs() *MemoryPrefs {
	return &MemoryPrefs{values: make(map[string]float64)}
}

// Float implements PrefsStore.
func (p *MemoryPrefs) Float(key string, def float64) float64 {
	if v, ok := p.values[key]; ok {
		return v
	}
	return def
}

// SetFloat implements PrefsStore.
func (p *MemoryPrefs) SetFloat(key string, value float64) error {
	p.values[key] = value
	return nil
}

// OpenPrefs opens a gdata-backed store for appName, falling back to memory
// when the platform storage is unavailable.
func OpenPrefs(appName string) (PrefsStore, *gdata.Manager) {
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		log.Printf("[Prefs] Warning: gdata unavailable: %v (preferences will not persist)", err)
		return NewMemoryPrefs(), nil
	}
	return NewGdataPrefs(manager), manager
}
