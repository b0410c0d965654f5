// Package achievements unlocks platform achievements when the player walks
// into trigger volumes.
package achievements

import (
	"log"
	"strings"

	"github.com/quasilyte/gdata/v2"
)

// Service unlocks achievements on some platform. Unlock is best-effort and
// must be safe to call again for an already unlocked id.
type Service interface {
	Unlock(id string) error
}

// Platform names accepted by NewService.
const (
	PlatformLocal = "local"
	PlatformLog   = "log"
	PlatformNone  = "none"
)

// NewService picks the backend for platform.
//
// Parameters:
//   - platform: "local", "log" or "none"; anything else selects "log"
//   - manager: gdata storage for "local"; nil degrades "local" to "log"
func NewService(platform string, manager *gdata.Manager) Service {
	switch strings.ToLower(strings.TrimSpace(platform)) {
	case PlatformLocal:
		if manager == nil {
			log.Printf("[Achievements] Warning: no storage for local achievements, logging only")
			return LogService{}
		}
		return NewLocalService(manager)
	case PlatformNone:
		return NoopService{}
	case PlatformLog, "":
		return LogService{}
	default:
		log.Printf("[Achievements] Warning: unknown platform %q, logging only", platform)
		return LogService{}
	}
}

// LogService only logs unlocks.
type LogService struct{}

// Unlock implements Service.
func (LogService) Unlock(id string) error {
	log.Printf("[Achievements] Unlocked %s", id)
	return nil
}

// NoopService ignores unlocks.
type NoopService struct{}

// Unlock implements Service.
func (NoopService) Unlock(string) error { return nil }
