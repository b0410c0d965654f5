package achievements

import (
	"errors"
	"fmt"
	"log"
	"slices"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	achievementsObject = "achievements"
	unlockedProp       = "unlocked"
)

// ErrEmptyID is returned when unlocking an achievement with no id.
var ErrEmptyID = errors.New("achievement id is empty")

// record is the persisted form of the unlocked set.
type record struct {
	Unlocked []string `yaml:"unlocked"`
}

// LocalService keeps the set of unlocked achievement ids in gdata storage.
type LocalService struct {
	manager  *gdata.Manager
	unlocked []string
}

// NewLocalService loads the unlocked set from manager. A missing or
// unreadable record starts empty.
func NewLocalService(manager *gdata.Manager) *LocalService {
	s := &LocalService{manager: manager}
	rec, err := s.load()
	if err != nil {
		log.Printf("[Achievements] Warning: %v (starting with none unlocked)", err)
	}
	s.unlocked = rec.Unlocked
	return s
}

func (s *LocalService) load() (record, error) {
	var rec record
	if !s.manager.ObjectPropExists(achievementsObject, unlockedProp) {
		return rec, nil
	}
	data, err := s.manager.LoadObjectProp(achievementsObject, unlockedProp)
	if err != nil {
		return rec, fmt.Errorf("failed to load achievements: %w", err)
	}
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return record{}, fmt.Errorf("failed to decode achievements: %w", err)
	}
	return rec, nil
}

// Unlock adds id to the unlocked set and saves it. Unlocking an id twice is
// a no-op.
func (s *LocalService) Unlock(id string) error {
	if id == "" {
		return ErrEmptyID
	}
	if s.IsUnlocked(id) {
		return nil
	}

	next := append(slices.Clone(s.unlocked), id)
	data, err := yaml.Marshal(record{Unlocked: next})
	if err != nil {
		return fmt.Errorf("failed to encode achievements: %w", err)
	}
	if err := s.manager.SaveObjectProp(achievementsObject, unlockedProp, data); err != nil {
		return fmt.Errorf("failed to save achievement %s: %w", id, err)
	}
	s.unlocked = next
	log.Printf("[Achievements] Unlocked %s (%d total)", id, len(next))
	return nil
}

// IsUnlocked reports whether id has been unlocked.
func (s *LocalService) IsUnlocked(id string) bool {
	return slices.Contains(s.unlocked, id)
}

// Unlocked returns the unlocked ids in unlock order.
func (s *LocalService) Unlocked() []string {
	return slices.Clone(s.unlocked)
}
