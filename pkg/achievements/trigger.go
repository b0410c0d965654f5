package achievements

import (
	"log"
	"slices"
)

// DefaultTag is the actor tag a trigger reacts to when none is configured.
const DefaultTag = "Player"

// Actor is something that can walk into a trigger volume.
type Actor struct {
	Name string
	Tag  string
}

// Trigger is a single-fire latch bound to one achievement.
//
// The first contact by an actor with a recognized tag marks the trigger
// collected and unlocks the achievement. The latch is never reset, so later
// contacts, including by other tagged actors, do nothing.
type Trigger struct {
	AchievementID string
	Tags          []string

	service   Service
	collected bool
}

// NewTrigger creates an uncollected trigger. Empty tags select DefaultTag;
// a nil service only logs.
func NewTrigger(achievementID string, tags []string, service Service) *Trigger {
	if len(tags) == 0 {
		tags = []string{DefaultTag}
	}
	if service == nil {
		service = LogService{}
	}
	return &Trigger{
		AchievementID: achievementID,
		Tags:          tags,
		service:       service,
	}
}

// Collected reports whether the trigger has fired.
func (t *Trigger) Collected() bool {
	return t.collected
}

// Enter handles a contact by actor. It reports whether this contact fired
// the trigger.
func (t *Trigger) Enter(actor Actor) bool {
	log.Printf("trigger entered - object: %s", actor.Name)

	if t.collected || !slices.Contains(t.Tags, actor.Tag) {
		return false
	}
	t.collected = true

	log.Printf("[Achievements] Rune collected! Achievement: %s", t.AchievementID)
	if err := t.service.Unlock(t.AchievementID); err != nil {
		log.Printf("[Achievements] Error: unlock %s failed: %v", t.AchievementID, err)
	}
	return true
}
