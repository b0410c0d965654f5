package achievements

import "testing"

const step = 1.0 / 60.0

// TestTriggerWorldFiresOnceAcrossReentries walks the player in and out of a
// volume several times.
func TestTriggerWorldFiresOnceAcrossReentries(t *testing.T) {
	svc := &fakeService{}
	world := NewTriggerWorld()
	world.AddTrigger(NewTrigger("Rune1Found", nil, svc), 100, 100, 40, 40)
	player := world.AddActor(Actor{Name: "Player", Tag: "Player"}, 0, 0, 24)

	for i := 0; i < 3; i++ {
		player.SetPosition(120, 120)
		world.Step(step)
		world.Step(step)

		player.SetPosition(0, 0)
		// Long enough for the space to drop the cached contact.
		for j := 0; j < 10; j++ {
			world.Step(step)
		}
	}

	if world.Contacts() < 2 {
		t.Fatalf("contacts = %d, want one per entry", world.Contacts())
	}
	if len(svc.unlocked) != 1 {
		t.Errorf("unlocks = %v, want exactly one", svc.unlocked)
	}
	if !world.Volumes()[0].Trigger.Collected() {
		t.Error("volume trigger should be collected")
	}
}

func TestTriggerWorldPausedStepDoesNothing(t *testing.T) {
	svc := &fakeService{}
	world := NewTriggerWorld()
	world.AddTrigger(NewTrigger("Rune1Found", nil, svc), 100, 100, 40, 40)
	player := world.AddActor(Actor{Name: "Player", Tag: "Player"}, 0, 0, 24)

	player.SetPosition(120, 120)
	world.Step(0)

	if len(svc.unlocked) != 0 {
		t.Error("a zero step should not detect contacts")
	}

	world.Step(step)
	if len(svc.unlocked) != 1 {
		t.Errorf("unlocks after a real step = %d, want 1", len(svc.unlocked))
	}
}

func TestTriggerWorldIgnoresOtherTags(t *testing.T) {
	svc := &fakeService{}
	world := NewTriggerWorld()
	world.AddTrigger(NewTrigger("Rune1Found", nil, svc), 0, 0, 40, 40)
	crab := world.AddActor(Actor{Name: "Crab", Tag: "Critter"}, 200, 200, 10)

	crab.SetPosition(20, 20)
	world.Step(step)

	if world.Contacts() != 1 {
		t.Errorf("contacts = %d, want 1", world.Contacts())
	}
	if len(svc.unlocked) != 0 {
		t.Error("untagged actor should not unlock")
	}
}

func TestActorBodyBounds(t *testing.T) {
	world := NewTriggerWorld()
	a := world.AddActor(Actor{Name: "Player", Tag: "Player"}, 50, 60, 20)

	b := a.Bounds()
	if b.Min.X != 40 || b.Min.Y != 50 || b.Dx() != 20 || b.Dy() != 20 {
		t.Errorf("Bounds = %v, want (40,50)-(60,70)", b)
	}
}
