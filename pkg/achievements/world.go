package achievements

import (
	"image"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeTrigger
)

// Volume is a trigger placed in the world.
type Volume struct {
	Trigger *Trigger
	Bounds  image.Rectangle
}

// TriggerWorld detects actors entering trigger volumes with a Chipmunk
// space. Trigger volumes are static sensor boxes; actors are dynamic boxes
// moved by the caller. A begin-collision handler forwards each new contact
// to the owning Trigger.
type TriggerWorld struct {
	space    *cp.Space
	triggers map[*cp.Shape]*Trigger
	actors   map[*cp.Shape]Actor
	volumes  []Volume
	contacts int
}

// NewTriggerWorld creates an empty world with no gravity.
func NewTriggerWorld() *TriggerWorld {
	w := &TriggerWorld{
		space:    cp.NewSpace(),
		triggers: make(map[*cp.Shape]*Trigger),
		actors:   make(map[*cp.Shape]Actor),
	}

	handler := w.space.NewCollisionHandler(collisionTypeActor, collisionTypeTrigger)
	handler.UserData = w
	handler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*TriggerWorld)
		a, b := arb.Shapes()
		world.contact(a, b)
		return true
	}
	return w
}

func (w *TriggerWorld) contact(a, b *cp.Shape) {
	actor, ok := w.actors[a]
	trigger := w.triggers[b]
	if !ok || trigger == nil {
		// Shapes may arrive in either order.
		actor, ok = w.actors[b]
		trigger = w.triggers[a]
	}
	if !ok || trigger == nil {
		return
	}
	w.contacts++
	trigger.Enter(actor)
}

// AddTrigger places t as a sensor box with top-left (x, y).
func (w *TriggerWorld) AddTrigger(t *Trigger, x, y, width, height float64) {
	bb := cp.BB{L: x, B: y, R: x + width, T: y + height}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetSensor(true)
	shape.SetCollisionType(collisionTypeTrigger)
	w.space.AddShape(shape)

	w.triggers[shape] = t
	w.volumes = append(w.volumes, Volume{
		Trigger: t,
		Bounds:  image.Rect(int(x), int(y), int(x+width), int(y+height)),
	})
}

// AddActor adds a square actor of side size centered on (x, y).
func (w *TriggerWorld) AddActor(actor Actor, x, y, size float64) *ActorBody {
	// Infinite moment keeps the box axis aligned.
	body := cp.NewBody(1, cp.INFINITY)
	body.SetPosition(cp.Vector{X: x, Y: y})
	shape := cp.NewBox(body, size, size, 0)
	shape.SetCollisionType(collisionTypeActor)

	w.space.AddBody(body)
	w.space.AddShape(shape)
	w.actors[shape] = actor

	return &ActorBody{Actor: actor, body: body, size: size}
}

// Volumes returns the placed trigger volumes in insertion order.
func (w *TriggerWorld) Volumes() []Volume {
	return w.volumes
}

// Contacts returns how many actor/trigger contacts have begun so far.
func (w *TriggerWorld) Contacts() int {
	return w.contacts
}

// Step advances the simulation by dt seconds. A zero or negative dt, as when
// the game is paused, does nothing.
func (w *TriggerWorld) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// ActorBody is an actor's physics body.
type ActorBody struct {
	Actor Actor
	body  *cp.Body
	size  float64
}

// Position returns the body's center.
func (a *ActorBody) Position() (float64, float64) {
	p := a.body.Position()
	return p.X, p.Y
}

// SetPosition moves the body's center to (x, y). The move is seen by the
// next Step.
func (a *ActorBody) SetPosition(x, y float64) {
	a.body.SetPosition(cp.Vector{X: x, Y: y})
	a.body.SetVelocityVector(cp.Vector{})
}

// Bounds returns the actor's box in integer world coordinates.
func (a *ActorBody) Bounds() image.Rectangle {
	x, y := a.Position()
	h := a.size / 2
	return image.Rect(int(x-h), int(y-h), int(x+h), int(y+h))
}
