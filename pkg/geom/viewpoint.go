// Package geom places world-space UI in front of a viewpoint.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec3 is a point or direction in world space. Y is up.
type Vec3 = mgl64.Vec3

// Viewpoint is the active camera: a position and the direction it looks.
type Viewpoint struct {
	Position Vec3
	Forward  Vec3
}

// Placement is where a world-space surface sits and which way its readable
// front faces.
type Placement struct {
	Position Vec3
	// Normal points from the surface toward the viewer.
	Normal Vec3
	// Yaw and Pitch (radians) rotate the surface's front (+Z) to face
	// along the view direction.
	Yaw, Pitch float64
}

// Forward is the view direction the surface is turned along. It is -Normal.
func (p Placement) Forward() Vec3 {
	return p.Normal.Mul(-1)
}

// Rotation returns the surface orientation as a quaternion built from Yaw
// and Pitch.
func (p Placement) Rotation() mgl64.Quat {
	yaw := mgl64.QuatRotate(p.Yaw, Vec3{0, 1, 0})
	pitch := mgl64.QuatRotate(p.Pitch, Vec3{1, 0, 0})
	return yaw.Mul(pitch)
}

// PlaceFacing puts a surface distance units in front of view and turns it to
// face the viewer, so its content reads correctly rather than mirrored.
// A zero Forward defaults to +Z.
func PlaceFacing(view Viewpoint, distance float64) Placement {
	forward := Vec3{0, 0, 1}
	if l := view.Forward.Len(); l > 0 {
		forward = view.Forward.Mul(1 / l)
	}

	return Placement{
		Position: view.Position.Add(forward.Mul(distance)),
		Normal:   forward.Mul(-1),
		Yaw:      math.Atan2(forward.X(), forward.Z()),
		Pitch:    -math.Asin(mgl64.Clamp(forward.Y(), -1, 1)),
	}
}
