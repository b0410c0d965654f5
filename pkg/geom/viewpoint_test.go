package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func nearVec(a, b Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestPlaceFacingPosition(t *testing.T) {
	view := Viewpoint{Position: Vec3{1, 2, 3}, Forward: Vec3{0, 0, 2}}

	p := PlaceFacing(view, 3)

	if !nearVec(p.Position, Vec3{1, 2, 6}) {
		t.Errorf("Position: got %+v, want {1 2 6}", p.Position)
	}
	if !nearVec(p.Normal, Vec3{0, 0, -1}) {
		t.Errorf("Normal should point back at the viewer, got %+v", p.Normal)
	}
	if !near(p.Yaw, 0) || !near(p.Pitch, 0) {
		t.Errorf("Yaw/Pitch: got %v/%v, want 0/0", p.Yaw, p.Pitch)
	}
}

// TestPlaceFacingNormalPointsAtViewer checks the surface faces the viewer
// for several view directions.
func TestPlaceFacingNormalPointsAtViewer(t *testing.T) {
	dirs := []Vec3{{1, 0, 0}, {-1, 0, 0}, {0, 0, -1}, {1, 1, 1}, {0, -1, 0.5}}
	for _, d := range dirs {
		view := Viewpoint{Position: Vec3{5, 1, -2}, Forward: d}
		p := PlaceFacing(view, 3)

		toViewer := view.Position.Sub(p.Position).Normalize()
		if !nearVec(toViewer, p.Normal) {
			t.Errorf("dir %+v: normal %+v does not point at viewer %+v", d, p.Normal, toViewer)
		}
		if !near(view.Position.Sub(p.Position).Len(), 3) {
			t.Errorf("dir %+v: surface not at distance 3", d)
		}
		if !nearVec(p.Forward(), d.Normalize()) {
			t.Errorf("dir %+v: Forward %+v", d, p.Forward())
		}
		if front := p.Rotation().Rotate(Vec3{0, 0, 1}); !front.ApproxEqualThreshold(d.Normalize(), 1e-6) {
			t.Errorf("dir %+v: rotated front %+v", d, front)
		}
	}
}

func TestPlaceFacingYaw(t *testing.T) {
	p := PlaceFacing(Viewpoint{Forward: Vec3{1, 0, 0}}, 1)
	if !near(p.Yaw, math.Pi/2) {
		t.Errorf("Yaw facing +X: got %v, want pi/2", p.Yaw)
	}
}

func TestPlaceFacingZeroForward(t *testing.T) {
	p := PlaceFacing(Viewpoint{}, 2)
	if !nearVec(p.Position, Vec3{0, 0, 2}) {
		t.Errorf("zero forward should default to +Z, got %+v", p.Position)
	}
}
