package editor

import "github.com/philipparndt/gopoly/pkg/geometry"

// Damping divisors for the drag gestures
const (
	ResizeDamping = 6.0
	RotateDamping = 15.0
)

// anchor is the last pointer position seen during a drag
type anchor struct {
	pos    geometry.Point
	active bool
}

func anchorAt(p geometry.Point) anchor {
	return anchor{pos: p, active: true}
}

// ResizeDelta returns the radius change for a pointer moving from a to p.
//
// Moves whose x and y components have opposite signs (towards the lower
// left or upper right) shrink the shape; all other moves grow it.
func ResizeDelta(a, p geometry.Point) float64 {
	direction := 1.0
	if (a.X-p.X)*(a.Y-p.Y) < 0 {
		direction = -1
	}
	return direction * a.Distance(p) / ResizeDamping
}

// RotateDelta returns the rotation change, in radians, for a pointer moving
// from a to p. Only the distance counts, so the rotation never decreases.
func RotateDelta(a, p geometry.Point) float64 {
	return a.Distance(p) / RotateDamping
}

// NearestCenter returns the index of the shape whose center is closest to p.
// Ties go to the lowest index. It returns false when shapes is empty.
func NearestCenter(shapes []geometry.RegularPolygon, p geometry.Point) (int, bool) {
	if len(shapes) == 0 {
		return -1, false
	}
	nearest := 0
	minDist := shapes[0].Center.Distance(p)
	for i, shape := range shapes[1:] {
		if dist := shape.Center.Distance(p); dist < minDist {
			minDist = dist
			nearest = i + 1
		}
	}
	return nearest, true
}
