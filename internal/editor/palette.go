package editor

import "github.com/philipparndt/gopoly/pkg/geometry"

// DefaultRadius is the circumscribed radius of newly placed shapes
const DefaultRadius = 100.0

// Palette returns the shapes offered for placement. Placed shapes start
// unrotated; the icon rotations only make the icons sit upright.
func Palette(radius float64) []geometry.Template {
	return []geometry.Template{
		{Name: "Triangle", Sides: 3, Radius: radius, IconRotation: -90},
		{Name: "Square", Sides: 4, Radius: radius, IconRotation: -45},
		{Name: "Pentagon", Sides: 5, Radius: radius, IconRotation: -22},
	}
}
