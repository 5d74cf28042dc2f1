package geometry

import (
	"errors"
	"fmt"
	"math"
)

// MinSides is the smallest vertex count of a regular polygon
const MinSides = 3

// ErrInvalidShape is returned when a polygon is built with fewer than MinSides vertices
var ErrInvalidShape = errors.New("invalid shape")

// RegularPolygon is a polygon whose vertices lie on a circle of the given
// radius around Center, spaced evenly starting at Rotation.
//
// Only the four scalars are stored; vertices are derived on demand. A
// negative radius is valid and reflects the polygon through its center.
type RegularPolygon struct {
	Sides    int
	Radius   float64
	Center   Point
	Rotation float64 // radians, unbounded
}

// NewRegularPolygon creates a regular polygon
func NewRegularPolygon(sides int, radius, centerX, centerY, rotation float64) (RegularPolygon, error) {
	if sides < MinSides {
		return RegularPolygon{}, fmt.Errorf("%w: %d sides (need at least %d)", ErrInvalidShape, sides, MinSides)
	}
	return RegularPolygon{
		Sides:    sides,
		Radius:   radius,
		Center:   NewPoint(centerX, centerY),
		Rotation: rotation,
	}, nil
}

// MustRegularPolygon is like NewRegularPolygon but panics on an invalid vertex count
func MustRegularPolygon(sides int, radius, centerX, centerY, rotation float64) RegularPolygon {
	p, err := NewRegularPolygon(sides, radius, centerX, centerY, rotation)
	if err != nil {
		panic(err)
	}
	return p
}

// Step returns the angle between two consecutive vertices
func (p RegularPolygon) Step() float64 {
	return 2 * math.Pi / float64(p.Sides)
}

// Vertex returns the i-th vertex
func (p RegularPolygon) Vertex(i int) Point {
	angle := p.Step()*float64(i) + p.Rotation
	return Point{
		X: p.Radius*math.Cos(angle) + p.Center.X,
		Y: p.Radius*math.Sin(angle) + p.Center.Y,
	}
}

// Vertices returns all vertices in order
func (p RegularPolygon) Vertices() []Point {
	vertices := make([]Point, p.Sides)
	for i := range vertices {
		vertices[i] = p.Vertex(i)
	}
	return vertices
}

// WithRadius returns a copy with a different radius
func (p RegularPolygon) WithRadius(radius float64) RegularPolygon {
	p.Radius = radius
	return p
}

// WithRotation returns a copy with a different rotation
func (p RegularPolygon) WithRotation(rotation float64) RegularPolygon {
	p.Rotation = rotation
	return p
}

// Template describes a polygon that has been chosen but not yet placed
type Template struct {
	Name     string
	Sides    int
	Radius   float64
	Rotation float64 // radians, applied to placed shapes

	// IconRotation is the rotation, in degrees, used when drawing the
	// template as a palette icon so that the shape sits upright.
	IconRotation float64
}

// Validate checks that the template describes a valid polygon
func (t Template) Validate() error {
	if t.Sides < MinSides {
		return fmt.Errorf("%w: template %q has %d sides", ErrInvalidShape, t.Name, t.Sides)
	}
	return nil
}

// At instantiates the template centered on the given point
func (t Template) At(center Point) RegularPolygon {
	return MustRegularPolygon(t.Sides, t.Radius, center.X, center.Y, t.Rotation)
}

// Icon returns the template as it is drawn inside a square icon of the given size
func (t Template) Icon(size, padding float64) RegularPolygon {
	half := size / 2
	return MustRegularPolygon(t.Sides, half-padding, half, half, Radians(t.IconRotation))
}
