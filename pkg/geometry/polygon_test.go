package geometry

import (
	"errors"
	"math"
	"testing"
)

func TestRegularPolygonVertices(t *testing.T) {
	for sides := 3; sides <= 12; sides++ {
		for _, radius := range []float64{100, 0.5, -40} {
			p, err := NewRegularPolygon(sides, radius, 30, -20, 0.7)
			if err != nil {
				t.Fatalf("NewRegularPolygon(%d) failed: %v", sides, err)
			}

			vertices := p.Vertices()
			if len(vertices) != sides {
				t.Fatalf("expected %d vertices, got %d", sides, len(vertices))
			}

			step := 2 * math.Pi / float64(sides)
			for i, v := range vertices {
				// Every vertex sits on the circumscribed circle
				dist := v.Distance(p.Center)
				if math.Abs(dist-math.Abs(radius)) > 1e-9 {
					t.Errorf("sides=%d radius=%v vertex %d: distance %v, want %v", sides, radius, i, dist, math.Abs(radius))
				}

				// ...at an angle of rotation + i*step
				angle := 0.7 + step*float64(i)
				expected := NewPoint(radius*math.Cos(angle)+30, radius*math.Sin(angle)-20)
				if v.Distance(expected) > 1e-9 {
					t.Errorf("sides=%d vertex %d: expected %v, got %v", sides, i, expected, v)
				}
			}
		}
	}
}

func TestRegularPolygonSquare(t *testing.T) {
	p := MustRegularPolygon(4, 10, 0, 0, 0)
	expected := []Point{
		NewPoint(10, 0),
		NewPoint(0, 10),
		NewPoint(-10, 0),
		NewPoint(0, -10),
	}

	for i, v := range p.Vertices() {
		if v.Distance(expected[i]) > 1e-10 {
			t.Errorf("vertex %d: expected %v, got %v", i, expected[i], v)
		}
	}
}

func TestRegularPolygonNegativeRadiusMirrors(t *testing.T) {
	center := NewPoint(50, 50)
	p := MustRegularPolygon(3, 20, center.X, center.Y, 0.3)
	mirrored := p.WithRadius(-20)

	for i := 0; i < p.Sides; i++ {
		v := p.Vertex(i)
		m := mirrored.Vertex(i)
		// Point reflection through the center: m = 2c - v
		reflected := center.Mul(2).Sub(v)
		if m.Distance(reflected) > 1e-10 {
			t.Errorf("vertex %d: expected %v, got %v", i, reflected, m)
		}
	}
}

func TestNewRegularPolygonInvalid(t *testing.T) {
	for _, sides := range []int{-1, 0, 1, 2} {
		_, err := NewRegularPolygon(sides, 10, 0, 0, 0)
		if !errors.Is(err, ErrInvalidShape) {
			t.Errorf("sides=%d: expected ErrInvalidShape, got %v", sides, err)
		}
	}
}

func TestMustRegularPolygonPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for a 2-sided polygon")
		}
	}()
	MustRegularPolygon(2, 10, 0, 0, 0)
}

func TestRegularPolygonWithCopies(t *testing.T) {
	p := MustRegularPolygon(5, 100, 10, 20, 0)

	grown := p.WithRadius(120)
	rotated := p.WithRotation(1.5)

	if p.Radius != 100 || p.Rotation != 0 || p.Center != NewPoint(10, 20) {
		t.Errorf("original was modified: %+v", p)
	}
	if grown.Radius != 120 || grown.Sides != 5 {
		t.Errorf("WithRadius failed: %+v", grown)
	}
	if rotated.Rotation != 1.5 || rotated.Radius != 100 {
		t.Errorf("WithRotation failed: %+v", rotated)
	}
}

func TestTemplateAt(t *testing.T) {
	tmpl := Template{Name: "pentagon", Sides: 5, Radius: 100, Rotation: 0.25}
	p := tmpl.At(NewPoint(300, 200))

	expected := MustRegularPolygon(5, 100, 300, 200, 0.25)
	if p != expected {
		t.Errorf("At failed: expected %+v, got %+v", expected, p)
	}
}

func TestTemplateValidate(t *testing.T) {
	if err := (Template{Name: "square", Sides: 4}).Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := (Template{Name: "line", Sides: 2}).Validate(); !errors.Is(err, ErrInvalidShape) {
		t.Errorf("expected ErrInvalidShape, got %v", err)
	}
}

func TestTemplateIcon(t *testing.T) {
	tmpl := Template{Name: "triangle", Sides: 3, IconRotation: -90}
	icon := tmpl.Icon(200, 10)

	if icon.Radius != 90 {
		t.Errorf("expected icon radius 90, got %v", icon.Radius)
	}
	// First vertex points straight up
	top := icon.Vertex(0)
	if math.Abs(top.X-100) > 1e-9 || math.Abs(top.Y-10) > 1e-9 {
		t.Errorf("expected top vertex at (100, 10), got %v", top)
	}
}
