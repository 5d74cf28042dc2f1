package analysis

import (
	"math"
	"testing"

	"github.com/philipparndt/gopoly/pkg/geometry"
)

func TestAnalyzeSquare(t *testing.T) {
	// Square with vertices at (±1, 0) and (0, ±1)
	result := AnalyzePolygon(geometry.MustRegularPolygon(4, 1, 0, 0, 0))

	side := math.Sqrt2
	tests := []struct {
		name      string
		got, want float64
	}{
		{"Perimeter", result.Perimeter, 4 * side},
		{"Area", result.Area, 2},
		{"Apothem", result.Apothem, math.Sqrt2 / 2},
		{"InteriorAngle", result.InteriorAngle, 90},
		{"MinEdgeLength", result.MinEdgeLength, side},
		{"MaxEdgeLength", result.MaxEdgeLength, side},
		{"AvgEdgeLength", result.AvgEdgeLength, side},
		{"Bounds.Width", result.Bounds.Width, 2},
		{"Bounds.Height", result.Bounds.Height, 2},
	}
	for _, tt := range tests {
		if math.Abs(tt.got-tt.want) > 1e-10 {
			t.Errorf("%s failed: expected %v, got %v", tt.name, tt.want, tt.got)
		}
	}

	if len(result.Edges) != 4 {
		t.Fatalf("Expected 4 edges, got %d", len(result.Edges))
	}
	last := result.Edges[3]
	if last.End != result.Edges[0].Start {
		t.Errorf("Last edge should close the polygon: ends at %v", last.End)
	}
}

func TestAnalyzeMatchesClosedForm(t *testing.T) {
	for sides := 3; sides <= 8; sides++ {
		radius := 100.0
		result := AnalyzePolygon(geometry.MustRegularPolygon(sides, radius, 50, -20, 0.3))

		n := float64(sides)
		wantArea := n * radius * radius * math.Sin(2*math.Pi/n) / 2
		wantSide := 2 * radius * math.Sin(math.Pi/n)

		if math.Abs(result.Area-wantArea) > 1e-8 {
			t.Errorf("%d sides: area expected %v, got %v", sides, wantArea, result.Area)
		}
		if math.Abs(result.AvgEdgeLength-wantSide) > 1e-8 {
			t.Errorf("%d sides: side expected %v, got %v", sides, wantSide, result.AvgEdgeLength)
		}
	}
}

func TestAnalyzeNegativeRadius(t *testing.T) {
	pos := AnalyzePolygon(geometry.MustRegularPolygon(5, 40, 0, 0, 0))
	neg := AnalyzePolygon(geometry.MustRegularPolygon(5, -40, 0, 0, 0))

	if math.Abs(pos.Area-neg.Area) > 1e-10 || math.Abs(pos.Apothem-neg.Apothem) > 1e-10 {
		t.Errorf("Negative radius should measure the same: %v vs %v", pos, neg)
	}
}

func TestFormatPoint(t *testing.T) {
	if got := FormatPoint(geometry.NewPoint(1.5, -2)); got != "(1.500000, -2.000000)" {
		t.Errorf("FormatPoint failed: got %q", got)
	}
}
