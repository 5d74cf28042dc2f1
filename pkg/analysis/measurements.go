package analysis

import (
	"fmt"
	"math"

	"github.com/philipparndt/gopoly/pkg/geometry"
)

// EdgeInfo contains information about an edge of a polygon
type EdgeInfo struct {
	Start  geometry.Point
	End    geometry.Point
	Length float64
	Index  int
}

// MeasurementResult contains measurements of a regular polygon computed
// from its vertices
type MeasurementResult struct {
	Bounds        geometry.Rect
	Sides         int
	Perimeter     float64
	Area          float64
	Apothem       float64
	InteriorAngle float64 // degrees
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	Edges         []EdgeInfo
}

// AnalyzePolygon measures a polygon. Negative radii give the same result as
// their absolute value.
func AnalyzePolygon(poly geometry.RegularPolygon) *MeasurementResult {
	vertices := poly.Vertices()
	result := &MeasurementResult{
		Sides:         poly.Sides,
		Bounds:        boundingBox(vertices),
		Apothem:       math.Abs(poly.Radius) * math.Cos(math.Pi/float64(poly.Sides)),
		InteriorAngle: 180 * float64(poly.Sides-2) / float64(poly.Sides),
		Edges:         make([]EdgeInfo, 0, len(vertices)),
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	area := 0.0

	for i, start := range vertices {
		end := vertices[(i+1)%len(vertices)]
		length := start.Distance(end)
		result.Edges = append(result.Edges, EdgeInfo{Start: start, End: end, Length: length, Index: i})
		result.Perimeter += length

		if length < minLength {
			minLength = length
		}
		if length > maxLength {
			maxLength = length
		}

		// Shoelace formula
		area += start.X*end.Y - end.X*start.Y
	}

	result.Area = math.Abs(area) / 2
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = result.Perimeter / float64(len(vertices))
	return result
}

func boundingBox(points []geometry.Point) geometry.Rect {
	if len(points) == 0 {
		return geometry.Rect{}
	}
	minX, minY := points[0].X, points[0].Y
	maxX, maxY := minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return geometry.NewRect(minX, minY, maxX-minX, maxY-minY)
}

// FormatMeasurement formats a measurement value with appropriate precision
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatPoint formats a point for display
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.6f, %.6f)", p.X, p.Y)
}
