package editor

import (
	"image/color"

	"github.com/philipparndt/gopoly/pkg/geometry"
)

// Painter is the drawing surface a toolkit hands to Render.
// Coordinates are canvas coordinates.
type Painter interface {
	Size() (width, height float64)
	FillRect(r geometry.Rect, c color.RGBA)
	StrokeRect(r geometry.Rect, c color.RGBA, width float64)
	FillPolygon(points []geometry.Point, c color.RGBA)
	StrokePolygon(points []geometry.Point, c color.RGBA, width float64)
}

// Style holds the fixed colors and sizes used to draw the canvas
type Style struct {
	Background   color.RGBA
	Fill         color.RGBA
	Outline      color.RGBA
	OutlineWidth float64
	Marker       color.RGBA
	MarkerSize   float64
}

// DefaultStyle returns red shapes with a black 5px outline and 10px blue
// vertex markers on a white background
func DefaultStyle() Style {
	return Style{
		Background:   color.RGBA{R: 255, G: 255, B: 255, A: 255},
		Fill:         color.RGBA{R: 255, A: 255},
		Outline:      color.RGBA{A: 255},
		OutlineWidth: 5,
		Marker:       color.RGBA{B: 255, A: 255},
		MarkerSize:   10,
	}
}

// Render draws the canvas border and background, every placed shape, and
// vertex markers on the selected shape. It only reads canvas state.
func (c *Canvas) Render(p Painter) {
	w, h := p.Size()
	bounds := geometry.NewRect(0, 0, w, h)
	p.FillRect(bounds, c.style.Background)
	p.StrokeRect(bounds, c.style.Outline, c.style.OutlineWidth)

	selected, editing := c.mode.Selected()
	for i, shape := range c.shapes[:c.count] {
		vertices := shape.Vertices()
		p.FillPolygon(vertices, c.style.Fill)
		p.StrokePolygon(vertices, c.style.Outline, c.style.OutlineWidth)

		if editing && i == selected {
			for _, v := range vertices {
				p.FillRect(geometry.RectAround(v, c.style.MarkerSize), c.style.Marker)
			}
		}
	}
}

// OnRedrawRequested renders the canvas onto the painter supplied by the host
func (c *Canvas) OnRedrawRequested(p Painter) {
	c.Render(p)
}
