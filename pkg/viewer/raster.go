package viewer

import (
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

// Painter rasterizes editor draw calls into an RGBA image with gg
type Painter struct {
	dc            *gg.Context
	width, height float64
}

// NewPainter creates a painter for a pixel buffer of the given size.
// scale is the ratio of pixels to canvas units (the display scale).
func NewPainter(width, height int, scale float64) *Painter {
	if scale <= 0 {
		scale = 1
	}
	dc := gg.NewContext(width, height)
	dc.Scale(scale, scale)
	dc.SetLineJoin(gg.LineJoinRound)
	return &Painter{
		dc:     dc,
		width:  float64(width) / scale,
		height: float64(height) / scale,
	}
}

// Size returns the painter size in canvas units
func (p *Painter) Size() (float64, float64) {
	return p.width, p.height
}

// FillRect fills r with c
func (p *Painter) FillRect(r geometry.Rect, c color.RGBA) {
	p.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	p.dc.SetColor(c)
	p.dc.Fill()
}

// StrokeRect outlines r; widths of zero or less draw nothing
func (p *Painter) StrokeRect(r geometry.Rect, c color.RGBA, width float64) {
	if width <= 0 {
		return
	}
	p.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.Stroke()
}

// FillPolygon fills the closed polygon through points
func (p *Painter) FillPolygon(points []geometry.Point, c color.RGBA) {
	p.path(points)
	p.dc.SetColor(c)
	p.dc.Fill()
}

// StrokePolygon outlines the closed polygon through points with round joins
func (p *Painter) StrokePolygon(points []geometry.Point, c color.RGBA, width float64) {
	if width <= 0 {
		return
	}
	p.path(points)
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.Stroke()
}

func (p *Painter) path(points []geometry.Point) {
	p.dc.NewSubPath()
	for i, pt := range points {
		if i == 0 {
			p.dc.MoveTo(pt.X, pt.Y)
		} else {
			p.dc.LineTo(pt.X, pt.Y)
		}
	}
	p.dc.ClosePath()
}

// Text draws s right-aligned at x with its baseline at y using the HUD font
func (p *Painter) Text(s string, x, y float64, c color.RGBA) error {
	face, err := hudFace()
	if err != nil {
		return err
	}
	p.dc.SetFontFace(face)
	p.dc.SetColor(c)
	p.dc.DrawStringAnchored(s, x, y, 1, 0)
	return nil
}

// Image returns the rendered pixels
func (p *Painter) Image() image.Image {
	return p.dc.Image()
}

// EncodePNG writes the rendered pixels as PNG
func (p *Painter) EncodePNG(w io.Writer) error {
	return p.dc.EncodePNG(w)
}
