// Package layout places the palette, canvas, status line and buttons of the
// editor window. The immediate-mode front-ends share it for drawing and hit
// testing.
package layout

import "github.com/philipparndt/gopoly/pkg/geometry"

const (
	Padding       = 10
	ButtonWidth   = 150
	ButtonHeight  = 50
	PaletteWidth  = 200
	PaletteHeight = 200
	LabelWidth    = 500
	LabelHeight   = 50

	DefaultWindowWidth  = 1000
	DefaultWindowHeight = 700
)

// Target identifies what lies under a window position
type Target int

const (
	TargetNone Target = iota
	TargetPalette
	TargetCanvas
	TargetDelete
	TargetExit
)

// Layout holds the window regions in window coordinates
type Layout struct {
	Width, Height float64
	Palette       []geometry.Rect
	Canvas        geometry.Rect
	Status        geometry.Rect
	Delete        geometry.Rect
	Exit          geometry.Rect
}

// New computes the layout of a window of the given size with paletteSize
// palette entries stacked on the left
func New(width, height float64, paletteSize int) Layout {
	l := Layout{
		Width:  width,
		Height: height,
		Canvas: geometry.NewRect(
			Padding*2+PaletteWidth,
			Padding,
			width-(Padding*3+PaletteWidth),
			height-(Padding*3+ButtonHeight),
		),
		Status: geometry.NewRect(Padding, height-Padding-ButtonHeight, LabelWidth, LabelHeight),
		Delete: geometry.NewRect(width-(Padding+ButtonWidth)*2, height-Padding-ButtonHeight, ButtonWidth, ButtonHeight),
		Exit:   geometry.NewRect(width-Padding-ButtonWidth, height-Padding-ButtonHeight, ButtonWidth, ButtonHeight),
	}
	for i := 0; i < paletteSize; i++ {
		y := float64(Padding*(i+1) + PaletteHeight*i)
		l.Palette = append(l.Palette, geometry.NewRect(Padding, y, PaletteWidth, PaletteHeight))
	}
	return l
}

// HitTest returns the region under p. For TargetPalette the index of the
// palette entry is returned as well.
func (l Layout) HitTest(p geometry.Point) (Target, int) {
	for i, r := range l.Palette {
		if r.Contains(p) {
			return TargetPalette, i
		}
	}
	switch {
	case l.Canvas.Contains(p):
		return TargetCanvas, -1
	case l.Delete.Contains(p):
		return TargetDelete, -1
	case l.Exit.Contains(p):
		return TargetExit, -1
	}
	return TargetNone, -1
}

// ToCanvas converts a window position to canvas coordinates
func (l Layout) ToCanvas(p geometry.Point) geometry.Point {
	return p.Sub(l.Canvas.Origin())
}
