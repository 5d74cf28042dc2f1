// Package viewer provides a fyne widget for the polygon editor canvas.
// Pixels are rasterized with gg on every requested redraw.
package viewer

import (
	"fmt"
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/logging"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

// EditorCanvas is a fyne widget that feeds mouse and key events to an
// editor.Canvas and displays its rendering
type EditorCanvas struct {
	widget.BaseWidget
	editor *editor.Canvas
	raster *canvas.Raster

	// ShowCount draws the number of placed shapes in the bottom-right corner
	ShowCount bool
}

var (
	_ desktop.Mouseable = (*EditorCanvas)(nil)
	_ desktop.Hoverable = (*EditorCanvas)(nil)
	_ fyne.Draggable    = (*EditorCanvas)(nil)
)

// NewEditorCanvas creates the widget. onStatus receives status line texts.
func NewEditorCanvas(onStatus func(string)) *EditorCanvas {
	ec := &EditorCanvas{ShowCount: true}
	ec.raster = canvas.NewRaster(ec.draw)
	ec.raster.SetMinSize(fyne.NewSize(400, 300))
	ec.editor = editor.NewCanvas(editor.HostFuncs{
		Redraw: ec.raster.Refresh,
		Status: onStatus,
	})
	ec.ExtendBaseWidget(ec)
	return ec
}

// Editor returns the canvas controller driven by this widget
func (ec *EditorCanvas) Editor() *editor.Canvas {
	return ec.editor
}

// CreateRenderer creates the renderer for the widget
func (ec *EditorCanvas) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(ec.raster)
}

// draw is the raster generator; w and h are in pixels
func (ec *EditorCanvas) draw(w, h int) image.Image {
	scale := 1.0
	if size := ec.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}

	p := NewPainter(w, h, scale)
	ec.editor.OnRedrawRequested(p)

	if ec.ShowCount {
		width, height := p.Size()
		label := fmt.Sprintf("%d/%d", ec.editor.Len(), editor.MaxShapes)
		if err := p.Text(label, width-10, height-10, color.RGBA{R: 96, G: 96, B: 96, A: 255}); err != nil {
			logging.Logger().Warn("shape counter not drawn", "error", err)
		}
	}
	return p.Image()
}

// MouseDown handles button presses
func (ec *EditorCanvas) MouseDown(ev *desktop.MouseEvent) {
	ec.editor.OnPointerDown(toButton(ev.Button), toPoint(ev.Position))
}

// MouseUp handles button releases
func (ec *EditorCanvas) MouseUp(ev *desktop.MouseEvent) {
	ec.editor.OnPointerUp(toButton(ev.Button), toPoint(ev.Position))
}

func (ec *EditorCanvas) MouseIn(*desktop.MouseEvent) {}

// MouseMoved forwards moves while a gesture is active; secondary-button
// drags arrive here
func (ec *EditorCanvas) MouseMoved(ev *desktop.MouseEvent) {
	if ec.editor.Dragging() {
		ec.editor.OnPointerMove(toPoint(ev.Position))
	}
}

func (ec *EditorCanvas) MouseOut() {}

// Dragged handles primary-button drags
func (ec *EditorCanvas) Dragged(ev *fyne.DragEvent) {
	ec.editor.OnPointerMove(toPoint(ev.Position))
}

// DragEnd ends a primary-button drag that was released outside the widget
func (ec *EditorCanvas) DragEnd() {
	ec.editor.OnPointerUp(editor.ButtonPrimary, geometry.Point{})
}

// HandleKey forwards window key presses to the editor
func (ec *EditorCanvas) HandleKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyDelete:
		ec.editor.OnKeyDown(editor.KeyDelete)
	case fyne.KeyBackspace:
		ec.editor.OnKeyDown(editor.KeyBackspace)
	case fyne.KeyEscape:
		ec.editor.OnKeyDown(editor.KeyEscape)
	}
}

func toButton(b desktop.MouseButton) editor.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return editor.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return editor.ButtonSecondary
	default:
		return editor.ButtonNone
	}
}

func toPoint(p fyne.Position) geometry.Point {
	return geometry.NewPoint(float64(p.X), float64(p.Y))
}
