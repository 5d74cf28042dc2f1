package app

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/layout"
	"github.com/philipparndt/gopoly/pkg/geometry"
	"github.com/philipparndt/gopoly/version"
)

var (
	windowBackground = rl.NewColor(235, 235, 235, 255)
	buttonFace       = rl.NewColor(250, 250, 250, 255)
	buttonHover      = rl.NewColor(210, 225, 245, 255)
	buttonBorder     = rl.NewColor(120, 120, 120, 255)
	textColor        = rl.NewColor(30, 30, 30, 255)
	dimText          = rl.NewColor(130, 130, 130, 255)
)

const (
	fontSize12 = 12
	fontSize16 = 16
	fontSize20 = 20
	lineGap    = 2
)

// drawUI draws the palette, the buttons and the status line
func (app *App) drawUI() {
	l := app.Window.layout
	style := app.Canvas.editor.Style()

	for i, r := range l.Palette {
		hovered := app.UI.hoverTarget == layout.TargetPalette && app.UI.hoverIndex == i
		drawPanel(r, hovered)

		// Icons are drawn directly on screen every frame
		icon := app.Canvas.palette[i].Icon(r.Width, layout.Padding)
		p := newPainter(r)
		vertices := icon.Vertices()
		p.FillPolygon(vertices, style.Fill)
		p.StrokePolygon(vertices, style.Outline, 1)
	}

	app.drawButton(l.Delete, "Delete", layout.TargetDelete)
	app.drawButton(l.Exit, "Exit", layout.TargetExit)
	app.drawStatus(l.Status)

	// Shape counter and version, bottom-right of the canvas
	info := fmt.Sprintf("%d/%d  %s", app.Canvas.editor.Len(), editor.MaxShapes, version.GetVersion())
	width := rl.MeasureText(info, fontSize16)
	rl.DrawText(info,
		int32(l.Canvas.X+l.Canvas.Width)-width-layout.Padding,
		int32(l.Canvas.Y+l.Canvas.Height)-fontSize16-layout.Padding,
		fontSize16, dimText)
}

func (app *App) drawButton(r geometry.Rect, label string, target layout.Target) {
	drawPanel(r, app.UI.hoverTarget == target)
	width := rl.MeasureText(label, fontSize20)
	center := r.Center()
	rl.DrawText(label, int32(center.X)-width/2, int32(center.Y)-fontSize20/2, fontSize20, textColor)
}

// drawStatus draws the status text, one line per text line
func (app *App) drawStatus(r geometry.Rect) {
	lines := strings.Split(app.UI.status, "\n")
	size := int32(fontSize20)
	if len(lines) > 1 {
		size = fontSize12
	}
	height := int32(len(lines))*(size+lineGap) - lineGap
	y := int32(r.Center().Y) - height/2
	for _, line := range lines {
		rl.DrawText(line, int32(r.X), y, size, textColor)
		y += size + lineGap
	}
}

func drawPanel(r geometry.Rect, hovered bool) {
	face := buttonFace
	if hovered {
		face = buttonHover
	}
	rec := toRect(r)
	rl.DrawRectangleRec(rec, face)
	rl.DrawRectangleLinesEx(rec, 1, buttonBorder)
}
