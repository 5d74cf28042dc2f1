package app

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

// painter draws editor primitives with raylib. Positions are offset by
// origin, so the same painter serves the offscreen canvas and the palette
// icons on screen.
type painter struct {
	origin        geometry.Point
	width, height float64
}

var _ editor.Painter = painter{}

func newPainter(r geometry.Rect) painter {
	return painter{origin: r.Origin(), width: r.Width, height: r.Height}
}

func (p painter) Size() (float64, float64) {
	return p.width, p.height
}

func (p painter) FillRect(r geometry.Rect, c color.RGBA) {
	rl.DrawRectangleRec(p.rect(r), toColor(c))
}

func (p painter) StrokeRect(r geometry.Rect, c color.RGBA, width float64) {
	if width <= 0 {
		return
	}
	rl.DrawRectangleLinesEx(p.rect(r), float32(width), toColor(c))
}

// FillPolygon draws a triangle fan. raylib culls clockwise triangles, so
// every triangle is issued in both windings.
func (p painter) FillPolygon(points []geometry.Point, c color.RGBA) {
	if len(points) < 3 {
		return
	}
	col := toColor(c)
	first := p.vec(points[0])
	for i := 1; i < len(points)-1; i++ {
		b, d := p.vec(points[i]), p.vec(points[i+1])
		rl.DrawTriangle(first, b, d, col)
		rl.DrawTriangle(first, d, b, col)
	}
}

func (p painter) StrokePolygon(points []geometry.Point, c color.RGBA, width float64) {
	if width <= 0 || len(points) < 2 {
		return
	}
	col := toColor(c)
	for i, pt := range points {
		next := points[(i+1)%len(points)]
		rl.DrawLineEx(p.vec(pt), p.vec(next), float32(width), col)
		// Round joins
		rl.DrawCircleV(p.vec(pt), float32(width/2), col)
	}
}

func (p painter) vec(pt geometry.Point) rl.Vector2 {
	at := pt.Add(p.origin)
	return rl.Vector2{X: float32(at.X), Y: float32(at.Y)}
}

func (p painter) rect(r geometry.Rect) rl.Rectangle {
	return rl.Rectangle{
		X:      float32(r.X + p.origin.X),
		Y:      float32(r.Y + p.origin.Y),
		Width:  float32(r.Width),
		Height: float32(r.Height),
	}
}

// toColor converts a premultiplied color to raylib's straight alpha
func toColor(c color.RGBA) rl.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return rl.NewColor(n.R, n.G, n.B, n.A)
}

func toRect(r geometry.Rect) rl.Rectangle {
	return rl.Rectangle{X: float32(r.X), Y: float32(r.Y), Width: float32(r.Width), Height: float32(r.Height)}
}

// redrawCanvas renders the editor into the offscreen texture
func (app *App) redrawCanvas() {
	app.ensureTarget()

	rl.BeginTextureMode(app.Canvas.target)
	rl.ClearBackground(rl.Blank)
	app.Canvas.editor.OnRedrawRequested(painter{
		width:  float64(app.Canvas.width),
		height: float64(app.Canvas.height),
	})
	rl.EndTextureMode()

	app.Canvas.dirty = false
}

// ensureTarget (re)creates the offscreen texture to match the canvas size
func (app *App) ensureTarget() {
	r := app.Window.layout.Canvas
	w, h := int32(r.Width), int32(r.Height)
	if app.Canvas.loaded && w == app.Canvas.width && h == app.Canvas.height {
		return
	}
	if app.Canvas.loaded {
		rl.UnloadRenderTexture(app.Canvas.target)
	}
	app.Canvas.target = rl.LoadRenderTexture(w, h)
	app.Canvas.width, app.Canvas.height = w, h
	app.Canvas.loaded = true
	app.Canvas.dirty = true
}

// drawCanvas blits the offscreen texture into the canvas region
func (app *App) drawCanvas() {
	if !app.Canvas.loaded {
		return
	}
	origin := app.Window.layout.Canvas.Origin()
	// Render textures are stored bottom-up
	src := rl.Rectangle{Width: float32(app.Canvas.width), Height: -float32(app.Canvas.height)}
	rl.DrawTextureRec(app.Canvas.target.Texture, src, rl.Vector2{X: float32(origin.X), Y: float32(origin.Y)}, rl.White)
}
