// Package arcade is the ebiten front-end of the polygon editor.
package arcade

import (
	"errors"
	"fmt"
	"image/color"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/philipparndt/gopoly/internal/config"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/layout"
	"github.com/philipparndt/gopoly/internal/logging"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

// debugPrint glyph size
const (
	glyphWidth  = 6
	glyphHeight = 16
)

var (
	windowBackground = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	buttonFace       = color.RGBA{R: 250, G: 250, B: 250, A: 255}
	buttonHover      = color.RGBA{R: 210, G: 225, B: 245, A: 255}
	buttonBorder     = color.RGBA{R: 120, G: 120, B: 120, A: 255}
)

var mouseButtons = []struct {
	ebiten ebiten.MouseButton
	editor editor.Button
}{
	{ebiten.MouseButtonLeft, editor.ButtonPrimary},
	{ebiten.MouseButtonRight, editor.ButtonSecondary},
}

var editorKeys = []struct {
	ebiten ebiten.Key
	editor editor.Key
}{
	{ebiten.KeyDelete, editor.KeyDelete},
	{ebiten.KeyBackspace, editor.KeyBackspace},
	{ebiten.KeyEscape, editor.KeyEscape},
}

type game struct {
	editor  *editor.Canvas
	palette []geometry.Template
	layout  layout.Layout

	// canvas pixels, redrawn only when dirty
	canvas *ebiten.Image
	dirty  bool

	status   string
	captured [2]bool // indexed by editor button - 1
	mousePos geometry.Point
	quit     bool

	pendingStyle atomic.Pointer[editor.Style] // set by the settings watcher
}

func newGame(cfg config.Config, style editor.Style) *game {
	g := &game{
		palette: editor.Palette(cfg.Shape.DefaultRadius),
		status:  editor.MessageChooseShape,
	}
	g.editor = editor.NewCanvas(editor.HostFuncs{
		Redraw: func() { g.dirty = true },
		Status: func(text string) { g.status = text },
	})
	g.editor.SetStyle(style)
	g.layout = layout.New(float64(cfg.Window.Width), float64(cfg.Window.Height), len(g.palette))
	return g
}

// Run opens the editor window and blocks until it is closed.
// configPath is watched for style changes when non-empty.
func Run(cfg config.Config, configPath string) error {
	style, err := cfg.Style.EditorStyle()
	if err != nil {
		return err
	}

	g := newGame(cfg, style)

	if configPath != "" {
		fw, err := config.WatchStyle(configPath, func(style editor.Style) {
			g.pendingStyle.Store(&style)
		})
		if err != nil {
			logging.Logger().Warn("style hot reload disabled", "error", err)
		} else {
			defer fw.Close()
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle("gopoly")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	logging.Logger().Info("editor started", "backend", "ebiten", "width", cfg.Window.Width, "height", cfg.Window.Height)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("game loop failed: %w", err)
	}
	logging.Logger().Info("editor closed", "shapes", g.editor.Len())
	return nil
}

func (g *game) Update() error {
	if style := g.pendingStyle.Swap(nil); style != nil {
		g.editor.SetStyle(*style)
	}

	x, y := ebiten.CursorPosition()
	p := geometry.NewPoint(float64(x), float64(y))
	moved := p != g.mousePos
	g.mousePos = p

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.ebiten) {
			g.handlePress(b.editor, p)
		}
	}

	if moved && g.editor.Dragging() {
		g.editor.OnPointerMove(g.layout.ToCanvas(p))
	}

	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustReleased(b.ebiten) && g.captured[b.editor-1] {
			g.captured[b.editor-1] = false
			g.editor.OnPointerUp(b.editor, g.layout.ToCanvas(p))
		}
	}

	for _, k := range editorKeys {
		if inpututil.IsKeyJustPressed(k.ebiten) {
			g.editor.OnKeyDown(k.editor)
		}
	}

	if g.quit {
		return ebiten.Termination
	}
	return nil
}

// handlePress dispatches a button press to the region under the pointer
func (g *game) handlePress(button editor.Button, p geometry.Point) {
	target, index := g.layout.HitTest(p)

	if target == layout.TargetCanvas {
		g.captured[button-1] = true
		g.editor.OnPointerDown(button, g.layout.ToCanvas(p))
		return
	}

	if button != editor.ButtonPrimary {
		return
	}
	switch target {
	case layout.TargetPalette:
		t := g.palette[index]
		if err := g.editor.SelectTemplate(t); err != nil {
			logging.Logger().Error("palette entry rejected", "template", t.Name, "error", err)
		}
	case layout.TargetDelete:
		_ = g.editor.Delete()
	case layout.TargetExit:
		g.quit = true
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBackground)

	g.ensureCanvas()
	if g.dirty {
		g.canvas.Clear()
		w, h := g.canvas.Bounds().Dx(), g.canvas.Bounds().Dy()
		g.editor.OnRedrawRequested(newPainter(g.canvas, geometry.NewRect(0, 0, float64(w), float64(h))))
		g.dirty = false
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(g.layout.Canvas.X, g.layout.Canvas.Y)
	screen.DrawImage(g.canvas, op)

	g.drawUI(screen)
}

// ensureCanvas (re)creates the offscreen image to match the canvas size
func (g *game) ensureCanvas() {
	w, h := int(g.layout.Canvas.Width), int(g.layout.Canvas.Height)
	if g.canvas != nil {
		b := g.canvas.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return
		}
		g.canvas.Deallocate()
	}
	g.canvas = ebiten.NewImage(w, h)
	g.dirty = true
}

func (g *game) drawUI(screen *ebiten.Image) {
	hover, hoverIndex := g.layout.HitTest(g.mousePos)
	style := g.editor.Style()

	for i, r := range g.layout.Palette {
		drawPanel(screen, r, hover == layout.TargetPalette && hoverIndex == i)
		vertices := g.palette[i].Icon(r.Width, layout.Padding).Vertices()
		p := newPainter(screen, r)
		p.FillPolygon(vertices, style.Fill)
		p.StrokePolygon(vertices, style.Outline, 1)
	}

	g.drawButton(screen, g.layout.Delete, "Delete", hover == layout.TargetDelete)
	g.drawButton(screen, g.layout.Exit, "Exit", hover == layout.TargetExit)

	// DebugPrintAt handles multi-line text
	ebitenutil.DebugPrintAt(screen, g.status, int(g.layout.Status.X), int(g.layout.Status.Y))

	counter := fmt.Sprintf("%d/%d", g.editor.Len(), editor.MaxShapes)
	c := g.layout.Canvas
	ebitenutil.DebugPrintAt(screen, counter,
		int(c.X+c.Width)-len(counter)*glyphWidth-layout.Padding,
		int(c.Y+c.Height)-glyphHeight-layout.Padding)
}

func (g *game) drawButton(screen *ebiten.Image, r geometry.Rect, label string, hovered bool) {
	drawPanel(screen, r, hovered)
	center := r.Center()
	ebitenutil.DebugPrintAt(screen, label, int(center.X)-len(label)*glyphWidth/2, int(center.Y)-glyphHeight/2)
}

func drawPanel(screen *ebiten.Image, r geometry.Rect, hovered bool) {
	face := buttonFace
	if hovered {
		face = buttonHover
	}
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), face, false)
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, buttonBorder, false)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if float64(outsideWidth) != g.layout.Width || float64(outsideHeight) != g.layout.Height {
		g.layout = layout.New(float64(outsideWidth), float64(outsideHeight), len(g.palette))
	}
	return outsideWidth, outsideHeight
}
