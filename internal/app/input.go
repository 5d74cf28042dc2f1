package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/layout"
	"github.com/philipparndt/gopoly/internal/logging"
	"github.com/philipparndt/gopoly/pkg/geometry"
)

var mouseButtons = []struct {
	raylib rl.MouseButton
	editor editor.Button
}{
	{rl.MouseLeftButton, editor.ButtonPrimary},
	{rl.MouseRightButton, editor.ButtonSecondary},
}

var editorKeys = []struct {
	raylib int32
	editor editor.Key
}{
	{rl.KeyDelete, editor.KeyDelete},
	{rl.KeyBackspace, editor.KeyBackspace},
	{rl.KeyEscape, editor.KeyEscape},
}

// handleInput processes user input
func (app *App) handleInput() {
	mouse := rl.GetMousePosition()
	p := geometry.NewPoint(float64(mouse.X), float64(mouse.Y))
	moved := p != app.Interaction.mousePos
	app.Interaction.mousePos = p

	l := app.Window.layout
	app.UI.hoverTarget, app.UI.hoverIndex = l.HitTest(p)

	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.raylib) {
			app.handlePress(b.editor, p)
		}
	}

	// Moves reach the editor only during a drag; a drag that leaves the
	// canvas keeps following the pointer until release
	if moved && app.Canvas.editor.Dragging() {
		app.Canvas.editor.OnPointerMove(l.ToCanvas(p))
	}

	for _, b := range mouseButtons {
		if rl.IsMouseButtonReleased(b.raylib) && app.Interaction.captured[b.editor-1] {
			app.Interaction.captured[b.editor-1] = false
			app.Canvas.editor.OnPointerUp(b.editor, l.ToCanvas(p))
		}
	}

	for _, k := range editorKeys {
		if rl.IsKeyPressed(k.raylib) {
			app.Canvas.editor.OnKeyDown(k.editor)
		}
	}
}

// handlePress dispatches a button press to the region under the pointer
func (app *App) handlePress(button editor.Button, p geometry.Point) {
	l := app.Window.layout
	target, index := l.HitTest(p)

	if target == layout.TargetCanvas {
		app.Interaction.captured[button-1] = true
		app.Canvas.editor.OnPointerDown(button, l.ToCanvas(p))
		return
	}

	// Palette and buttons only react to the primary button
	if button != editor.ButtonPrimary {
		return
	}
	switch target {
	case layout.TargetPalette:
		t := app.Canvas.palette[index]
		if err := app.Canvas.editor.SelectTemplate(t); err != nil {
			logging.Logger().Error("palette entry rejected", "template", t.Name, "error", err)
		}
	case layout.TargetDelete:
		_ = app.Canvas.editor.Delete()
	case layout.TargetExit:
		app.Window.quit = true
	}
}
