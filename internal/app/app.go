// Package app is the raylib front-end of the polygon editor.
package app

import (
	"errors"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopoly/internal/config"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/layout"
	"github.com/philipparndt/gopoly/internal/logging"
)

type App struct {
	Canvas      CanvasState
	Interaction InteractionState
	Window      WindowState
	Reload      ReloadState
	UI          UIState
}

// Run opens the editor window and blocks until it is closed.
// configPath is watched for style changes when non-empty.
func Run(cfg config.Config, configPath string) error {
	style, err := cfg.Style.EditorStyle()
	if err != nil {
		return err
	}

	// Initialize window
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagWindowHighdpi | rl.FlagMsaa4xHint) // Must be before InitWindow
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "gopoly")
	if !rl.IsWindowReady() {
		return errors.New("failed to open window")
	}
	defer rl.CloseWindow()
	rl.SetWindowMinSize(layout.DefaultWindowWidth/2, layout.DefaultWindowHeight/2)
	rl.SetTargetFPS(60)
	// Escape leaves placement mode instead of closing the window
	rl.SetExitKey(rl.KeyNull)

	app := &App{
		UI:     UIState{status: editor.MessageChooseShape},
		Reload: ReloadState{configPath: configPath},
	}
	app.Canvas.palette = editor.Palette(cfg.Shape.DefaultRadius)
	app.Canvas.editor = editor.NewCanvas(editor.HostFuncs{
		Redraw: func() { app.Canvas.dirty = true },
		Status: func(text string) { app.UI.status = text },
	})
	app.Canvas.editor.SetStyle(style)
	defer func() {
		if app.Canvas.loaded {
			rl.UnloadRenderTexture(app.Canvas.target)
		}
	}()

	if configPath != "" {
		if err := app.setupStyleWatcher(); err != nil {
			logging.Logger().Warn("style hot reload disabled", "error", err)
		} else {
			defer app.Reload.fileWatcher.Close()
		}
	}

	logging.Logger().Info("editor started", "backend", "raylib", "width", cfg.Window.Width, "height", cfg.Window.Height)

	// Main loop
	for !rl.WindowShouldClose() && !app.Window.quit {
		app.applyReloadedStyle()
		app.updateLayout()

		// Update
		app.handleInput()
		if app.Canvas.dirty {
			app.redrawCanvas()
		}

		// Draw
		rl.BeginDrawing()
		rl.ClearBackground(windowBackground)
		app.drawCanvas()
		app.drawUI()
		rl.EndDrawing()
	}

	logging.Logger().Info("editor closed", "shapes", app.Canvas.editor.Len())
	return nil
}

// updateLayout follows window resizes
func (app *App) updateLayout() {
	w, h := float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
	if w != app.Window.layout.Width || h != app.Window.layout.Height {
		app.Window.layout = layout.New(w, h, len(app.Canvas.palette))
		app.ensureTarget()
	}
}
