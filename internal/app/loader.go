package app

import (
	"github.com/philipparndt/gopoly/internal/config"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/logging"
)

// setupStyleWatcher reloads the [style] table when the settings file
// changes. The watcher goroutine only parks the new style; the main loop
// applies it.
func (app *App) setupStyleWatcher() error {
	fw, err := config.WatchStyle(app.Reload.configPath, func(style editor.Style) {
		app.Reload.pending.Store(&style)
	})
	if err != nil {
		return err
	}
	app.Reload.fileWatcher = fw
	logging.Logger().Info("watching settings for changes", "path", app.Reload.configPath)
	return nil
}

// applyReloadedStyle applies a style parked by the watcher (must be on main thread)
func (app *App) applyReloadedStyle() {
	if style := app.Reload.pending.Swap(nil); style != nil {
		app.Canvas.editor.SetStyle(*style)
	}
}
