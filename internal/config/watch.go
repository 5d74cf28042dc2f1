package config

import (
	"time"

	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/logging"
	"github.com/philipparndt/gopoly/pkg/watcher"
)

const reloadDebounce = 200 * time.Millisecond

// WatchStyle reloads the settings file at path whenever it changes and
// passes the new style to onChange. Files that fail to load are logged and
// skipped. onChange runs on a watcher goroutine.
func WatchStyle(path string, onChange func(editor.Style)) (*watcher.FileWatcher, error) {
	fw, err := watcher.NewFileWatcher(reloadDebounce, logging.Logger())
	if err != nil {
		return nil, err
	}

	err = fw.Watch([]string{path}, func(changed string) {
		cfg, err := Load(changed)
		if err != nil {
			logging.Logger().Warn("settings not reloaded", "path", changed, "error", err)
			return
		}
		style, err := cfg.Style.EditorStyle()
		if err != nil {
			logging.Logger().Warn("settings not reloaded", "path", changed, "error", err)
			return
		}
		logging.Logger().Info("style reloaded", "path", changed)
		onChange(style)
	})
	if err != nil {
		fw.Close()
		return nil, err
	}

	fw.Start()
	return fw, nil
}
