package app

import (
	"sync/atomic"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/philipparndt/gopoly/internal/editor"
	"github.com/philipparndt/gopoly/internal/layout"
	"github.com/philipparndt/gopoly/pkg/geometry"
	"github.com/philipparndt/gopoly/pkg/watcher"
)

// CanvasState holds the editor and its offscreen rendering
type CanvasState struct {
	editor  *editor.Canvas
	target  rl.RenderTexture2D // canvas pixels, redrawn only when dirty
	loaded  bool               // whether target holds a GPU texture
	width   int32              // size of target
	height  int32
	dirty   bool // the editor requested a redraw
	palette []geometry.Template
}

// InteractionState holds mouse state across frames
type InteractionState struct {
	captured [2]bool // button pressed on the canvas, indexed by editor button - 1
	mousePos geometry.Point
}

// WindowState holds the window geometry
type WindowState struct {
	layout layout.Layout
	quit   bool // Exit button pressed
}

// ReloadState holds settings hot reload state
type ReloadState struct {
	configPath  string
	fileWatcher *watcher.FileWatcher
	pending     atomic.Pointer[editor.Style] // set by the watcher goroutine
}

// UIState holds UI-related state
type UIState struct {
	status      string
	hoverTarget layout.Target
	hoverIndex  int
}
